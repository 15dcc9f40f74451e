package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/hance08/cashflow/internal/model"
)

type accountForm struct {
	Name     string            `validate:"required,max=100"`
	Type     model.AccountType `validate:"required,account_type"`
	Currency string            `validate:"required,currency"`
}

func TestStruct(t *testing.T) {
	cases := []struct {
		name  string
		in    accountForm
		field string
	}{
		{"valid", accountForm{Name: "Checking", Type: model.AccountBank, Currency: "USD"}, ""},
		{"missing name", accountForm{Type: model.AccountBank, Currency: "USD"}, "name"},
		{"long name", accountForm{Name: strings.Repeat("x", 101), Type: model.AccountBank, Currency: "USD"}, "name"},
		{"bad type", accountForm{Name: "X", Type: "SAVINGS", Currency: "USD"}, "type"},
		{"bad currency", accountForm{Name: "X", Type: model.AccountCredit, Currency: "usd"}, "currency"},
	}
	for _, tc := range cases {
		err := Struct(tc.in)
		if tc.field == "" {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		var ve *model.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
		if ve.Field != tc.field {
			t.Fatalf("%s: expected field %q, got %q", tc.name, tc.field, ve.Field)
		}
	}
}

func TestFieldValidators(t *testing.T) {
	checks := []struct {
		name string
		err  error
		ok   bool
	}{
		{"name ok", ValidateAccountName("Wallet"), true},
		{"name blank", ValidateAccountName("   "), false},
		{"currency empty uses default", ValidateCurrency(""), true},
		{"currency lower is normalized", ValidateCurrency("eur"), true},
		{"currency digits", ValidateCurrency("US1"), false},
		{"signed negative", ValidateSignedAmount("-40"), true},
		{"signed garbage", ValidateSignedAmount("forty"), false},
		{"magnitude zero", ValidateMagnitude("0"), true},
		{"magnitude negative", ValidateMagnitude("-1"), false},
		{"month 12", ValidateMonth("12"), true},
		{"month 13", ValidateMonth("13"), false},
		{"year", ValidateYear("2025"), true},
		{"category blank", ValidateCategory(""), false},
		{"date bare", ValidateDate("2024-02-29"), true},
		{"date timestamp", ValidateDate("2024-02-29T10:00:00Z"), true},
		{"date invalid", ValidateDate("2023-02-29"), false},
	}
	for _, c := range checks {
		if c.ok && c.err != nil {
			t.Fatalf("%s: unexpected error %v", c.name, c.err)
		}
		if !c.ok && c.err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
	}

	if err := ValidateDate("soon"); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("date errors should be validation errors, got %v", err)
	}
}

package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/hance08/cashflow/internal/constants"
	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/utils"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("account_type", func(fl validator.FieldLevel) bool {
			return model.AccountType(fl.Field().String()).Valid()
		})
		_ = validate.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if len(s) != 3 {
				return false
			}
			for _, c := range s {
				if c < 'A' || c > 'Z' {
					return false
				}
			}
			return true
		})
	})
	return validate
}

// Struct validates v against its `validate` tags and reports the first
// failing field as a *model.ValidationError.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &model.ValidationError{Msg: err.Error()}
	}
	return fieldError(verrs[0])
}

func fieldError(fe validator.FieldError) error {
	field := strings.ToLower(fe.Field())
	var msg string
	switch fe.Tag() {
	case "required":
		msg = "is required"
	case "max":
		msg = fmt.Sprintf("too long (max %s characters)", fe.Param())
	case "min", "gte":
		msg = fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		msg = fmt.Sprintf("must be at most %s", fe.Param())
	case "account_type":
		msg = fmt.Sprintf("invalid account type '%v' (must be one of BANK, WALLET, STASH, CREDIT, OTHER)", fe.Value())
	case "currency":
		msg = "currency code must be 3 letters (e.g. USD)"
	default:
		msg = fmt.Sprintf("failed '%s' check", fe.Tag())
	}
	return &model.ValidationError{Field: field, Msg: msg}
}

// ValidateAccountName validates a basic account name
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &model.ValidationError{Field: "name", Msg: "account name can't be empty"}
	}
	if len(name) > constants.MaxNameLen {
		return &model.ValidationError{Field: "name", Msg: fmt.Sprintf("account name too long (max %d characters)", constants.MaxNameLen)}
	}
	return nil
}

// ValidateCurrency validates a currency code format. Empty is allowed and
// means the configured default.
func ValidateCurrency(currency string) error {
	currency = strings.TrimSpace(strings.ToUpper(currency))
	if currency == "" {
		return nil
	}
	if err := instance().Var(currency, "currency"); err != nil {
		return &model.ValidationError{Field: "currency", Msg: "currency code must be 3 letters (e.g. USD)"}
	}
	return nil
}

// ValidateSignedAmount accepts any decimal, including negatives (opening
// balances, budget limits). Empty means zero.
func ValidateSignedAmount(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	if _, err := utils.ParseAmount(input); err != nil {
		return &model.ValidationError{Field: "amount", Msg: err.Error()}
	}
	return nil
}

// ValidateMagnitude accepts a non-negative decimal; transaction amounts carry
// their direction in the type, never in the sign.
func ValidateMagnitude(input string) error {
	d, err := utils.ParseAmount(input)
	if err != nil {
		return &model.ValidationError{Field: "amount", Msg: err.Error()}
	}
	if d.IsNegative() {
		return &model.ValidationError{Field: "amount", Msg: "amount can't be negative"}
	}
	return nil
}

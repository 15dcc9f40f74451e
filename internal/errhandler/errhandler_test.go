package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/cashflow/internal/model"
)

func TestIsCancelled(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{terminal.InterruptErr, true},
		{huh.ErrUserAborted, true},
		{fmt.Errorf("input cancelled: %w", huh.ErrUserAborted), true},
		{&model.ValidationError{Field: "name", Msg: "is required"}, false},
		{errors.New("disk full"), false},
	}
	for _, tc := range cases {
		if got := IsCancelled(tc.err); got != tc.want {
			t.Fatalf("IsCancelled(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestHandleError_ExitCode(t *testing.T) {
	if code := HandleError(huh.ErrUserAborted); code != 0 {
		t.Fatalf("cancel should exit 0, got %d", code)
	}
	if code := HandleError(&model.NotFoundError{Entity: "transaction", ID: 3}); code != 1 {
		t.Fatalf("failure should exit 1, got %d", code)
	}
}

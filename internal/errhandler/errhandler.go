package errhandler

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/cashflow/internal/model"
	"github.com/pterm/pterm"
)

// IsCancelled reports whether err comes from the user aborting a prompt.
func IsCancelled(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// HandleError prints err for the user and returns the process exit code.
func HandleError(err error) int {
	if IsCancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		return 0
	}

	switch {
	case errors.Is(err, model.ErrValidation):
		pterm.Error.Println(capitalize(err.Error()))
	case errors.Is(err, model.ErrNotFound):
		pterm.Error.Println(capitalize(err.Error()))
	case errors.Is(err, model.ErrStore):
		pterm.Error.Printf("Database error: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return 1
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

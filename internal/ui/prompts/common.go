package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/cashflow/internal/validation"
)

// PromptOptionalText prompts for free text such as a category or memo.
// A blank answer returns nil.
func PromptOptionalText(message string, current *string) (*string, error) {
	var text string
	if current != nil {
		text = *current
	}

	err := huh.NewInput().
		Title(message).
		Description("Leave blank for none").
		Value(&text).
		Run()
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	return &text, nil
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Value(&confirm).
		Affirmative("Yes").
		Negative("No").
		Run()

	return confirm, err
}

// PromptDate prompts for a date in YYYY-MM-DD format
func PromptDate(message string, defaultDate string, helpText string) (string, error) {
	var date string

	err := huh.NewInput().
		Title(message).
		Description(helpText).
		Placeholder(defaultDate).
		Value(&date).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			return validation.ValidateDate(s)
		}).
		Run()

	if err != nil {
		return "", err
	}

	// If user pressed enter without typing, use the placeholder/default
	if date == "" {
		return defaultDate, nil
	}
	return date, nil
}

// PromptInput prompts for a generic text input with optional default and validator
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	if err != nil {
		return "", err
	}

	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}

	return inputVal, nil
}

// PromptSelect prompts for a selection from a list of options
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	realDefault := defaultOption
	matchFound := false

	for _, o := range options {
		if o == defaultOption {
			realDefault = o
			matchFound = true
			break
		}
	}

	if !matchFound && defaultOption != "" {
		for _, o := range options {
			if strings.HasPrefix(o, defaultOption+" ") {
				realDefault = o
				break
			}
		}
	}
	selected := realDefault

	// Create options for huh
	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	selectField := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected)

	err := selectField.Run()
	return selected, err
}

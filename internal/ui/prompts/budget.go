package prompts

import (
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/hance08/cashflow/internal/validation"
)

type BudgetForm struct {
	Month    string
	Year     string
	Category string
	Limit    string
}

// PromptBudget asks for every budget field on one form.
func PromptBudget() (*BudgetForm, error) {
	now := time.Now()
	form := &BudgetForm{
		Month: strconv.Itoa(int(now.Month())),
		Year:  strconv.Itoa(now.Year()),
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Month (1-12):").
				Value(&form.Month).
				Validate(validation.ValidateMonth),
			huh.NewInput().
				Title("Year:").
				Value(&form.Year).
				Validate(validation.ValidateYear),
			huh.NewInput().
				Title("Category:").
				Description("Must match the transaction category exactly").
				Value(&form.Category).
				Validate(validation.ValidateCategory),
			huh.NewInput().
				Title("Limit:").
				Value(&form.Limit).
				Validate(validation.ValidateMagnitude),
		),
	).Run()
	if err != nil {
		return nil, err
	}

	return form, nil
}

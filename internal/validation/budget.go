package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/cashflow/internal/constants"
	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/utils"
)

func ValidateMonth(input string) error {
	m, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || m < 1 || m > 12 {
		return &model.ValidationError{Field: "month", Msg: "month must be a number between 1 and 12"}
	}
	return nil
}

func ValidateYear(input string) error {
	y, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || y < 1 {
		return &model.ValidationError{Field: "year", Msg: "year must be a positive number"}
	}
	return nil
}

func ValidateCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return &model.ValidationError{Field: "category", Msg: "category is required"}
	}
	if len(category) > constants.MaxCategoryLen {
		return &model.ValidationError{Field: "category", Msg: fmt.Sprintf("category too long (max %d characters)", constants.MaxCategoryLen)}
	}
	return nil
}

// ValidateDate accepts a bare date or a full timestamp.
func ValidateDate(input string) error {
	if _, err := utils.ParseTimestamp(input); err != nil {
		return &model.FormatError{Field: "date", Value: input, Err: err}
	}
	return nil
}

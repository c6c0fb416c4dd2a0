package services

import (
	"strings"

	"github.com/shopspring/decimal"

	apperrors "github.com/SohamBhandary/MoneyFrontend/internal/errors"
	"github.com/SohamBhandary/MoneyFrontend/internal/models"
)

// Draft is a candidate transaction as entered by the user, before any
// coercion. Amount stays a raw string here: whether it is a number at all is
// one of the validation rules.
type Draft struct {
	Name       string `json:"name"`
	CategoryID string `json:"categoryId"`
	Amount     string `json:"amount"`
	Date       string `json:"date"` // YYYY-MM-DD
	Icon       string `json:"icon,omitempty"`
}

// Validate checks the draft against the submission rules using today's UTC
// calendar date. It is pure and synchronous: no I/O, no side effects. It must
// pass before any upstream submission is attempted.
func Validate(d Draft) error {
	return ValidateAsOf(d, models.Today())
}

// ValidateAsOf is Validate with an explicit "today" (YYYY-MM-DD). Rules apply
// in order and the first failure determines the rejection reason.
func ValidateAsOf(d Draft, today string) error {
	if strings.TrimSpace(d.Name) == "" {
		return apperrors.Validation("name required")
	}
	if d.CategoryID == "" {
		return apperrors.Validation("category required")
	}
	if _, err := parseAmount(d.Amount); err != nil {
		return apperrors.Validation("amount must be a positive number")
	}
	if d.Date == "" {
		return apperrors.Validation("date required")
	}
	// ISO dates order lexicographically, so a plain string comparison is the
	// comparison basis for the future check.
	if d.Date > today {
		return apperrors.Validation("date cannot be in the future")
	}
	return nil
}

// parseAmount coerces the draft amount to a decimal, rejecting anything that
// is not a finite number strictly greater than zero.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, apperrors.Validation("amount must be a positive number")
	}
	return amount, nil
}

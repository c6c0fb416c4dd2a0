package services

import (
	"testing"

	"github.com/SohamBhandary/MoneyFrontend/internal/testutil"
)

const today = "2024-06-15"

func validDraft() Draft {
	return Draft{
		Name:       "Salary",
		CategoryID: "c1",
		Amount:     "5000",
		Date:       "2024-01-15",
	}
}

func TestValidateAsOf(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		testutil.AssertNoError(t, ValidateAsOf(validDraft(), today))
	})

	t.Run("empty_name", func(t *testing.T) {
		d := validDraft()
		d.Name = ""
		testutil.AssertValidationReason(t, ValidateAsOf(d, today), "name required")
	})

	t.Run("whitespace_name", func(t *testing.T) {
		d := validDraft()
		d.Name = "   \t"
		testutil.AssertValidationReason(t, ValidateAsOf(d, today), "name required")
	})

	t.Run("missing_category", func(t *testing.T) {
		d := validDraft()
		d.CategoryID = ""
		testutil.AssertValidationReason(t, ValidateAsOf(d, today), "category required")
	})

	t.Run("non_numeric_amount", func(t *testing.T) {
		for _, amount := range []string{"", "abc", "12.3.4", "12,50"} {
			d := validDraft()
			d.Amount = amount
			testutil.AssertValidationReason(t, ValidateAsOf(d, today), "amount must be a positive number")
		}
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		for _, amount := range []string{"0", "0.00", "-10", "-0.01"} {
			d := validDraft()
			d.Amount = amount
			testutil.AssertValidationReason(t, ValidateAsOf(d, today), "amount must be a positive number")
		}
	})

	t.Run("positive_amounts_pass", func(t *testing.T) {
		for _, amount := range []string{"0.01", "1", "5000", "99999.99"} {
			d := validDraft()
			d.Amount = amount
			testutil.AssertNoError(t, ValidateAsOf(d, today))
		}
	})

	t.Run("missing_date", func(t *testing.T) {
		d := validDraft()
		d.Date = ""
		testutil.AssertValidationReason(t, ValidateAsOf(d, today), "date required")
	})

	t.Run("future_date", func(t *testing.T) {
		d := validDraft()
		d.Date = "2024-06-16"
		testutil.AssertValidationReason(t, ValidateAsOf(d, today), "date cannot be in the future")
	})

	t.Run("today_is_not_future", func(t *testing.T) {
		d := validDraft()
		d.Date = today
		testutil.AssertNoError(t, ValidateAsOf(d, today))
	})

	t.Run("future_date_rejected_regardless_of_other_fields", func(t *testing.T) {
		d := Draft{Name: "x", CategoryID: "c", Amount: "1", Date: "2024-07-01", Icon: "star"}
		testutil.AssertValidationReason(t, ValidateAsOf(d, today), "date cannot be in the future")
	})

	t.Run("rules_apply_in_order", func(t *testing.T) {
		// Everything is wrong; the name rule fires first.
		d := Draft{Name: " ", CategoryID: "", Amount: "-1", Date: "9999-01-01"}
		testutil.AssertValidationReason(t, ValidateAsOf(d, today), "name required")

		d.Name = "x"
		testutil.AssertValidationReason(t, ValidateAsOf(d, today), "category required")

		d.CategoryID = "c1"
		testutil.AssertValidationReason(t, ValidateAsOf(d, today), "amount must be a positive number")

		d.Amount = "1"
		testutil.AssertValidationReason(t, ValidateAsOf(d, today), "date cannot be in the future")
	})
}

func TestValidate_UsesCurrentDate(t *testing.T) {
	d := validDraft()
	d.Date = "9999-01-01"
	testutil.AssertValidationReason(t, Validate(d), "date cannot be in the future")

	d.Date = "2000-01-01"
	testutil.AssertNoError(t, Validate(d))
}

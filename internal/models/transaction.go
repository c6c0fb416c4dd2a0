package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts travel as JSON numbers on the upstream wire.
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction is a single dated monetary record belonging to exactly one
// ledger type and category. The id is assigned upstream and immutable; the
// service never fabricates or rewrites one.
type Transaction struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	CategoryID string          `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"` // YYYY-MM-DD
	Icon       string          `json:"icon,omitempty"`
	Type       LedgerType      `json:"type"`
}

// DateTime parses the transaction date. Dates are stored as ISO strings
// because ordering and future-date checks are defined lexicographically;
// parsing only happens at presentation edges (chart labels, workbooks).
func (t Transaction) DateTime() (time.Time, error) {
	return time.Parse(DateLayout, t.Date)
}

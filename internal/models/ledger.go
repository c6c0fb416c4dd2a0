// Package models defines the ledger domain types shared across the service.
package models

import (
	"fmt"
	"time"
)

// LedgerType partitions transactions and categories into the two ledgers.
type LedgerType string

const (
	LedgerTypeIncome  LedgerType = "income"
	LedgerTypeExpense LedgerType = "expense"
)

// ParseLedgerType converts a raw string into a LedgerType.
func ParseLedgerType(s string) (LedgerType, error) {
	switch LedgerType(s) {
	case LedgerTypeIncome:
		return LedgerTypeIncome, nil
	case LedgerTypeExpense:
		return LedgerTypeExpense, nil
	}
	return "", fmt.Errorf("unknown ledger type %q", s)
}

// Valid reports whether lt is one of the two known ledger types.
func (lt LedgerType) Valid() bool {
	return lt == LedgerTypeIncome || lt == LedgerTypeExpense
}

// DateLayout is the wire format for transaction dates.
const DateLayout = "2006-01-02"

// Today returns the current calendar date in UTC, formatted as YYYY-MM-DD.
// UTC is the service-wide convention for "today"; future-date checks compare
// ISO date strings lexicographically against this value.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

package models

// Category is a named grouping of transactions, scoped to one ledger type.
// Categories are owned and partitioned by the upstream API; a category of
// type income is never offered to the expense ledger, and vice versa.
type Category struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Type LedgerType `json:"type"`
	Icon string     `json:"icon,omitempty"`
}

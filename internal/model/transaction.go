package model

import "time"

// Transaction represents a single stock movement for an item. Transactions are
// immutable once recorded: there is no update operation, only the item-deletion
// cascade and wholesale replacement on import.
type Transaction struct {
	ID       string    `json:"id"`
	ItemID   string    `json:"item_id"`
	ItemName string    `json:"item_name"`
	Type     string    `json:"type"`
	Quantity int       `json:"quantity"`
	Date     time.Time `json:"date"`
	User     string    `json:"user"`
	Notes    string    `json:"notes,omitempty"`
}

// Transaction types.
const (
	TxIn  = "IN"
	TxOut = "OUT"
)

// ValidTxType reports whether t is a known transaction type.
func ValidTxType(t string) bool {
	return t == TxIn || t == TxOut
}

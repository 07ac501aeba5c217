// Package models provides the data structures used throughout the application.
package models

import (
	"github.com/shopspring/decimal"
)

// Direction indicates whether a transaction increases (credit) or
// decreases (debit) the account balance.
type Direction string

const (
	DirectionCredit Direction = "CREDIT"
	DirectionDebit  Direction = "DEBIT"
)

// Closed set of category labels the engine may emit.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryBills         = "Bills"
	CategoryHealthcare    = "Healthcare"
	CategoryEducation     = "Education"
	CategoryOther         = "Other"
)

// CategoryNames lists the allowed categories in tagger priority order.
// The order matters: the first category whose keywords match wins.
var CategoryNames = []string{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryEntertainment,
	CategoryBills,
	CategoryHealthcare,
	CategoryEducation,
	CategoryOther,
}

// IsValidCategory reports whether name belongs to the closed category set.
func IsValidCategory(name string) bool {
	for _, c := range CategoryNames {
		if c == name {
			return true
		}
	}
	return false
}

// TransactionRecord is a single transaction recovered from statement text.
// The JSON field names match the export format consumed downstream.
type TransactionRecord struct {
	Direction   Direction       `csv:"Direction" json:"type"`
	Amount      decimal.Decimal `csv:"Amount" json:"amount"`
	Description string          `csv:"Description" json:"description"`
	Category    string          `csv:"Category" json:"category"`
	Date        string          `csv:"Date" json:"date,omitempty"`
	Merchant    string          `csv:"Merchant" json:"merchant,omitempty"`
}

// IsCredit returns true if the transaction increases the balance.
func (t TransactionRecord) IsCredit() bool {
	return t.Direction == DirectionCredit
}

// IsDebit returns true if the transaction decreases the balance.
func (t TransactionRecord) IsDebit() bool {
	return t.Direction == DirectionDebit
}

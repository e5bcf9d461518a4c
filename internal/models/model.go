package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Budgets and amounts are numbers on the wire, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Model is the base model for all other models.
type Model struct {
	ID uint `json:"id" gorm:"primaryKey" example:"1"` // ID of the resource
}

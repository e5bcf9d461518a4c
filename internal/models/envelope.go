package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Envelope is a budget category holding the currently available balance.
type Envelope struct {
	Model
	Title  string          `json:"title" gorm:"not null" example:"Groceries"`      // Title of the envelope
	Budget decimal.Decimal `json:"budget" gorm:"type:TEXT;not null" example:"500"` // Currently available balance
}

// BeforeSave
//   - trims whitespace from the title
//   - ensures the title is not empty
//   - ensures the budget is not negative
func (e *Envelope) BeforeSave(_ *gorm.DB) error {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return ErrTitleEmpty
	}

	if e.Budget.IsNegative() {
		return ErrBudgetNegative
	}

	return nil
}

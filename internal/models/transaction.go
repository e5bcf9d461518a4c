package models

import (
	"strings"

	"github.com/envelope-budget/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is an amount spent from an envelope.
//
// EnvelopeID is not a live foreign key: transactions can reference
// envelopes that do not exist (anymore).
type Transaction struct {
	Model
	EnvelopeID  uint            `json:"envelopeId" gorm:"index" example:"1"`              // ID of the envelope
	Amount      decimal.Decimal `json:"amount" gorm:"type:TEXT;not null" example:"14.03"` // Amount of the transaction
	Date        types.Date      `json:"date" gorm:"not null" example:"2024-05-12"`        // Day of the transaction
	Description string          `json:"description" example:"Weekly shopping"`            // Optional description
}

// BeforeSave
//   - ensures an envelope ID is set
//   - ensures the amount is positive
//   - defaults the date to today
//   - trims whitespace from the description
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.EnvelopeID == 0 {
		return ErrEnvelopeIDMissing
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.Date.IsZero() {
		t.Date = types.Today()
	}

	t.Description = strings.TrimSpace(t.Description)
	return nil
}

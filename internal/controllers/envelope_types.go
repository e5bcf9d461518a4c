package controllers

import (
	"github.com/envelope-budget/backend/internal/models"
	"github.com/envelope-budget/backend/internal/types"
	"github.com/shopspring/decimal"
)

// EnvelopeEditable represents all user configurable parameters.
//
// Both fields are pointers so that an omitted field can be told apart
// from its zero value.
type EnvelopeEditable struct {
	Title  *string       `json:"title" example:"Groceries"`                 // Title of the envelope
	Budget *types.Number `json:"budget" example:"500" swaggertype:"number"` // Available balance, must not be negative
}

// AmountEditable is the request body for withdrawals and transfers.
type AmountEditable struct {
	Amount *types.Number `json:"amount" example:"100" swaggertype:"number"` // Amount to move, must be positive
}

// URITransfer contains the envelope IDs of a transfer.
type URITransfer struct {
	From uint `uri:"from" binding:"required" example:"1"` // ID of the source envelope
	To   uint `uri:"to" binding:"required" example:"2"`   // ID of the destination envelope
}

type EnvelopeListResponse struct {
	Envelopes   []models.Envelope `json:"envelopes"`                                       // List of envelopes
	TotalBudget decimal.Decimal   `json:"totalBudget" example:"1900" swaggertype:"number"` // Sum of the budgets of all envelopes
}

type TransferResponse struct {
	Message      string          `json:"message" example:"transfer successful"` // Human readable result
	FromEnvelope models.Envelope `json:"fromEnvelope"`                          // Source envelope after the transfer
	ToEnvelope   models.Envelope `json:"toEnvelope"`                            // Destination envelope after the transfer
}

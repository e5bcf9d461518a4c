package controllers

import (
	"github.com/envelope-budget/backend/internal/models"
	"github.com/envelope-budget/backend/internal/types"
)

// TransactionEditable represents all user configurable parameters.
type TransactionEditable struct {
	EnvelopeID  *uint         `json:"envelopeId" example:"1"`                         // ID of the envelope the transaction is spent from
	Amount      *types.Number `json:"amount" example:"14.03" swaggertype:"number"`    // Amount of the transaction, must be positive
	Description string        `json:"description" example:"Weekly shopping"`          // Optional description
	Date        types.Date    `json:"date" example:"2024-05-12" swaggertype:"string"` // Day of the transaction. Defaults to today
}

// model returns the transaction for the editable.
func (e TransactionEditable) model() models.Transaction {
	t := models.Transaction{
		Description: e.Description,
		Date:        e.Date,
	}

	if e.EnvelopeID != nil {
		t.EnvelopeID = *e.EnvelopeID
	}

	if e.Amount != nil {
		t.Amount = e.Amount.Decimal
	}

	return t
}

type TransactionCreateResponse struct {
	TransactionID uint `json:"transactionId" example:"4"` // ID of the created transaction
}

type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"` // List of transactions
}

// TransactionQueryFilter contains the query parameters for transaction lists.
type TransactionQueryFilter struct {
	Sort        string `form:"sort" example:"date-desc"`     // One of amount-asc, amount-desc, date-asc, date-desc, description-asc, description-desc
	Description string `form:"description" example:"*rent*"` // Glob pattern the description must match, case insensitive
}

// URIEnvelopeID is the ID of an envelope in the path.
type URIEnvelopeID struct {
	EnvelopeID uint `uri:"envelopeId" binding:"required" example:"1"` // ID of the envelope
}

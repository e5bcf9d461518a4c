// Package store implements persistence for envelopes and transactions.
package store

import (
	"context"

	"github.com/envelope-budget/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Store is the repository the HTTP layer works with.
type Store interface {
	Envelopes(ctx context.Context) ([]models.Envelope, error)
	Envelope(ctx context.Context, id uint) (models.Envelope, error)
	CreateEnvelope(ctx context.Context, envelope *models.Envelope) error
	UpdateEnvelope(ctx context.Context, id uint, update EnvelopeUpdate) (models.Envelope, error)
	DeleteEnvelope(ctx context.Context, id uint) error
	TotalBudget(ctx context.Context) (decimal.Decimal, error)
	Withdraw(ctx context.Context, id uint, amount decimal.Decimal) (models.Envelope, error)
	Transfer(ctx context.Context, fromID, toID uint, amount decimal.Decimal) (models.Envelope, models.Envelope, error)

	Transactions(ctx context.Context, filter TransactionFilter) ([]models.Transaction, error)
	EnvelopeTransactions(ctx context.Context, envelopeID uint) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, transaction *models.Transaction) error
	DeleteTransaction(ctx context.Context, id uint) error

	Ping(ctx context.Context) error
}

// EnvelopeUpdate contains the fields to update on an envelope.
// nil fields are left unchanged.
type EnvelopeUpdate struct {
	Title  *string
	Budget *decimal.Decimal
}

// Gorm is the Store backed by a gorm database.
type Gorm struct {
	db *gorm.DB
}

// New returns a Store using the database passed in.
func New(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// Ping verifies the database connection is alive.
func (s *Gorm) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return models.DatabaseError(err)
	}

	return models.DatabaseError(sqlDB.PingContext(ctx))
}

// transaction runs fn in a database transaction. All writes in fn
// are rolled back if fn returns an error.
func (s *Gorm) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return models.DatabaseError(s.db.WithContext(ctx).Transaction(fn))
}

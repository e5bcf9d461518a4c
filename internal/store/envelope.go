package store

import (
	"context"
	"fmt"

	"github.com/envelope-budget/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Envelopes returns all envelopes in storage order.
func (s *Gorm) Envelopes(ctx context.Context) ([]models.Envelope, error) {
	envelopes := make([]models.Envelope, 0)
	err := s.db.WithContext(ctx).Order("id ASC").Find(&envelopes).Error
	if err != nil {
		return nil, err
	}

	return envelopes, nil
}

// Envelope returns the envelope with the ID.
func (s *Gorm) Envelope(ctx context.Context, id uint) (models.Envelope, error) {
	var envelope models.Envelope
	err := s.db.WithContext(ctx).First(&envelope, id).Error
	return envelope, err
}

// CreateEnvelope persists a new envelope and sets its ID.
func (s *Gorm) CreateEnvelope(ctx context.Context, envelope *models.Envelope) error {
	return s.db.WithContext(ctx).Create(envelope).Error
}

// UpdateEnvelope applies all set fields of the update to the envelope.
func (s *Gorm) UpdateEnvelope(ctx context.Context, id uint, update EnvelopeUpdate) (models.Envelope, error) {
	var envelope models.Envelope

	err := s.transaction(ctx, func(tx *gorm.DB) error {
		err := tx.First(&envelope, id).Error
		if err != nil {
			return err
		}

		if update.Title != nil {
			envelope.Title = *update.Title
		}

		if update.Budget != nil {
			envelope.Budget = *update.Budget
		}

		return tx.Save(&envelope).Error
	})

	return envelope, err
}

// DeleteEnvelope deletes the envelope. Transactions referencing it are kept.
func (s *Gorm) DeleteEnvelope(ctx context.Context, id uint) error {
	q := s.db.WithContext(ctx).Delete(&models.Envelope{}, id)
	if q.Error != nil {
		return q.Error
	}

	if q.RowsAffected == 0 {
		return fmt.Errorf("%w envelope matching your query", models.ErrResourceNotFound)
	}

	return nil
}

// TotalBudget returns the sum of the budgets of all envelopes.
func (s *Gorm) TotalBudget(ctx context.Context) (decimal.Decimal, error) {
	var budgets []decimal.Decimal
	err := s.db.WithContext(ctx).Model(&models.Envelope{}).Pluck("budget", &budgets).Error
	if err != nil {
		return decimal.Zero, err
	}

	return decimal.Sum(decimal.Zero, budgets...), nil
}

// Withdraw removes the amount from the envelope's budget.
//
// Checks are run in this order: the envelope exists, the amount is positive,
// the budget covers the amount.
func (s *Gorm) Withdraw(ctx context.Context, id uint, amount decimal.Decimal) (models.Envelope, error) {
	var envelope models.Envelope

	err := s.transaction(ctx, func(tx *gorm.DB) error {
		err := tx.First(&envelope, id).Error
		if err != nil {
			return err
		}

		if !amount.IsPositive() {
			return models.ErrAmountNotPositive
		}

		if envelope.Budget.LessThan(amount) {
			return models.ErrInsufficientFunds
		}

		envelope.Budget = envelope.Budget.Sub(amount)
		return tx.Model(&envelope).Update("budget", envelope.Budget).Error
	})

	return envelope, err
}

// Transfer moves the amount from one envelope to another.
//
// Checks are run in this order: both envelopes exist, the amount is
// positive, the source budget covers the amount. Both balances are written
// in the same database transaction. A transfer to the source envelope
// itself leaves its budget unchanged.
func (s *Gorm) Transfer(ctx context.Context, fromID, toID uint, amount decimal.Decimal) (models.Envelope, models.Envelope, error) {
	var from, to models.Envelope

	err := s.transaction(ctx, func(tx *gorm.DB) error {
		err := tx.First(&from, fromID).Error
		if err != nil {
			return err
		}

		err = tx.First(&to, toID).Error
		if err != nil {
			return err
		}

		if !amount.IsPositive() {
			return models.ErrAmountNotPositive
		}

		if from.Budget.LessThan(amount) {
			return models.ErrInsufficientFunds
		}

		if from.ID == to.ID {
			return nil
		}

		from.Budget = from.Budget.Sub(amount)
		err = tx.Model(&from).Update("budget", from.Budget).Error
		if err != nil {
			return err
		}

		to.Budget = to.Budget.Add(amount)
		return tx.Model(&to).Update("budget", to.Budget).Error
	})

	return from, to, err
}

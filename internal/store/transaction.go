package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/envelope-budget/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys for transaction lists.
const (
	SortAmountAsc       = "amount-asc"
	SortAmountDesc      = "amount-desc"
	SortDateAsc         = "date-asc"
	SortDateDesc        = "date-desc"
	SortDescriptionAsc  = "description-asc"
	SortDescriptionDesc = "description-desc"
)

// SortKeys are all sort keys supported for transaction lists.
var SortKeys = []string{SortAmountAsc, SortAmountDesc, SortDateAsc, SortDateDesc, SortDescriptionAsc, SortDescriptionDesc}

// orders maps the sort keys that are handled by the database to their ORDER BY clause.
//
// Amounts are stored as text and compared as numbers.
var orders = map[string]string{
	SortAmountAsc:  "CAST(amount AS REAL) ASC, id ASC",
	SortAmountDesc: "CAST(amount AS REAL) DESC, id ASC",
	SortDateAsc:    "date ASC, id ASC",
	SortDateDesc:   "date DESC, id ASC",
}

// TransactionFilter selects and orders transactions.
type TransactionFilter struct {
	Sort        string // One of SortKeys. Other values return transactions in storage order.
	Description string // Glob pattern the description must match, e.g. "*rent*". Ignored when empty.
}

// Transactions returns all transactions matching the filter.
func (s *Gorm) Transactions(ctx context.Context, filter TransactionFilter) ([]models.Transaction, error) {
	order, ok := orders[filter.Sort]
	if !ok {
		order = "id ASC"
	}

	transactions := make([]models.Transaction, 0)
	err := s.db.WithContext(ctx).Order(order).Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	if filter.Description != "" {
		transactions = matchDescription(transactions, filter.Description)
	}

	if filter.Sort == SortDescriptionAsc || filter.Sort == SortDescriptionDesc {
		sortByDescription(transactions, filter.Sort == SortDescriptionDesc)
	}

	return transactions, nil
}

// EnvelopeTransactions returns all transactions for the envelope ID.
//
// Transactions are returned even if their envelope does not exist anymore.
// When there are none, an existing envelope yields an empty list and an
// unknown envelope yields ErrResourceNotFound.
func (s *Gorm) EnvelopeTransactions(ctx context.Context, envelopeID uint) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	err := s.db.WithContext(ctx).Where("envelope_id = ?", envelopeID).Order("id ASC").Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	if len(transactions) > 0 {
		return transactions, nil
	}

	_, err = s.Envelope(ctx, envelopeID)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// CreateTransaction persists a new transaction and sets its ID.
//
// The envelope the transaction references is not verified to exist.
func (s *Gorm) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	return s.db.WithContext(ctx).Create(transaction).Error
}

// DeleteTransaction deletes the transaction.
func (s *Gorm) DeleteTransaction(ctx context.Context, id uint) error {
	q := s.db.WithContext(ctx).Delete(&models.Transaction{}, id)
	if q.Error != nil {
		return q.Error
	}

	if q.RowsAffected == 0 {
		return fmt.Errorf("%w transaction matching your query", models.ErrResourceNotFound)
	}

	return nil
}

// matchDescription returns the transactions whose description matches the
// case insensitive glob pattern.
func matchDescription(transactions []models.Transaction, pattern string) []models.Transaction {
	pattern = strings.ToLower(pattern)

	matches := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if glob.Glob(pattern, strings.ToLower(t.Description)) {
			matches = append(matches, t)
		}
	}

	return matches
}

// sortByDescription sorts transactions by description in collation order,
// ignoring case. Transactions with equal descriptions keep their order.
func sortByDescription(transactions []models.Transaction, descending bool) {
	c := collate.New(language.Und, collate.IgnoreCase)

	slices.SortStableFunc(transactions, func(a, b models.Transaction) int {
		if descending {
			return c.CompareString(b.Description, a.Description)
		}
		return c.CompareString(a.Description, b.Description)
	})
}

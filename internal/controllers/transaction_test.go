package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/envelope-budget/backend/internal/controllers"
	"github.com/envelope-budget/backend/internal/httputil"
	"github.com/envelope-budget/backend/internal/models"
	"github.com/envelope-budget/backend/internal/types"
	"github.com/envelope-budget/backend/test"
	"github.com/shopspring/decimal"
)

// transactions returns the transactions listed at the path.
func (suite *TestSuiteStandard) transactions(path string) []models.Transaction {
	r := suite.request(http.MethodGet, "http://example.com"+path, "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var response controllers.TransactionListResponse
	test.DecodeResponse(suite.T(), r, &response)
	return response.Transactions
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	envelope := suite.createTestEnvelope(map[string]any{"title": "Groceries", "budget": 500})

	id := suite.createTestTransaction(map[string]any{"envelopeId": envelope.ID, "amount": 14.03, "description": "Weekly shopping"})
	suite.Assert().NotZero(id)

	transactions := suite.transactions("/transactions")
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal(id, transactions[0].ID)
	suite.Assert().Equal(envelope.ID, transactions[0].EnvelopeID)
	suite.Assert().True(decimal.RequireFromString("14.03").Equal(transactions[0].Amount))
	suite.Assert().Equal("Weekly shopping", transactions[0].Description)
	suite.Assert().Equal(types.Today(), transactions[0].Date)
}

func (suite *TestSuiteStandard) TestTransactionsCreateResponse() {
	r := suite.request(http.MethodPost, "http://example.com/transactions", `{ "envelopeId": 1, "amount": 3 }`)
	test.AssertHTTPStatus(suite.T(), r, http.StatusCreated)
	suite.Assert().JSONEq(`{"transactionId": 1}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestTransactionsCreateWithDate() {
	suite.createTestTransaction(`{ "envelopeId": 1, "amount": 3, "date": "2024-02-29" }`)
	suite.createTestTransaction(`{ "envelopeId": 1, "amount": 4, "date": "2024-03-01T22:10:00Z" }`)

	transactions := suite.transactions("/transactions")
	suite.Require().Len(transactions, 2)
	suite.Assert().Equal("2024-02-29", transactions[0].Date.String())
	suite.Assert().Equal("2024-03-01", transactions[1].Date.String())
}

// TestTransactionsCreateUnknownEnvelope verifies that transactions can be created
// for envelopes that do not exist.
func (suite *TestSuiteStandard) TestTransactionsCreateUnknownEnvelope() {
	id := suite.createTestTransaction(map[string]any{"envelopeId": 4711, "amount": 1})
	suite.Assert().NotZero(id)
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	tests := []struct {
		name string
		body string
		err  string
	}{
		{"Missing envelope", `{ "amount": 10 }`, models.ErrEnvelopeIDMissing.Error()},
		{"Zero envelope", `{ "envelopeId": 0, "amount": 10 }`, models.ErrEnvelopeIDMissing.Error()},
		{"Missing amount", `{ "envelopeId": 1 }`, models.ErrAmountNotPositive.Error()},
		{"Zero amount", `{ "envelopeId": 1, "amount": 0 }`, models.ErrAmountNotPositive.Error()},
		{"Negative amount", `{ "envelopeId": 1, "amount": -4 }`, models.ErrAmountNotPositive.Error()},
		{"Non-numeric amount", `{ "envelopeId": 1, "amount": "four" }`, "amount"},
		{"Quoted amount", `{ "envelopeId": 1, "amount": "10" }`, "amount"},
		{"Invalid date", `{ "envelopeId": 1, "amount": 4, "date": "yesterday" }`, httputil.ErrInvalidBody.Error()},
		{"Negative envelope", `{ "envelopeId": -1, "amount": 4 }`, "envelopeId"},
		{"Empty body", "", httputil.ErrRequestBodyEmpty.Error()},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, "http://example.com/transactions", tt.body)
			test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)

			var response errorResponse
			test.DecodeResponse(suite.T(), r, &response)
			suite.Assert().Contains(response.Error, tt.err)
		})
	}

	suite.Assert().Len(suite.transactions("/transactions"), 0)
}

func (suite *TestSuiteStandard) TestTransactionsGetSorted() {
	suite.createTestTransaction(`{ "envelopeId": 1, "amount": 12, "date": "2024-01-03", "description": "Bus ticket" }`)
	suite.createTestTransaction(`{ "envelopeId": 1, "amount": 99.9, "date": "2024-01-01", "description": "rent" }`)
	suite.createTestTransaction(`{ "envelopeId": 2, "amount": 0.5, "date": "2024-01-02", "description": "apple" }`)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Bus ticket", "rent", "apple"}},
		{"?sort=nonsense", []string{"Bus ticket", "rent", "apple"}},
		{"?sort=amount-asc", []string{"apple", "Bus ticket", "rent"}},
		{"?sort=amount-desc", []string{"rent", "Bus ticket", "apple"}},
		{"?sort=date-asc", []string{"rent", "apple", "Bus ticket"}},
		{"?sort=date-desc", []string{"Bus ticket", "apple", "rent"}},
		{"?sort=description-asc", []string{"apple", "Bus ticket", "rent"}},
		{"?sort=description-desc", []string{"rent", "Bus ticket", "apple"}},
		{"?description=*e*", []string{"Bus ticket", "rent", "apple"}},
		{"?description=R*", []string{"rent"}},
		{"?description=*t&sort=amount-asc", []string{"Bus ticket", "rent"}},
		{"?description=nothing", []string{}},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			transactions := suite.transactions("/transactions" + tt.query)

			descriptions := make([]string, 0, len(transactions))
			for _, t := range transactions {
				descriptions = append(descriptions, t.Description)
			}
			suite.Assert().Equal(tt.want, descriptions)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetEmpty() {
	r := suite.request(http.MethodGet, "http://example.com/transactions", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().JSONEq(`{"transactions": []}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestTransactionsGetForEnvelope() {
	groceries := suite.createTestEnvelope(map[string]any{"title": "Groceries", "budget": 500})
	rent := suite.createTestEnvelope(map[string]any{"title": "Rent", "budget": 800})

	suite.createTestTransaction(map[string]any{"envelopeId": groceries.ID, "amount": 10})
	suite.createTestTransaction(map[string]any{"envelopeId": groceries.ID, "amount": 20})

	transactions := suite.transactions(fmt.Sprintf("/transactions/%d", groceries.ID))
	suite.Require().Len(transactions, 2)
	for _, t := range transactions {
		suite.Assert().Equal(groceries.ID, t.EnvelopeID)
	}

	// An envelope without transactions has an empty list
	r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/transactions/%d", rent.ID), "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().JSONEq(`{"transactions": []}`, r.Body.String())

	r = suite.request(http.MethodGet, "http://example.com/transactions/999", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusNotFound)

	r = suite.request(http.MethodGet, "http://example.com/transactions/abc", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	id := suite.createTestTransaction(`{ "envelopeId": 1, "amount": 3 }`)
	suite.createTestTransaction(`{ "envelopeId": 1, "amount": 4 }`)

	r := suite.request(http.MethodDelete, fmt.Sprintf("http://example.com/transactions/%d", id), "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().JSONEq(`{"message": "transaction deleted"}`, r.Body.String())

	r = suite.request(http.MethodDelete, fmt.Sprintf("http://example.com/transactions/%d", id), "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusNotFound)

	r = suite.request(http.MethodDelete, "http://example.com/transactions/abc", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)

	suite.Assert().Len(suite.transactions("/transactions"), 1)
}

// TestTransactionsEnvelopeDeleted verifies that transactions are kept when
// their envelope is deleted and can still be listed by envelope ID.
func (suite *TestSuiteStandard) TestTransactionsEnvelopeDeleted() {
	envelope := suite.createTestEnvelope(map[string]any{"title": "Groceries", "budget": 500})
	suite.createTestTransaction(map[string]any{"envelopeId": envelope.ID, "amount": 10})

	r := suite.request(http.MethodDelete, fmt.Sprintf("http://example.com/envelopes/%d", envelope.ID), "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	suite.Assert().Len(suite.transactions("/transactions"), 1)

	transactions := suite.transactions(fmt.Sprintf("/transactions/%d", envelope.ID))
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal(envelope.ID, transactions[0].EnvelopeID)
}

// TestTransactionsGetForUnknownEnvelope verifies that transactions referencing
// an envelope that never existed are listed for its ID.
func (suite *TestSuiteStandard) TestTransactionsGetForUnknownEnvelope() {
	suite.createTestTransaction(`{ "envelopeId": 4711, "amount": 3 }`)

	transactions := suite.transactions("/transactions/4711")
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal(uint(4711), transactions[0].EnvelopeID)
	suite.Assert().True(decimal.NewFromInt(3).Equal(transactions[0].Amount))

	r := suite.request(http.MethodGet, "http://example.com/transactions/4712", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusNotFound)
}

package controllers_test

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/envelope-budget/backend/internal/controllers"
	"github.com/envelope-budget/backend/internal/httputil"
	"github.com/envelope-budget/backend/internal/models"
	"github.com/envelope-budget/backend/test"
	"github.com/shopspring/decimal"
)

type errorResponse struct {
	Error string `json:"error"`
}

// TestEnvelopesCreateAndGet verifies the round trip of creating and reading an envelope.
func (suite *TestSuiteStandard) TestEnvelopesCreateAndGet() {
	created := suite.createTestEnvelope(map[string]any{"title": "Groceries", "budget": 500})
	suite.Assert().NotZero(created.ID)
	suite.Assert().Equal("Groceries", created.Title)

	r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/envelopes/%d", created.ID), "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	// Budgets are rendered as numbers
	suite.Assert().JSONEq(fmt.Sprintf(`{"id": %d, "title": "Groceries", "budget": 500}`, created.ID), r.Body.String())
}

func (suite *TestSuiteStandard) TestEnvelopesCreateInvalid() {
	tests := []struct {
		name string
		body string
		err  string
	}{
		{"Negative budget", `{ "title": "Groceries", "budget": -1 }`, models.ErrBudgetNegative.Error()},
		{"Non-numeric budget", `{ "title": "Groceries", "budget": "lots" }`, "budget"},
		{"Quoted budget", `{ "title": "Groceries", "budget": "500" }`, "budget"},
		{"Boolean budget", `{ "title": "Groceries", "budget": true }`, httputil.ErrInvalidBody.Error()},
		{"Missing budget", `{ "title": "Groceries" }`, models.ErrBudgetNegative.Error()},
		{"Missing title", `{ "budget": 10 }`, models.ErrTitleEmpty.Error()},
		{"Empty title", `{ "title": "  ", "budget": 10 }`, models.ErrTitleEmpty.Error()},
		{"Title not a string", `{ "title": 5, "budget": 10 }`, "title"},
		{"Broken JSON", `{ "title": "Groceries", `, httputil.ErrInvalidBody.Error()},
		{"Empty body", "", httputil.ErrRequestBodyEmpty.Error()},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, "http://example.com/envelopes", tt.body)
			test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)

			var response errorResponse
			test.DecodeResponse(suite.T(), r, &response)
			suite.Assert().Contains(response.Error, tt.err)
		})
	}

	// No invalid envelope is persisted
	r := suite.request(http.MethodGet, "http://example.com/envelopes", "")
	var list controllers.EnvelopeListResponse
	test.DecodeResponse(suite.T(), r, &list)
	suite.Assert().Len(list.Envelopes, 0)
}

func (suite *TestSuiteStandard) TestEnvelopesGetList() {
	r := suite.request(http.MethodGet, "http://example.com/envelopes", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().JSONEq(`{"envelopes": [], "totalBudget": 0}`, r.Body.String())

	suite.createTestEnvelope(map[string]any{"title": "Groceries", "budget": 500})
	suite.createTestEnvelope(map[string]any{"title": "Rent", "budget": 1400.5})

	r = suite.request(http.MethodGet, "http://example.com/envelopes", "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)

	var list controllers.EnvelopeListResponse
	test.DecodeResponse(suite.T(), r, &list)
	suite.Require().Len(list.Envelopes, 2)
	suite.Assert().Equal("Groceries", list.Envelopes[0].Title)
	suite.Assert().Equal("Rent", list.Envelopes[1].Title)
	suite.Assert().True(decimal.NewFromFloat(1900.5).Equal(list.TotalBudget), "Total budget is %s", list.TotalBudget)
}

func (suite *TestSuiteStandard) TestEnvelopesGetSingle() {
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Not found", "/envelopes/999", http.StatusNotFound},
		{"Not a number", "/envelopes/abc", http.StatusBadRequest},
		{"Zero", "/envelopes/0", http.StatusBadRequest},
		{"Negative", "/envelopes/-1", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(suite.T(), r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestEnvelopesUpdate() {
	tests := []struct {
		name   string
		body   string
		status int
		title  string
		budget decimal.Decimal
	}{
		{"Title", `{ "title": "Food" }`, http.StatusOK, "Food", decimal.NewFromFloat(500)},
		{"Budget", `{ "budget": 250 }`, http.StatusOK, "Groceries", decimal.NewFromFloat(250)},
		{"Budget zero", `{ "budget": 0 }`, http.StatusOK, "Groceries", decimal.Zero},
		{"Both", `{ "title": "Food", "budget": 12.34 }`, http.StatusOK, "Food", decimal.RequireFromString("12.34")},
		{"Empty object", `{}`, http.StatusOK, "Groceries", decimal.NewFromFloat(500)},
		{"Unknown field", `{ "name": "Food" }`, http.StatusOK, "Groceries", decimal.NewFromFloat(500)},
		{"Negative budget", `{ "budget": -5 }`, http.StatusBadRequest, "Groceries", decimal.NewFromFloat(500)},
		{"Null budget", `{ "budget": null }`, http.StatusBadRequest, "Groceries", decimal.NewFromFloat(500)},
		{"Null title", `{ "title": null }`, http.StatusBadRequest, "Groceries", decimal.NewFromFloat(500)},
		{"Empty title", `{ "title": "" }`, http.StatusBadRequest, "Groceries", decimal.NewFromFloat(500)},
		{"Non-numeric budget", `{ "budget": "abc" }`, http.StatusBadRequest, "Groceries", decimal.NewFromFloat(500)},
		{"Quoted budget", `{ "budget": "250" }`, http.StatusBadRequest, "Groceries", decimal.NewFromFloat(500)},
		{"Broken JSON", `{ "budget": `, http.StatusBadRequest, "Groceries", decimal.NewFromFloat(500)},
		{"Empty body", "", http.StatusBadRequest, "Groceries", decimal.NewFromFloat(500)},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			envelope := suite.createTestEnvelope(map[string]any{"title": "Groceries", "budget": 500})
			path := fmt.Sprintf("http://example.com/envelopes/%d", envelope.ID)

			r := suite.request(http.MethodPut, path, tt.body)
			test.AssertHTTPStatus(suite.T(), r, tt.status)

			r = suite.request(http.MethodGet, path, "")
			var stored models.Envelope
			test.DecodeResponse(suite.T(), r, &stored)
			suite.Assert().Equal(tt.title, stored.Title)
			suite.Assert().True(tt.budget.Equal(stored.Budget), "Budget is %s, expected %s", stored.Budget, tt.budget)
		})
	}
}

func (suite *TestSuiteStandard) TestEnvelopesUpdateResponse() {
	envelope := suite.createTestEnvelope(map[string]any{"title": "Groceries", "budget": 500})

	r := suite.request(http.MethodPut, fmt.Sprintf("http://example.com/envelopes/%d", envelope.ID), `{ "budget": 0 }`)
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().JSONEq(fmt.Sprintf(`{"id": %d, "title": "Groceries", "budget": 0}`, envelope.ID), r.Body.String())
}

// TestEnvelopesUpdateNotFound verifies that an unknown envelope is reported
// before the body is validated.
func (suite *TestSuiteStandard) TestEnvelopesUpdateNotFound() {
	r := suite.request(http.MethodPut, "http://example.com/envelopes/17", `{ "budget": -5 }`)
	test.AssertHTTPStatus(suite.T(), r, http.StatusNotFound)

	r = suite.request(http.MethodPut, "http://example.com/envelopes/notanumber", `{ "budget": 5 }`)
	test.AssertHTTPStatus(suite.T(), r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestEnvelopesDelete() {
	envelope := suite.createTestEnvelope(map[string]any{"title": "Groceries", "budget": 500})
	path := fmt.Sprintf("http://example.com/envelopes/%d", envelope.ID)

	r := suite.request(http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusOK)
	suite.Assert().JSONEq(`{"message": "envelope deleted"}`, r.Body.String())

	r = suite.request(http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusNotFound)

	// Deleting again does not change anything
	r = suite.request(http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusNotFound)

	var response errorResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().Equal("there is no envelope matching your query", response.Error)
}

func (suite *TestSuiteStandard) TestEnvelopesDeleteKeepsOthers() {
	keep := suite.createTestEnvelope(map[string]any{"title": "Keep", "budget": 1})

	r := suite.request(http.MethodDelete, fmt.Sprintf("http://example.com/envelopes/%d", keep.ID+1), "")
	test.AssertHTTPStatus(suite.T(), r, http.StatusNotFound)

	r = suite.request(http.MethodGet, "http://example.com/envelopes", "")
	var list controllers.EnvelopeListResponse
	test.DecodeResponse(suite.T(), r, &list)
	suite.Assert().Len(list.Envelopes, 1)
}

// TestEnvelopesTitleTrimmed verifies that whitespace around titles is removed.
func (suite *TestSuiteStandard) TestEnvelopesTitleTrimmed() {
	envelope := suite.createTestEnvelope(map[string]any{"title": strings.Repeat(" ", 3) + "Rent", "budget": 1})
	suite.Assert().Equal("Rent", envelope.Title)
}

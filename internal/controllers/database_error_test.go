package controllers_test

import (
	"net/http"
	"testing"

	"github.com/envelope-budget/backend/internal/models"
	"github.com/envelope-budget/backend/test"
	"github.com/stretchr/testify/assert"
)

// TestDatabaseError verifies that the endpoints return the appropriate
// error when the database is disconnected.
func (suite *TestSuiteStandard) TestDatabaseError() {
	tests := []struct {
		name   string // Name of the test
		path   string // Path to send request to
		method string // HTTP method to use
		body   string // The request body
	}{
		{"GET envelopes", "/envelopes", http.MethodGet, ""},
		{"POST envelopes", "/envelopes", http.MethodPost, `{ "title": "Groceries", "budget": 5 }`},
		{"OPTIONS envelope", "/envelopes/1", http.MethodOptions, ""},
		{"GET envelope", "/envelopes/1", http.MethodGet, ""},
		{"PUT envelope", "/envelopes/1", http.MethodPut, `{ "budget": 5 }`},
		{"DELETE envelope", "/envelopes/1", http.MethodDelete, ""},
		{"POST withdraw", "/envelopes/1/withdraw", http.MethodPost, `{ "amount": 5 }`},
		{"POST transfer", "/envelopes/transfer/1/2", http.MethodPost, `{ "amount": 5 }`},
		{"GET transactions", "/transactions", http.MethodGet, ""},
		{"POST transactions", "/transactions", http.MethodPost, `{ "envelopeId": 1, "amount": 5 }`},
		{"GET envelope transactions", "/transactions/1", http.MethodGet, ""},
		{"DELETE transaction", "/transactions/1", http.MethodDelete, ""},
		{"GET healthz", "/healthz", http.MethodGet, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			recorder := test.Request(t, suite.controller, tt.method, "http://example.com"+tt.path, tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

			var response errorResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, models.ErrGeneral.Error(), response.Error)
		})
	}
}

package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/monet-app/backend/internal/controllers/v1"
	"github.com/monet-app/backend/internal/models"
	"github.com/monet-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestTransactions(headers map[string]string, editables []v1.TransactionEditable) v1.TransactionCreateResponse {
	recorder := suite.request(http.MethodPost, "/v1/transactions", editables, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return response
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	_, headers := suite.signIn()

	response := suite.createTestTransactions(headers, []v1.TransactionEditable{
		{Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(17.23), Category: "food", Description: "Groceries"},
		{Type: models.TransactionTypeIncome, Amount: decimal.NewFromFloat(1700), Category: "salary"},
	})

	require.Len(suite.T(), response.Data, 2)
	require.NotNil(suite.T(), response.Data[0].Data)
	assert.Equal(suite.T(), "Groceries", response.Data[0].Data.Description)
	assert.Contains(suite.T(), response.Data[0].Data.Links.Self, "/v1/transactions/")
	assert.False(suite.T(), response.Data[0].Data.Date.IsZero())
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	_, headers := suite.signIn()

	recorder := suite.request(http.MethodPost, "/v1/transactions", []v1.TransactionEditable{
		{Type: "transfer", Amount: decimal.NewFromFloat(10)},
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Error)
	assert.Equal(suite.T(), models.ErrTransactionTypeInvalid.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestTransactionsCreateBodyEmpty() {
	_, headers := suite.signIn()

	recorder := suite.request(http.MethodPost, "/v1/transactions", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	_, headers := suite.signIn()

	suite.createTestTransactions(headers, []v1.TransactionEditable{
		{Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(10), Category: "food", Description: "Lunch", Date: time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)},
		{Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(20), Category: "transport", Description: "Bus ticket", Date: time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)},
		{Type: models.TransactionTypeIncome, Amount: decimal.NewFromFloat(1700), Category: "salary", Date: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)},
	})

	tests := []struct {
		query string
		count int
	}{
		{"", 3},
		{"type=expense", 2},
		{"category=food", 1},
		{"search=bus", 1},
		{"fromDate=2026-05-02T00:00:00Z", 2},
		{"untilDate=2026-05-02T23:59:59Z", 2},
		{"amountMoreOrEqual=20", 2},
		{"amountLessOrEqual=10", 1},
		{"limit=1", 1},
		{"offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			recorder := suite.request(http.MethodGet, fmt.Sprintf("/v1/transactions?%s", tt.query), "", headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListOrder() {
	_, headers := suite.signIn()

	suite.createTestTransactions(headers, []v1.TransactionEditable{
		{Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(10), Description: "older", Date: time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)},
		{Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(20), Description: "newer", Date: time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)},
	})

	recorder := suite.request(http.MethodGet, "/v1/transactions", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 2)

	// Newest first
	assert.Equal(suite.T(), "newer", response.Data[0].Description)
	assert.Equal(suite.T(), "older", response.Data[1].Description)
}

func (suite *TestSuiteStandard) TestTransactionsListPagination() {
	_, headers := suite.signIn()

	var editables []v1.TransactionEditable
	for i := 0; i < 3; i++ {
		editables = append(editables, v1.TransactionEditable{
			Type:   models.TransactionTypeExpense,
			Amount: decimal.NewFromInt(int64(i + 1)),
		})
	}
	suite.createTestTransactions(headers, editables)

	recorder := suite.request(http.MethodGet, "/v1/transactions?limit=2", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Pagination)
	assert.Equal(suite.T(), 2, response.Pagination.Count)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
	assert.Equal(suite.T(), 2, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestTransactionsScopedToUser() {
	_, headers := suite.signIn()
	_, otherHeaders := suite.signInAs("other@example.com")

	response := suite.createTestTransactions(headers, []v1.TransactionEditable{
		{Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(10)},
	})

	// The other user sees neither the list entry nor the resource
	recorder := suite.request(http.MethodGet, "/v1/transactions", "", otherHeaders)
	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	assert.Empty(suite.T(), list.Data)

	recorder = suite.request(http.MethodGet, response.Data[0].Data.Links.Self, "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionGetInvalidID() {
	_, headers := suite.signIn()

	recorder := suite.request(http.MethodGet, "/v1/transactions/not-a-uuid", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = suite.request(http.MethodGet, "/v1/transactions/3a28b4d8-d530-441f-8bf1-ee8e70f06ac9", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionUpdate() {
	_, headers := suite.signIn()

	response := suite.createTestTransactions(headers, []v1.TransactionEditable{
		{Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(10), Description: "Lunch"},
	})

	recorder := suite.request(http.MethodPatch, response.Data[0].Data.Links.Self, map[string]string{
		"description": "Dinner",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	assert.Equal(suite.T(), "Dinner", updated.Data.Description)

	// Fields not in the body stay untouched
	assert.True(suite.T(), updated.Data.Amount.Equal(decimal.NewFromFloat(10)))
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	_, headers := suite.signIn()

	response := suite.createTestTransactions(headers, []v1.TransactionEditable{
		{Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(10)},
	})

	recorder := suite.request(http.MethodDelete, response.Data[0].Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.request(http.MethodGet, response.Data[0].Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsUnauthenticated() {
	recorder := suite.request(http.MethodGet, "/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestTransactionsDBClosed() {
	_, headers := suite.signIn()

	suite.CloseDB()

	recorder := suite.request(http.MethodGet, "/v1/transactions", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestTransactionBudgetExceededNotification() {
	user, headers := suite.signIn()

	budget := models.Budget{
		UserID:   user.ID,
		Category: "food",
		Amount:   decimal.NewFromFloat(500),
		Period:   models.BudgetPeriodMonthly,
	}
	require.Nil(suite.T(), models.DB.Create(&budget).Error)

	// Below the limit, no notification
	suite.createTestTransactions(headers, []v1.TransactionEditable{
		{Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(400), Category: "food", Date: time.Now().In(time.UTC)},
	})

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Notification{}).Count(&count).Error)
	assert.Zero(suite.T(), count)

	// This pushes the month over the limit
	suite.createTestTransactions(headers, []v1.TransactionEditable{
		{Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(200), Category: "food", Date: time.Now().In(time.UTC)},
	})

	var notifications []models.Notification
	require.Nil(suite.T(), models.DB.Find(&notifications).Error)
	require.Len(suite.T(), notifications, 1)
	assert.Equal(suite.T(), models.NotificationBudgetExceeded, notifications[0].Type)
	assert.Equal(suite.T(), budget.ID, notifications[0].RelatedID)
}

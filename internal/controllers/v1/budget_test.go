package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/monet-app/backend/internal/controllers/v1"
	"github.com/monet-app/backend/internal/models"
	"github.com/monet-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestBudgets(headers map[string]string, editables []v1.BudgetEditable) v1.BudgetCreateResponse {
	recorder := suite.request(http.MethodPost, "/v1/budgets", editables, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return response
}

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	_, headers := suite.signIn()

	response := suite.createTestBudgets(headers, []v1.BudgetEditable{
		{Category: "food", Amount: decimal.NewFromFloat(500), Period: models.BudgetPeriodMonthly},
	})

	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Data)
	assert.Equal(suite.T(), "food", response.Data[0].Data.Category)
	assert.True(suite.T(), response.Data[0].Data.Spent.IsZero())
	assert.True(suite.T(), response.Data[0].Data.Overspent.IsZero())
}

func (suite *TestSuiteStandard) TestBudgetsCreateInvalidPeriod() {
	_, headers := suite.signIn()

	recorder := suite.request(http.MethodPost, "/v1/budgets", []v1.BudgetEditable{
		{Category: "food", Amount: decimal.NewFromFloat(500), Period: "fortnightly"},
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestBudgetsListFilter() {
	_, headers := suite.signIn()

	suite.createTestBudgets(headers, []v1.BudgetEditable{
		{Category: "food", Amount: decimal.NewFromFloat(500), Period: models.BudgetPeriodMonthly},
		{Category: "transport", Amount: decimal.NewFromFloat(100), Period: models.BudgetPeriodWeekly},
	})

	recorder := suite.request(http.MethodGet, "/v1/budgets", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)

	recorder = suite.request(http.MethodGet, "/v1/budgets?category=food", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "food", response.Data[0].Category)

	recorder = suite.request(http.MethodGet, "/v1/budgets?period=weekly", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "transport", response.Data[0].Category)
}

func (suite *TestSuiteStandard) TestBudgetSpentAndOverspent() {
	user, headers := suite.signIn()

	response := suite.createTestBudgets(headers, []v1.BudgetEditable{
		{Category: "food", Amount: decimal.NewFromFloat(500), Period: models.BudgetPeriodMonthly},
	})

	now := time.Now().In(time.UTC)
	for _, amount := range []float64{400, 200} {
		require.Nil(suite.T(), models.DB.Create(&models.Transaction{
			UserID:   user.ID,
			Type:     models.TransactionTypeExpense,
			Amount:   decimal.NewFromFloat(amount),
			Category: "food",
			Date:     now,
		}).Error)
	}

	// Income and other categories must not count against the limit
	require.Nil(suite.T(), models.DB.Create(&models.Transaction{
		UserID:   user.ID,
		Type:     models.TransactionTypeIncome,
		Amount:   decimal.NewFromFloat(1000),
		Category: "food",
		Date:     now,
	}).Error)

	recorder := suite.request(http.MethodGet, response.Data[0].Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var budget v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &budget)
	assert.True(suite.T(), budget.Data.Spent.Equal(decimal.NewFromFloat(600)), budget.Data.Spent.String())
	assert.True(suite.T(), budget.Data.Overspent.Equal(decimal.NewFromFloat(100)), budget.Data.Overspent.String())
}

func (suite *TestSuiteStandard) TestBudgetUpdate() {
	_, headers := suite.signIn()

	response := suite.createTestBudgets(headers, []v1.BudgetEditable{
		{Category: "food", Amount: decimal.NewFromFloat(500), Period: models.BudgetPeriodMonthly},
	})

	recorder := suite.request(http.MethodPatch, response.Data[0].Data.Links.Self, map[string]any{
		"amount": 750,
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	assert.True(suite.T(), updated.Data.Amount.Equal(decimal.NewFromFloat(750)))
	assert.Equal(suite.T(), "food", updated.Data.Category)
}

func (suite *TestSuiteStandard) TestBudgetDelete() {
	_, headers := suite.signIn()

	response := suite.createTestBudgets(headers, []v1.BudgetEditable{
		{Category: "food", Amount: decimal.NewFromFloat(500), Period: models.BudgetPeriodMonthly},
	})

	recorder := suite.request(http.MethodDelete, response.Data[0].Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.request(http.MethodGet, response.Data[0].Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsScopedToUser() {
	_, headers := suite.signIn()
	_, otherHeaders := suite.signInAs("other@example.com")

	response := suite.createTestBudgets(headers, []v1.BudgetEditable{
		{Category: "food", Amount: decimal.NewFromFloat(500), Period: models.BudgetPeriodMonthly},
	})

	recorder := suite.request(http.MethodGet, response.Data[0].Data.Links.Self, "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = suite.request(http.MethodDelete, response.Data[0].Data.Links.Self, "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

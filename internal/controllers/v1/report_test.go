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

func (suite *TestSuiteStandard) TestReportWeek() {
	user, headers := suite.signIn()

	now := time.Now().In(time.UTC)
	for _, transaction := range []models.Transaction{
		{UserID: user.ID, Type: models.TransactionTypeIncome, Amount: decimal.NewFromFloat(1000), Category: "salary", Date: now.AddDate(0, 0, -1)},
		{UserID: user.ID, Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(400), Category: "food", Date: now.AddDate(0, 0, -2)},
		// Outside the week window
		{UserID: user.ID, Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(999), Category: "food", Date: now.AddDate(0, 0, -30)},
	} {
		transaction := transaction
		require.Nil(suite.T(), models.DB.Create(&transaction).Error)
	}

	recorder := suite.request(http.MethodGet, "/v1/reports?period=week", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	assert.True(suite.T(), response.Data.Summary.TotalIncome.Equal(decimal.NewFromFloat(1000)))
	assert.True(suite.T(), response.Data.Summary.TotalExpense.Equal(decimal.NewFromFloat(400)))
	assert.True(suite.T(), response.Data.Summary.NetCashFlow.Equal(decimal.NewFromFloat(600)))
	assert.Equal(suite.T(), int64(60), response.Data.Summary.SavingsRate)

	require.Len(suite.T(), response.Data.CategoryExpenses, 1)
	assert.Equal(suite.T(), "Food & Groceries", response.Data.CategoryExpenses[0].CategoryName)
	assert.Len(suite.T(), response.Data.ChartData, 7)
}

func (suite *TestSuiteStandard) TestReportPeriodMissing() {
	_, headers := suite.signIn()

	recorder := suite.request(http.MethodGet, "/v1/reports", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "the period query parameter must be set to week, month or year", *response.Error)
}

func (suite *TestSuiteStandard) TestReportPeriodInvalid() {
	_, headers := suite.signIn()

	recorder := suite.request(http.MethodGet, "/v1/reports?period=quarter", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestReportScopedToUser() {
	user, _ := suite.signIn()
	_, otherHeaders := suite.signInAs("other@example.com")

	require.Nil(suite.T(), models.DB.Create(&models.Transaction{
		UserID:   user.ID,
		Type:     models.TransactionTypeExpense,
		Amount:   decimal.NewFromFloat(100),
		Category: "food",
		Date:     time.Now().In(time.UTC),
	}).Error)

	recorder := suite.request(http.MethodGet, "/v1/reports?period=month", "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Summary.TotalExpense.IsZero())
	assert.Empty(suite.T(), response.Data.CategoryExpenses)
}

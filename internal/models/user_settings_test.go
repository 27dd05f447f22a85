package models_test

import (
	"github.com/monet-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSettingsCreatedOnFirstRead() {
	user := suite.createTestUser(models.User{})

	settings, err := models.SettingsForUser(models.DB, user.ID)
	require.Nil(suite.T(), err)

	assert.True(suite.T(), settings.PushNotifications)
	assert.True(suite.T(), settings.GoalDeadlineNotifications)
	assert.True(suite.T(), settings.BudgetExceededNotifications)
	assert.False(suite.T(), settings.DailyReminder)
	assert.False(suite.T(), settings.HideAmounts)
	assert.Equal(suite.T(), "auto", settings.Theme)
	assert.Equal(suite.T(), "en", settings.Language)

	// A second read returns the same row instead of creating a new one
	again, err := models.SettingsForUser(models.DB, user.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), settings.ID, again.ID)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.UserSettings{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestBudgetExceededNotificationRespectsSettings() {
	user := suite.createTestUser(models.User{})

	settings, err := models.SettingsForUser(models.DB, user.ID)
	require.Nil(suite.T(), err)

	settings.BudgetExceededNotifications = false
	require.Nil(suite.T(), models.DB.Save(&settings).Error)

	budget := suite.createTestBudget(models.Budget{UserID: user.ID})

	err = models.NotifyBudgetExceeded(models.DB, budget, budget.Amount.Add(budget.Amount), budget.Amount)
	require.Nil(suite.T(), err)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Notification{}).Count(&count).Error)
	assert.Zero(suite.T(), count)
}

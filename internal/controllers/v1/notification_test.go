package v1_test

import (
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/monet-app/backend/internal/controllers/v1"
	"github.com/monet-app/backend/internal/models"
	"github.com/monet-app/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestNotification(userID uuid.UUID, title string, isRead bool) models.Notification {
	notification := models.Notification{
		UserID:  userID,
		Type:    models.NotificationBudgetExceeded,
		Title:   title,
		Message: "You spent too much.",
		IsRead:  isRead,
	}
	require.Nil(suite.T(), models.DB.Create(&notification).Error)

	return notification
}

func (suite *TestSuiteStandard) TestNotificationsList() {
	user, headers := suite.signIn()

	suite.createTestNotification(user.ID, "First", true)
	suite.createTestNotification(user.ID, "Second", false)

	recorder := suite.request(http.MethodGet, "/v1/notifications", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.NotificationListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 2)

	// Newest first
	assert.Equal(suite.T(), "Second", response.Data[0].Title)
	assert.Equal(suite.T(), "First", response.Data[1].Title)
}

func (suite *TestSuiteStandard) TestNotificationsUnreadFilter() {
	user, headers := suite.signIn()

	suite.createTestNotification(user.ID, "Read", true)
	unread := suite.createTestNotification(user.ID, "Unread", false)

	recorder := suite.request(http.MethodGet, "/v1/notifications?unread=true", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.NotificationListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), unread.ID, response.Data[0].ID)
}

func (suite *TestSuiteStandard) TestNotificationMarkRead() {
	user, headers := suite.signIn()

	notification := suite.createTestNotification(user.ID, "Unread", false)

	recorder := suite.request(http.MethodPatch, "/v1/notifications/"+notification.ID.String(), map[string]bool{
		"isRead": true,
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.NotificationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.IsRead)

	var reloaded models.Notification
	require.Nil(suite.T(), models.DB.First(&reloaded, "id = ?", notification.ID).Error)
	assert.True(suite.T(), reloaded.IsRead)
}

func (suite *TestSuiteStandard) TestNotificationDelete() {
	user, headers := suite.signIn()

	notification := suite.createTestNotification(user.ID, "Gone", false)

	recorder := suite.request(http.MethodDelete, "/v1/notifications/"+notification.ID.String(), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.request(http.MethodDelete, "/v1/notifications/"+notification.ID.String(), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestNotificationsScopedToUser() {
	user, _ := suite.signIn()
	_, otherHeaders := suite.signInAs("other@example.com")

	notification := suite.createTestNotification(user.ID, "Private", false)

	recorder := suite.request(http.MethodGet, "/v1/notifications", "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var list v1.NotificationListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	assert.Empty(suite.T(), list.Data)

	recorder = suite.request(http.MethodPatch, "/v1/notifications/"+notification.ID.String(), map[string]bool{
		"isRead": true,
	}, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

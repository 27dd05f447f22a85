package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/monet-app/backend/internal/models"
)

// NotificationEditable represents the values of a notification that
// can be changed by the client.
type NotificationEditable struct {
	IsRead bool `json:"isRead" example:"true"`
}

type NotificationLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/notifications/7e34cc1a-7ff0-4f17-a4f7-8de0c8822df3"`
}

type Notification struct {
	models.DefaultModel
	Type      models.NotificationType `json:"type" example:"goal_completed"`
	Title     string                  `json:"title" example:"Goal completed"`
	Message   string                  `json:"message" example:"You reached your goal \"Emergency fund\". Congratulations!"`
	IsRead    bool                    `json:"isRead" example:"false"`
	RelatedID uuid.UUID               `json:"relatedId" example:"8323820c-9588-4cbc-8a4a-72e4a1b73d84"`
	Links     NotificationLinks       `json:"links"`
}

func newNotification(c *gin.Context, model models.Notification) Notification {
	url := c.GetString(string(models.ContextURL))

	return Notification{
		DefaultModel: model.DefaultModel,
		Type:         model.Type,
		Title:        model.Title,
		Message:      model.Message,
		IsRead:       model.IsRead,
		RelatedID:    model.RelatedID,
		Links: NotificationLinks{
			Self: fmt.Sprintf("%s/v1/notifications/%s", url, model.ID),
		},
	}
}

type NotificationListResponse struct {
	Data       []Notification `json:"data"`
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"`
	Pagination *Pagination    `json:"pagination"`
}

type NotificationResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"`
	Data  *Notification `json:"data"`
}

type NotificationQueryFilter struct {
	Unread bool `form:"unread" filterField:"false"` // Only return unread notifications
	Offset uint `form:"offset" filterField:"false"` // The offset of the first notification returned. Defaults to 0.
	Limit  int  `form:"limit" filterField:"false"`  // Maximum number of notifications to return. Defaults to 50.
}

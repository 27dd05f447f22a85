package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monet-app/backend/internal/httputil"
	"github.com/monet-app/backend/internal/models"
	"golang.org/x/exp/slices"
)

func (co Controller) RegisterNotificationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsNotifications)
		r.GET("", co.GetNotifications)
	}
	{
		r.OPTIONS("/:id", co.OptionsNotificationDetail)
		r.PATCH("/:id", co.UpdateNotification)
		r.DELETE("/:id", co.DeleteNotification)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Router			/v1/notifications [options]
func (co Controller) OptionsNotifications(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/notifications/{id} [options]
func (co Controller) OptionsNotificationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.getNotification(c, uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPatchDelete(c)
}

// @Summary		Get notifications
// @Description	Returns the user's notifications, newest first
// @Tags			Notifications
// @Produce		json
// @Success		200	{object}	NotificationListResponse
// @Failure		400	{object}	NotificationListResponse
// @Failure		500	{object}	NotificationListResponse
// @Router			/v1/notifications [get]
// @Param			unread	query	bool	false	"Only return unread notifications"
// @Param			offset	query	uint	false	"The offset of the first notification returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of notifications to return. Defaults to 50."
func (co Controller) GetNotifications(c *gin.Context) {
	var filter NotificationQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, NotificationListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	user := currentUser(c)

	q := co.db.
		Order("notifications.created_at DESC").
		Where("notifications.user_id = ?", user.ID)

	if slices.Contains(setFields, "Unread") && filter.Unread {
		q = q.Where("notifications.is_read = ?", false)
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var notifications []models.Notification
	err := q.Find(&notifications).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Notification, 0, len(notifications))
	for _, notification := range notifications {
		data = append(data, newNotification(c, notification))
	}

	c.JSON(http.StatusOK, NotificationListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Update notification
// @Description	Updates a notification, typically to mark it as read
// @Tags			Notifications
// @Accept			json
// @Produce		json
// @Success		200				{object}	NotificationResponse
// @Failure		400				{object}	NotificationResponse
// @Failure		404				{object}	NotificationResponse
// @Failure		500				{object}	NotificationResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			notification	body		NotificationEditable	true	"Notification"
// @Router			/v1/notifications/{id} [patch]
func (co Controller) UpdateNotification(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &e,
		})
		return
	}

	notification, err := co.getNotification(c, uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, NotificationEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &e,
		})
		return
	}

	var data NotificationEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &e,
		})
		return
	}

	err = co.db.Model(&notification).Select("", updateFields...).Updates(models.Notification{IsRead: data.IsRead}).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationResponse{
			Error: &e,
		})
		return
	}

	apiResource := newNotification(c, notification)
	c.JSON(http.StatusOK, NotificationResponse{Data: &apiResource})
}

// @Summary		Delete notification
// @Description	Deletes a notification
// @Tags			Notifications
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/notifications/{id} [delete]
func (co Controller) DeleteNotification(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	notification, err := co.getNotification(c, uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.db.Delete(&notification).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// getNotification loads a notification, scoped to the authenticated user.
func (co Controller) getNotification(c *gin.Context, uri URIID) (models.Notification, error) {
	var notification models.Notification
	err := co.db.First(&notification, "id = ? AND user_id = ?", uri.ID.UUID, currentUser(c).ID).Error
	if err != nil {
		return models.Notification{}, err
	}

	return notification, nil
}

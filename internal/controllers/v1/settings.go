package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monet-app/backend/internal/httputil"
	"github.com/monet-app/backend/internal/models"
)

func (co Controller) RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsSettings)
	r.GET("", co.GetSettings)
	r.PATCH("", co.UpdateSettings)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func (co Controller) OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get settings
// @Description	Returns the user's preferences, creating the defaults on first read
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	SettingsResponse
// @Router			/v1/settings [get]
func (co Controller) GetSettings(c *gin.Context) {
	user := currentUser(c)

	settings, err := models.SettingsForUser(co.db, user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSettings(settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &apiResource})
}

// @Summary		Update settings
// @Description	Updates the user's preferences. Only values to be updated need to be specified.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/settings [patch]
func (co Controller) UpdateSettings(c *gin.Context) {
	user := currentUser(c)

	settings, err := models.SettingsForUser(co.db, user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SettingsEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	var data SettingsEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	err = co.db.Model(&settings).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSettings(settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &apiResource})
}

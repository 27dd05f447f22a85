package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/monet-app/backend/internal/httputil"
	"github.com/monet-app/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// RegisterAuthRoutes sets up the authentication endpoints. Only /me
// requires an authenticated request, the middleware for it is attached
// by the router.
func (co Controller) RegisterAuthRoutes(public, authenticated *gin.RouterGroup) {
	{
		public.OPTIONS("/register", httputil.OptionsPost)
		public.POST("/register", co.Register)
		public.OPTIONS("/login", httputil.OptionsPost)
		public.POST("/login", co.Login)
		public.OPTIONS("/password-reset", httputil.OptionsPost)
		public.POST("/password-reset", co.RequestPasswordReset)
		public.OPTIONS("/password-reset/confirm", httputil.OptionsPost)
		public.POST("/password-reset/confirm", co.ConfirmPasswordReset)
	}
	{
		authenticated.OPTIONS("/me", httputil.OptionsGet)
		authenticated.GET("/me", co.Me)
	}
}

// @Summary		Register
// @Description	Creates a new account and returns a session token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		500		{object}	SessionResponse
// @Param			account	body		RegisterEditable	true	"Account"
// @Router			/v1/auth/register [post]
func (co Controller) Register(c *gin.Context) {
	var data RegisterEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	user := models.User{
		Name:  data.Name,
		Email: data.Email,
	}

	err = user.SetPassword(data.Password)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{
			Error: &e,
		})
		return
	}

	err = co.db.Create(&user).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	// Settings are created eagerly so the first app launch already has
	// them, SettingsForUser would create them lazily anyway
	settings := models.DefaultSettings(user.ID)
	err = co.db.Create(&settings).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	co.session(c, user, http.StatusCreated)
}

// @Summary		Login
// @Description	Verifies credentials and returns a session token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		401			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var data LoginEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	user, err := models.UserByEmail(co.db, data.Email)
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			e := errInvalidCredentials.Error()
			c.JSON(http.StatusUnauthorized, SessionResponse{
				Error: &e,
			})
			return
		}

		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	if !user.CheckPassword(data.Password) {
		e := errInvalidCredentials.Error()
		c.JSON(http.StatusUnauthorized, SessionResponse{
			Error: &e,
		})
		return
	}

	co.session(c, user, http.StatusOK)
}

// @Summary		Request password reset
// @Description	Mails a single-use password reset token to the given address. Always returns 204 so that addresses cannot be probed.
// @Tags			Auth
// @Accept			json
// @Success		204
// @Failure		400		{object}	httpError
// @Param			request	body		PasswordResetEditable	true	"Request"
// @Router			/v1/auth/password-reset [post]
func (co Controller) RequestPasswordReset(c *gin.Context) {
	var data PasswordResetEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	user, err := models.UserByEmail(co.db, data.Email)
	if err != nil {
		// The response must not reveal whether the address exists
		if !errors.Is(err, models.ErrResourceNotFound) {
			log.Error().Err(err).Msg("password reset lookup failed")
		}
		c.JSON(http.StatusNoContent, nil)
		return
	}

	reset, err := models.CreatePasswordReset(co.db, user.ID)
	if err != nil {
		log.Error().Err(err).Msg("could not create password reset token")
		c.JSON(http.StatusNoContent, nil)
		return
	}

	err = co.mail.SendPasswordReset(user.Email, user.Name, reset.Token.String())
	if err != nil {
		log.Error().Err(err).Msg("could not send password reset mail")
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Confirm password reset
// @Description	Sets a new password using a reset token. Each token can be used once.
// @Tags			Auth
// @Accept			json
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			request	body		PasswordResetConfirmEditable	true	"Request"
// @Router			/v1/auth/password-reset/confirm [post]
func (co Controller) ConfirmPasswordReset(c *gin.Context) {
	var data PasswordResetConfirmEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	token, err := uuid.Parse(data.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: models.ErrResetTokenInvalid.Error(),
		})
		return
	}

	err = models.RedeemPasswordReset(co.db, token, data.Password)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Current user
// @Description	Returns the account the request is authenticated as
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	AuthUserResponse
// @Failure		401	{object}	httpError
// @Router			/v1/auth/me [get]
func (co Controller) Me(c *gin.Context) {
	apiResource := newAuthUser(currentUser(c))
	c.JSON(http.StatusOK, AuthUserResponse{Data: &apiResource})
}

// session issues a token for the user and writes the session response.
func (co Controller) session(c *gin.Context, user models.User, status int) {
	token, err := co.tokens.Generate(user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{
			Error: &e,
		})
		return
	}

	c.JSON(status, SessionResponse{
		Data: &Session{
			Token: token,
			User:  newAuthUser(user),
		},
	})
}

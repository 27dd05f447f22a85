// Package v1 implements the v1 REST API.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/monet-app/backend/internal/auth"
	"github.com/monet-app/backend/internal/mailer"
	"github.com/monet-app/backend/internal/models"
	"gorm.io/gorm"
)

// Controller bundles the dependencies of the API handlers.
//
// The database and the collaborating services are injected explicitly so
// that tests can run against isolated instances.
type Controller struct {
	db     *gorm.DB
	tokens *auth.TokenService
	mail   *mailer.Sender
}

func NewController(db *gorm.DB, tokens *auth.TokenService, mail *mailer.Sender) Controller {
	return Controller{
		db:     db,
		tokens: tokens,
		mail:   mail,
	}
}

// userKey is the context key the auth middleware stores the
// authenticated user under.
const userKey = "monet-user"

// SetUser stores the authenticated user on the request context. It is
// called by the auth middleware.
func SetUser(c *gin.Context, user models.User) {
	c.Set(userKey, user)
}

// currentUser returns the user the request is authenticated as. The auth
// middleware guarantees it is set on all resource routes.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(userKey).(models.User)
}

package v1

import (
	"github.com/monet-app/backend/internal/models"
)

// RegisterEditable is the body for creating a new account.
type RegisterEditable struct {
	Name     string `json:"name" binding:"required" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"correct horse battery staple"`
}

// LoginEditable is the body for logging in.
type LoginEditable struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

// PasswordResetEditable is the body for requesting a password reset.
type PasswordResetEditable struct {
	Email string `json:"email" binding:"required,email" example:"jane@example.com"`
}

// PasswordResetConfirmEditable is the body for redeeming a reset token.
type PasswordResetConfirmEditable struct {
	Token    string `json:"token" binding:"required" example:"b5b8bffc-2cd5-421b-aabc-0d2e6b2c0b92"`
	Password string `json:"password" binding:"required,min=8" example:"correct horse battery staple"`
}

type AuthUser struct {
	models.DefaultModel
	Name  string `json:"name" example:"Jane Doe"`
	Email string `json:"email" example:"jane@example.com"`
}

func newAuthUser(model models.User) AuthUser {
	return AuthUser{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Email:        model.Email,
	}
}

type Session struct {
	Token string   `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  AuthUser `json:"user"`
}

type SessionResponse struct {
	Error *string  `json:"error" example:"the email or password is incorrect"`
	Data  *Session `json:"data"`
}

type AuthUserResponse struct {
	Error *string   `json:"error" example:"the token is invalid or expired"`
	Data  *AuthUser `json:"data"`
}

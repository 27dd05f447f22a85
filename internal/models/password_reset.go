package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrResetTokenInvalid deliberately does not distinguish between an
// unknown, expired and already used token.
var ErrResetTokenInvalid = errors.New("the password reset token is invalid or has expired")

// passwordResetTTL is how long a reset token stays valid.
const passwordResetTTL = time.Hour

// PasswordReset is a single-use token that lets a user set a new
// password without knowing the old one.
type PasswordReset struct {
	DefaultModel
	User      User      `json:"-"`
	UserID    uuid.UUID `gorm:"index"`
	Token     uuid.UUID `gorm:"uniqueIndex"`
	ExpiresAt time.Time
	UsedAt    *time.Time
}

func (p *PasswordReset) AfterFind(_ *gorm.DB) error {
	p.ExpiresAt = p.ExpiresAt.In(time.UTC)
	if p.UsedAt != nil {
		used := p.UsedAt.In(time.UTC)
		p.UsedAt = &used
	}

	return nil
}

// CreatePasswordReset issues a new reset token for the user.
func CreatePasswordReset(db *gorm.DB, userID uuid.UUID) (PasswordReset, error) {
	reset := PasswordReset{
		UserID:    userID,
		Token:     uuid.New(),
		ExpiresAt: time.Now().In(time.UTC).Add(passwordResetTTL),
	}

	err := db.Create(&reset).Error
	if err != nil {
		return PasswordReset{}, err
	}

	return reset, nil
}

// RedeemPasswordReset sets a new password for the user the token was
// issued to and marks the token as used. A token can only be redeemed
// once and only before it expires.
func RedeemPasswordReset(db *gorm.DB, token uuid.UUID, password string) error {
	var reset PasswordReset
	err := db.Where(&PasswordReset{Token: token}).First(&reset).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}

	if reset.UsedAt != nil || time.Now().In(time.UTC).After(reset.ExpiresAt) {
		return ErrResetTokenInvalid
	}

	var user User
	err = db.First(&user, "id = ?", reset.UserID).Error
	if err != nil {
		return err
	}

	err = user.SetPassword(password)
	if err != nil {
		return err
	}

	err = db.Model(&user).Select("PasswordHash").Updates(&user).Error
	if err != nil {
		return err
	}

	now := time.Now().In(time.UTC)
	reset.UsedAt = &now
	return db.Model(&reset).Select("UsedAt").Updates(&reset).Error
}

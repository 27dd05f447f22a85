package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSettings holds the per-user preference toggles.
type UserSettings struct {
	DefaultModel
	User                        User      `json:"-"`
	UserID                      uuid.UUID `gorm:"uniqueIndex"`
	PushNotifications           bool
	GoalDeadlineNotifications   bool
	BudgetExceededNotifications bool
	DailyReminder               bool
	HideAmounts                 bool
	Theme                       string
	Language                    string
}

// DefaultSettings returns the settings a new user starts with.
func DefaultSettings(userID uuid.UUID) UserSettings {
	return UserSettings{
		UserID:                      userID,
		PushNotifications:           true,
		GoalDeadlineNotifications:   true,
		BudgetExceededNotifications: true,
		DailyReminder:               false,
		HideAmounts:                 false,
		Theme:                       "auto",
		Language:                    "en",
	}
}

// SettingsForUser returns the user's settings, creating the defaults on
// first read.
func SettingsForUser(db *gorm.DB, userID uuid.UUID) (UserSettings, error) {
	var settings UserSettings
	err := db.Where(&UserSettings{UserID: userID}).First(&settings).Error
	if err == nil {
		return settings, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return UserSettings{}, err
	}

	settings = DefaultSettings(userID)
	err = db.Create(&settings).Error
	if err != nil {
		return UserSettings{}, err
	}

	return settings, nil
}

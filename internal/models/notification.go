package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NotificationType classifies what a notification is about.
type NotificationType string

const (
	NotificationGoalCompleted  NotificationType = "goal_completed"
	NotificationBudgetExceeded NotificationType = "budget_exceeded"
)

// Notification is an in-app notification record. Delivery to devices is
// out of scope, this is only the inbox the app renders.
type Notification struct {
	DefaultModel
	User      User      `json:"-"`
	UserID    uuid.UUID `gorm:"index"`
	Type      NotificationType
	Title     string
	Message   string
	IsRead    bool
	RelatedID uuid.UUID
}

// NotifyGoalCompleted records that a savings goal has been reached.
func NotifyGoalCompleted(db *gorm.DB, goal Goal) error {
	return db.Create(&Notification{
		UserID:    goal.UserID,
		Type:      NotificationGoalCompleted,
		Title:     "Goal completed",
		Message:   fmt.Sprintf("You reached your goal %q. Congratulations!", goal.Title),
		RelatedID: goal.ID,
	}).Error
}

// NotifyBudgetExceeded records that a budget limit has been passed,
// unless the user has disabled these notifications.
func NotifyBudgetExceeded(db *gorm.DB, budget Budget, spent, limit decimal.Decimal) error {
	settings, err := SettingsForUser(db, budget.UserID)
	if err != nil {
		return err
	}

	if !settings.BudgetExceededNotifications {
		return nil
	}

	return db.Create(&Notification{
		UserID:    budget.UserID,
		Type:      NotificationBudgetExceeded,
		Title:     "Budget exceeded",
		Message:   fmt.Sprintf("You spent %s of your %s budget for %q this month.", spent, limit, budget.Category),
		RelatedID: budget.ID,
	}).Error
}

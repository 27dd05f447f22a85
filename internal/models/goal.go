package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings goal the user adds funds to over time.
type Goal struct {
	DefaultModel
	User          User            `json:"-"`
	UserID        uuid.UUID       `gorm:"index"`
	Title         string
	Description   string
	TargetAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CurrentAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Deadline      *time.Time
	CompletedAt   *time.Time
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Title = strings.TrimSpace(g.Title)
	g.Description = strings.TrimSpace(g.Description)

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !g.TargetAmount.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	if g.CurrentAmount.IsNegative() {
		return ErrGoalCurrentNegative
	}

	return nil
}

// AddFunds increases the current amount of the goal.
//
// When the new total reaches the target amount and the goal has not been
// completed before, the completion time is stamped. The transition is
// one way, funding a completed goal never changes the completion time.
// Reaching the target also records a notification for the user; that
// write is independent of the goal update and not rolled back with it.
func (g *Goal) AddFunds(db *gorm.DB, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrGoalFundingNotPositive
	}

	g.CurrentAmount = g.CurrentAmount.Add(amount)

	completed := false
	if g.CompletedAt == nil && g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
		now := time.Now().In(time.UTC)
		g.CompletedAt = &now
		completed = true
	}

	err := db.Model(g).Select("CurrentAmount", "CompletedAt").Updates(g).Error
	if err != nil {
		return err
	}

	if completed {
		_ = NotifyGoalCompleted(db, *g)
	}

	return nil
}

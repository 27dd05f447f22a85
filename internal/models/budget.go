package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetPeriod is the cadence a budget limit applies to.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Budget is a spending limit for a single category.
//
// The spent amount is never stored, it is recomputed from the matching
// transactions on every read.
type Budget struct {
	DefaultModel
	User      User            `json:"-"`
	UserID    uuid.UUID       `gorm:"index"`
	Category  string          `gorm:"index"`
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The limit for the period
	Period    BudgetPeriod
	StartDate time.Time
	EndDate   time.Time
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)

	return nil
}

func (b *Budget) AfterSave(_ *gorm.DB) error {
	if !b.Amount.IsPositive() {
		return ErrBudgetAmountNotPositive
	}

	if b.Period != BudgetPeriodWeekly && b.Period != BudgetPeriodMonthly && b.Period != BudgetPeriodYearly {
		return ErrBudgetPeriodInvalid
	}

	return nil
}

// Spent returns the sum of the user's expense transactions for the
// budget's category in the calendar month of the reference time.
//
// The stored period only describes the budget's cadence, the calculation
// always uses month to date.
func (b Budget) Spent(db *gorm.DB, now time.Time) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	err := db.Table("transactions").
		Where("transactions.deleted_at IS NULL").
		Where("transactions.user_id = ?", b.UserID).
		Where("transactions.type = ?", TransactionTypeExpense).
		Where("transactions.category = ?", b.Category).
		Where("transactions.date >= ? AND transactions.date < ?", monthStart, monthEnd).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("getting transactions for budget %s failed: %w", b.ID, err)
	}

	return sum.Decimal, nil
}

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType determines whether a transaction adds to or subtracts
// from the user's balance.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single income or expense record.
//
// The amount is always the positive magnitude, the sign is derived
// from the type.
type Transaction struct {
	DefaultModel
	User        User            `json:"-"`
	UserID      uuid.UUID       `gorm:"index"`
	Type        TransactionType `gorm:"index"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category    string          `gorm:"index"`
	Description string
	Date        time.Time
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) (err error) {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave sets the timezone of the date to UTC and defaults it to
// the current time when it is unset.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Category = strings.TrimSpace(t.Category)
	t.Description = strings.TrimSpace(t.Description)

	return nil
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if t.Type != TransactionTypeIncome && t.Type != TransactionTypeExpense {
		return ErrTransactionTypeInvalid
	}

	if t.Amount.IsNegative() {
		return ErrTransactionAmountNegative
	}

	return nil
}

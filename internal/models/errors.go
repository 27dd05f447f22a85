package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrEmailNotUnique        = errors.New("this email address is already registered")
	ErrCategoryNameNotUnique = errors.New("this category name is already in use")

	ErrTransactionTypeInvalid      = errors.New("transaction type must be income or expense")
	ErrTransactionAmountNegative   = errors.New("transaction amounts must be zero or positive")
	ErrBudgetAmountNotPositive     = errors.New("budget amounts must be larger than zero")
	ErrBudgetPeriodInvalid         = errors.New("budget period must be weekly, monthly or yearly")
	ErrGoalTargetNotPositive       = errors.New("goal target amounts must be larger than zero")
	ErrGoalCurrentNegative         = errors.New("goal current amounts must be zero or positive")
	ErrGoalFundingNotPositive      = errors.New("the amount of funds to add must be larger than zero")
	ErrCategoryTypeInvalid         = errors.New("category type must be expense, income or both")
	ErrCategoryNotCustom           = errors.New("default categories cannot be deleted")
)

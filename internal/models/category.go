package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryType determines which transaction types a category applies to.
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeBoth    CategoryType = "both"
)

// FallbackColor is used when a transaction references a category that
// does not exist anymore.
const FallbackColor = "#6B7280"

// Category maps a category name to its display name and color.
//
// Only custom categories are stored. The fixed default set is defined in
// code and merged in at read time, so a fresh account sees the defaults
// without any seeding.
type Category struct {
	DefaultModel
	User        User      `json:"-"`
	UserID      uuid.UUID `gorm:"uniqueIndex:category_user_name"`
	Name        string    `gorm:"uniqueIndex:category_user_name"`
	DisplayName string
	Color       string
	Type        CategoryType
	IsCustom    bool
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.DisplayName = strings.TrimSpace(c.DisplayName)

	return nil
}

func (c *Category) AfterSave(_ *gorm.DB) error {
	if c.Type != CategoryTypeExpense && c.Type != CategoryTypeIncome && c.Type != CategoryTypeBoth {
		return ErrCategoryTypeInvalid
	}

	return nil
}

// defaultCategories is the fixed set every user starts with.
var defaultCategories = []Category{
	{Name: "food", DisplayName: "Food & Groceries", Color: "#F59E0B", Type: CategoryTypeExpense},
	{Name: "transport", DisplayName: "Transport", Color: "#3B82F6", Type: CategoryTypeExpense},
	{Name: "shopping", DisplayName: "Shopping", Color: "#EF4444", Type: CategoryTypeExpense},
	{Name: "entertainment", DisplayName: "Entertainment", Color: "#8B5CF6", Type: CategoryTypeExpense},
	{Name: "bills", DisplayName: "Bills & Utilities", Color: "#EC4899", Type: CategoryTypeExpense},
	{Name: "health", DisplayName: "Health", Color: "#EF4444", Type: CategoryTypeExpense},
	{Name: "education", DisplayName: "Education", Color: "#10B981", Type: CategoryTypeExpense},
	{Name: "salary", DisplayName: "Salary", Color: "#10B981", Type: CategoryTypeIncome},
	{Name: "freelance", DisplayName: "Freelance", Color: "#3B82F6", Type: CategoryTypeIncome},
	{Name: "investment", DisplayName: "Investments", Color: "#8B5CF6", Type: CategoryTypeIncome},
	{Name: "other", DisplayName: "Other", Color: FallbackColor, Type: CategoryTypeBoth},
}

// DefaultCategories returns a copy of the fixed default category set.
func DefaultCategories() []Category {
	categories := make([]Category, len(defaultCategories))
	copy(categories, defaultCategories)
	return categories
}

// AllCategories returns the default categories followed by the user's
// custom ones.
func AllCategories(db *gorm.DB, userID uuid.UUID) ([]Category, error) {
	var custom []Category
	err := db.Where(&Category{UserID: userID}).Order("name ASC").Find(&custom).Error
	if err != nil {
		return nil, err
	}

	return append(DefaultCategories(), custom...), nil
}

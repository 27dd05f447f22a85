// Package reports computes the period report that the app renders on the
// reports screen.
//
// All calculations are pure functions over an in-memory transaction
// snapshot. The caller decides where the snapshot comes from, which keeps
// the aggregation testable independent of the storage layer.
package reports

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/monet-app/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Period is the report time scope.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

var ErrInvalidPeriod = fmt.Errorf("the period must be one of %q, %q or %q", PeriodWeek, PeriodMonth, PeriodYear)

// ParsePeriod validates a period string.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s), nil
	}

	return "", ErrInvalidPeriod
}

// Summary is the scalar part of a report.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome" example:"1000"`  // Sum of all income in the period
	TotalExpense decimal.Decimal `json:"totalExpense" example:"400"`  // Sum of all expenses in the period
	NetCashFlow  decimal.Decimal `json:"netCashFlow" example:"600"`   // Income minus expenses
	SavingsRate  int64           `json:"savingsRate" example:"60"`    // Net cash flow as rounded percentage of income, 0 when there is no income
}

// CategoryExpense is one entry of the per-category expense breakdown.
type CategoryExpense struct {
	Category     string          `json:"category" example:"food"`            // Raw category name
	CategoryName string          `json:"categoryName" example:"Food"`        // Resolved display name, falls back to the raw name
	Amount       decimal.Decimal `json:"amount" example:"400"`               // Sum of expenses in this category
	Color        string          `json:"color" example:"#F59E0B"`            // Resolved category color, falls back to a neutral color
	Percentage   int64           `json:"percentage" example:"100"`           // Rounded share of the total expense
}

// ChartPoint is one bucket of the chart series.
type ChartPoint struct {
	Label   string          `json:"label" example:"Mon"` // Bucket label for the chart axis
	Income  decimal.Decimal `json:"income" example:"0"`  // Income in this bucket
	Expense decimal.Decimal `json:"expense" example:"0"` // Expense in this bucket
}

// Report is the full period report.
type Report struct {
	Summary          Summary           `json:"summary"`
	CategoryExpenses []CategoryExpense `json:"categoryExpenses"`
	ChartData        []ChartPoint      `json:"chartData"`
	AverageIncome    decimal.Decimal   `json:"averageIncome" example:"143"`  // Income per day/week/month depending on the period
	AverageExpense   decimal.Decimal   `json:"averageExpense" example:"57"`  // Expense per day/week/month depending on the period
}

// WindowStart returns the start of the reporting window for the period:
// seven days back for a week, the first of the current month for a month
// and January 1 for a year. The window always ends at now.
func WindowStart(period Period, now time.Time) time.Time {
	switch period {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	}
}

// Build computes the report for the period ending at now.
//
// Transactions outside the reporting window are ignored, using each
// transaction's own date, not its creation time. The result is
// deterministic for a fixed snapshot and now.
func Build(transactions []models.Transaction, categories []models.Category, period Period, now time.Time) Report {
	start := WindowStart(period, now)

	var inWindow []models.Transaction
	for _, t := range transactions {
		if t.Date.Before(start) || t.Date.After(now) {
			continue
		}
		inWindow = append(inWindow, t)
	}

	summary := summarize(inWindow)

	return Report{
		Summary:          summary,
		CategoryExpenses: categoryExpenses(inWindow, categories),
		ChartData:        chartData(inWindow, period, now),
		AverageIncome:    average(summary.TotalIncome, period),
		AverageExpense:   average(summary.TotalExpense, period),
	}
}

func summarize(transactions []models.Transaction) Summary {
	var income, expense decimal.Decimal
	for _, t := range transactions {
		switch t.Type {
		case models.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case models.TransactionTypeExpense:
			expense = expense.Add(t.Amount)
		}
	}

	net := income.Sub(expense)

	var savingsRate int64
	if income.IsPositive() {
		savingsRate = net.Div(income).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	}

	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		NetCashFlow:  net,
		SavingsRate:  savingsRate,
	}
}

func categoryExpenses(transactions []models.Transaction, categories []models.Category) []CategoryExpense {
	sums := make(map[string]decimal.Decimal)
	var total decimal.Decimal

	for _, t := range transactions {
		if t.Type != models.TransactionTypeExpense {
			continue
		}

		sums[t.Category] = sums[t.Category].Add(t.Amount)
		total = total.Add(t.Amount)
	}

	breakdown := make([]CategoryExpense, 0, len(sums))
	for name, amount := range sums {
		entry := CategoryExpense{
			Category:     name,
			CategoryName: name,
			Amount:       amount,
			Color:        models.FallbackColor,
		}

		// Resolve display name and color. Transactions referencing a
		// deleted custom category keep the raw name.
		idx := slices.IndexFunc(categories, func(c models.Category) bool { return c.Name == name })
		if idx >= 0 {
			entry.CategoryName = categories[idx].DisplayName
			entry.Color = categories[idx].Color
		}

		if total.IsPositive() {
			entry.Percentage = amount.Div(total).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
		}

		breakdown = append(breakdown, entry)
	}

	// Largest category first, name as tie breaker for a stable order
	slices.SortFunc(breakdown, func(a, b CategoryExpense) int {
		if cmp := b.Amount.Cmp(a.Amount); cmp != 0 {
			return cmp
		}
		return strings.Compare(a.Category, b.Category)
	})

	return breakdown
}

func chartData(transactions []models.Transaction, period Period, now time.Time) []ChartPoint {
	switch period {
	case PeriodWeek:
		// 7 daily buckets, oldest first
		points := make([]ChartPoint, 0, 7)
		for i := 6; i >= 0; i-- {
			day := now.AddDate(0, 0, -i)
			points = append(points, bucket(transactions, day.Format("Mon"), func(t time.Time) bool {
				return sameDay(t, day)
			}))
		}
		return points

	case PeriodMonth:
		// 4 trailing 7-day buckets
		points := make([]ChartPoint, 0, 4)
		for i := 3; i >= 0; i-- {
			bucketStart := now.AddDate(0, 0, -(i+1)*7)
			bucketEnd := now.AddDate(0, 0, -i*7)
			points = append(points, bucket(transactions, "S"+strconv.Itoa(4-i), func(t time.Time) bool {
				return !t.Before(bucketStart) && t.Before(bucketEnd)
			}))
		}
		return points

	default:
		// 12 trailing calendar months ending with the current one
		points := make([]ChartPoint, 0, 12)
		for i := 11; i >= 0; i-- {
			month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
			points = append(points, bucket(transactions, month.Format("Jan"), func(t time.Time) bool {
				return t.Year() == month.Year() && t.Month() == month.Month()
			}))
		}
		return points
	}
}

func bucket(transactions []models.Transaction, label string, match func(time.Time) bool) ChartPoint {
	point := ChartPoint{Label: label}

	for _, t := range transactions {
		if !match(t.Date) {
			continue
		}

		switch t.Type {
		case models.TransactionTypeIncome:
			point.Income = point.Income.Add(t.Amount)
		case models.TransactionTypeExpense:
			point.Expense = point.Expense.Add(t.Amount)
		}
	}

	return point
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// average divides a period total by the number of sub-periods: days for a
// week, weeks for a month, months for a year.
func average(total decimal.Decimal, period Period) decimal.Decimal {
	divisor := decimal.NewFromInt(12)
	switch period {
	case PeriodWeek:
		divisor = decimal.NewFromInt(7)
	case PeriodMonth:
		divisor = decimal.NewFromInt(4)
	}

	return total.Div(divisor).Round(0)
}

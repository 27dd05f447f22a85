package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/monet-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	Category  string              `json:"category" example:"food"`                                                                              // The category the limit applies to
	Amount    decimal.Decimal     `json:"amount" example:"500" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`    // The limit for the period
	Period    models.BudgetPeriod `json:"period" example:"monthly" default:"monthly"`                                                           // The cadence of the budget
	StartDate time.Time           `json:"startDate" example:"2024-01-01T00:00:00.000000Z"`                                                      // Start of the budget
	EndDate   time.Time           `json:"endDate" example:"2024-12-31T00:00:00.000000Z"`                                                       // End of the budget
}

// model returns the database resource for the API representation of the
// editable fields, scoped to the user.
func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:    userID,
		Category:  editable.Category,
		Amount:    editable.Amount,
		Period:    editable.Period,
		StartDate: editable.StartDate,
		EndDate:   editable.EndDate,
	}
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The budget itself
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Spent     decimal.Decimal `json:"spent" example:"133.70"`    // Sum of this month's expenses in the category, recomputed on every read
	Overspent decimal.Decimal `json:"overspent" example:"0"`     // How far the spending is above the limit, 0 while within the budget
	Links     BudgetLinks     `json:"links"`
}

// newBudget returns the API representation of the resource.
func newBudget(c *gin.Context, model models.Budget, spent decimal.Decimal) Budget {
	url := c.GetString(string(models.ContextURL))

	overspent := spent.Sub(model.Amount)
	if overspent.IsNegative() {
		overspent = decimal.Zero
	}

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Category:  model.Category,
			Amount:    model.Amount,
			Period:    model.Period,
			StartDate: model.StartDate,
			EndDate:   model.EndDate,
		},
		Spent:     spent,
		Overspent: overspent,
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created resources
}

func (t *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, BudgetResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                          // The resource
}

type BudgetQueryFilter struct {
	Category string `form:"category"`                   // Filter by category name
	Period   string `form:"period"`                     // Filter by period
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first budget returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Category: f.Category,
		Period:   models.BudgetPeriod(f.Period),
	}
}

package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/monet-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

// GoalEditable represents all values for a savings goal that can be
// set by the client.
type GoalEditable struct {
	Title        string          `json:"title" example:"Emergency fund"`
	Description  string          `json:"description" example:"Three months of expenses"`
	TargetAmount decimal.Decimal `json:"targetAmount" example:"5000" minimum:"0.00000001" maximum:"999999999999"`
	Deadline     *time.Time      `json:"deadline" example:"2027-06-30T00:00:00Z"`
}

func (editable GoalEditable) model(userID uuid.UUID) models.Goal {
	return models.Goal{
		UserID:       userID,
		Title:        editable.Title,
		Description:  editable.Description,
		TargetAmount: editable.TargetAmount,
		Deadline:     editable.Deadline,
	}
}

// GoalFundsEditable is the body for adding funds to a goal.
type GoalFundsEditable struct {
	Amount decimal.Decimal `json:"amount" example:"250.50" minimum:"0.00000001" maximum:"999999999999"`
}

type GoalLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/goals/8323820c-9588-4cbc-8a4a-72e4a1b73d84"`
	Funds string `json:"funds" example:"https://example.com/api/v1/goals/8323820c-9588-4cbc-8a4a-72e4a1b73d84/funds"`
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"1230.50"`
	CompletedAt   *time.Time      `json:"completedAt" example:"2026-05-01T14:43:27.1Z"`
	Links         GoalLinks       `json:"links"`
}

func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.ContextURL))

	self := fmt.Sprintf("%s/v1/goals/%s", url, model.ID)

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Title:        model.Title,
			Description:  model.Description,
			TargetAmount: model.TargetAmount,
			Deadline:     model.Deadline,
		},
		CurrentAmount: model.CurrentAmount,
		CompletedAt:   model.CompletedAt,
		Links: GoalLinks{
			Self:  self,
			Funds: self + "/funds",
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"`
	Pagination *Pagination `json:"pagination"`
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"`
	Data  []GoalResponse `json:"data"`
}

func (t *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, GoalResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"`
	Data  *Goal   `json:"data"`
}

type GoalQueryFilter struct {
	Completed bool `form:"completed" filterField:"false"` // Is the goal completed?
	Offset    uint `form:"offset" filterField:"false"`    // The offset of the first goal returned. Defaults to 0.
	Limit     int  `form:"limit" filterField:"false"`     // Maximum number of goals to return. Defaults to 50.
}

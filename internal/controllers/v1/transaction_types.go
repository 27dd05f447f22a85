package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/monet-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Type        models.TransactionType `json:"type" example:"expense"`                                                                                // Whether the transaction is income or an expense
	Amount      decimal.Decimal        `json:"amount" example:"14.50" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`   // The amount as positive magnitude
	Category    string                 `json:"category" example:"food" default:""`                                                                    // Name of the category
	Description string                 `json:"description" example:"Groceries for the week" default:""`                                               // Description of the transaction
	Date        time.Time              `json:"date" example:"2024-01-06T18:43:00.271152Z"`                                                            // Date of the transaction, defaults to the current time
}

// model returns the database resource for the API representation of the
// editable fields, scoped to the user.
func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:      userID,
		Type:        editable.Type,
		Amount:      editable.Amount,
		Category:    editable.Category,
		Description: editable.Description,
		Date:        editable.Date,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API representation of the resource.
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.ContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Type:        model.Type,
			Amount:      model.Amount,
			Category:    model.Category,
			Description: model.Description,
			Date:        model.Date,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of resources
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created resources
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                          // The resource
}

type TransactionQueryFilter struct {
	Type              string          `form:"type"`                                  // Filter by type
	Category          string          `form:"category"`                              // Filter by category name
	Search            string          `form:"search" filterField:"false"`            // Search in the description
	FromDate          string          `form:"fromDate" filterField:"false"`          // Transactions at or after this RFC3339 date
	UntilDate         string          `form:"untilDate" filterField:"false"`         // Transactions at or before this RFC3339 date
	Amount            decimal.Decimal `form:"amount"`                                // Exact amount
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Offset            uint            `form:"offset" filterField:"false"`            // The offset of the first transaction returned. Defaults to 0.
	Limit             int             `form:"limit" filterField:"false"`             // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	// The string and meta fields are handled in the controller function
	return models.Transaction{
		Type:     models.TransactionType(f.Type),
		Category: f.Category,
		Amount:   f.Amount,
	}
}

package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/monet-app/backend/internal/models"
)

// CategoryEditable represents all values for a custom category that
// can be set by the client.
type CategoryEditable struct {
	Name        string              `json:"name" example:"pets"`
	DisplayName string              `json:"displayName" example:"Pets"`
	Color       string              `json:"color" example:"#14B8A6"`
	Type        models.CategoryType `json:"type" example:"expense"`
}

func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	return models.Category{
		UserID:      userID,
		Name:        editable.Name,
		DisplayName: editable.DisplayName,
		Color:       editable.Color,
		Type:        editable.Type,
		IsCustom:    true,
	}
}

type CategoryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/categories/d1b4e05a-9f51-44ba-b209-60d33a06cfa6"`
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	IsCustom bool          `json:"isCustom" example:"true"`
	Links    CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.ContextURL))

	links := CategoryLinks{}
	if model.IsCustom {
		links.Self = fmt.Sprintf("%s/v1/categories/%s", url, model.ID)
	}

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:        model.Name,
			DisplayName: model.DisplayName,
			Color:       model.Color,
			Type:        model.Type,
		},
		IsCustom: model.IsCustom,
		Links:    links,
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type CategoryCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"`
	Data  []CategoryResponse `json:"data"`
}

func (t *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, CategoryResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"`
	Data  *Category `json:"data"`
}

type CategoryQueryFilter struct {
	Type string `form:"type" filterField:"false"` // Filter by category type
}

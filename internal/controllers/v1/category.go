package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monet-app/backend/internal/httputil"
	"github.com/monet-app/backend/internal/models"
)

func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsCategories)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategories)
	}
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func (co Controller) OptionsCategories(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.getCategory(c, uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("allow", "DELETE")
}

// @Summary		Create categories
// @Description	Creates new custom categories
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryCreateResponse
// @Failure		400			{object}	CategoryCreateResponse
// @Failure		500			{object}	CategoryCreateResponse
// @Param			categories	body		[]CategoryEditable	true	"Categories"
// @Router			/v1/categories [post]
func (co Controller) CreateCategories(c *gin.Context) {
	var editables []CategoryEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryCreateResponse{
			Error: &e,
		})
		return
	}

	user := currentUser(c)

	finalStatus := http.StatusCreated
	r := CategoryCreateResponse{}

	for _, editable := range editables {
		category := editable.model(user.ID)
		err = co.db.Create(&category).Error
		if err != nil {
			finalStatus = r.appendError(err, finalStatus)
			continue
		}

		apiResource := newCategory(c, category)
		r.Data = append(r.Data, CategoryResponse{Data: &apiResource})
	}

	c.JSON(finalStatus, r)
}

// @Summary		Get categories
// @Description	Returns the default categories followed by the user's custom ones
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		400	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
// @Param			type	query	string	false	"Filter by category type"
func (co Controller) GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryListResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)

	categories, err := models.AllCategories(co.db, user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		// "both" categories apply to every transaction type
		if filter.Type != "" && string(category.Type) != filter.Type && category.Type != models.CategoryTypeBoth {
			continue
		}

		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data: data,
	})
}

// @Summary		Delete category
// @Description	Deletes a custom category. Default categories cannot be deleted.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	category, err := co.getCategory(c, uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if !category.IsCustom {
		c.JSON(http.StatusBadRequest, httpError{
			Error: models.ErrCategoryNotCustom.Error(),
		})
		return
	}

	err = co.db.Delete(&category).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// getCategory loads a custom category, scoped to the authenticated
// user. Default categories are not stored, so they can never match.
func (co Controller) getCategory(c *gin.Context, uri URIID) (models.Category, error) {
	var category models.Category
	err := co.db.First(&category, "id = ? AND user_id = ?", uri.ID.UUID, currentUser(c).ID).Error
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}

package v1_test

import (
	"net/http"

	v1 "github.com/monet-app/backend/internal/controllers/v1"
	"github.com/monet-app/backend/internal/models"
	"github.com/monet-app/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestCategories(headers map[string]string, editables []v1.CategoryEditable) v1.CategoryCreateResponse {
	recorder := suite.request(http.MethodPost, "/v1/categories", editables, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return response
}

func (suite *TestSuiteStandard) TestCategoriesDefaults() {
	_, headers := suite.signIn()

	recorder := suite.request(http.MethodGet, "/v1/categories", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, len(models.DefaultCategories()))

	assert.Equal(suite.T(), "food", response.Data[0].Name)
	assert.Equal(suite.T(), "Food & Groceries", response.Data[0].DisplayName)
	assert.False(suite.T(), response.Data[0].IsCustom)

	// Defaults are not stored, so they have no addressable resource
	assert.Empty(suite.T(), response.Data[0].Links.Self)
}

func (suite *TestSuiteStandard) TestCategoriesCreateCustom() {
	_, headers := suite.signIn()

	response := suite.createTestCategories(headers, []v1.CategoryEditable{
		{Name: "pets", DisplayName: "Pets", Color: "#22C55E", Type: models.CategoryTypeExpense},
	})

	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Data)
	assert.True(suite.T(), response.Data[0].Data.IsCustom)
	assert.Contains(suite.T(), response.Data[0].Data.Links.Self, "/v1/categories/")

	// The custom category is appended after the defaults
	recorder := suite.request(http.MethodGet, "/v1/categories", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var list v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	require.Len(suite.T(), list.Data, len(models.DefaultCategories())+1)
	assert.Equal(suite.T(), "pets", list.Data[len(list.Data)-1].Name)
}

func (suite *TestSuiteStandard) TestCategoriesCreateDuplicateName() {
	_, headers := suite.signIn()

	suite.createTestCategories(headers, []v1.CategoryEditable{
		{Name: "pets", DisplayName: "Pets", Color: "#22C55E", Type: models.CategoryTypeExpense},
	})

	recorder := suite.request(http.MethodPost, "/v1/categories", []v1.CategoryEditable{
		{Name: "pets", DisplayName: "Also pets", Color: "#22C55E", Type: models.CategoryTypeExpense},
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesTypeFilter() {
	_, headers := suite.signIn()

	recorder := suite.request(http.MethodGet, "/v1/categories?type=income", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// "both" categories match every type filter
	names := make([]string, 0, len(response.Data))
	for _, category := range response.Data {
		names = append(names, category.Name)
	}
	assert.Equal(suite.T(), []string{"salary", "freelance", "investment", "other"}, names)
}

func (suite *TestSuiteStandard) TestCategoryDelete() {
	_, headers := suite.signIn()

	response := suite.createTestCategories(headers, []v1.CategoryEditable{
		{Name: "pets", DisplayName: "Pets", Color: "#22C55E", Type: models.CategoryTypeExpense},
	})

	recorder := suite.request(http.MethodDelete, response.Data[0].Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.request(http.MethodDelete, response.Data[0].Data.Links.Self, "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryDeleteNotCustom() {
	user, headers := suite.signIn()

	category := models.Category{
		UserID:      user.ID,
		Name:        "imported",
		DisplayName: "Imported",
		Color:       "#22C55E",
		Type:        models.CategoryTypeExpense,
	}
	require.Nil(suite.T(), models.DB.Create(&category).Error)

	recorder := suite.request(http.MethodDelete, "/v1/categories/"+category.ID.String(), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryDeleteUnknown() {
	_, headers := suite.signIn()

	// Default categories are not stored, so any unknown ID is a 404
	recorder := suite.request(http.MethodDelete, "/v1/categories/d4b09e7e-5c66-41bd-a9f4-10a8558cdca0", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesScopedToUser() {
	_, headers := suite.signIn()
	_, otherHeaders := suite.signInAs("other@example.com")

	response := suite.createTestCategories(headers, []v1.CategoryEditable{
		{Name: "pets", DisplayName: "Pets", Color: "#22C55E", Type: models.CategoryTypeExpense},
	})

	recorder := suite.request(http.MethodGet, "/v1/categories", "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var list v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	assert.Len(suite.T(), list.Data, len(models.DefaultCategories()))

	recorder = suite.request(http.MethodDelete, response.Data[0].Data.Links.Self, "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

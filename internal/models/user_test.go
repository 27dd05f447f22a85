package models_test

import (
	"github.com/monet-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUserEmailNormalized() {
	user := suite.createTestUser(models.User{
		Name:  "  Jane Doe ",
		Email: "  Jane@Example.COM ",
	})

	assert.Equal(suite.T(), "Jane Doe", user.Name)
	assert.Equal(suite.T(), "jane@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserPassword() {
	var user models.User
	err := user.SetPassword("correct horse battery staple")
	assert.Nil(suite.T(), err)

	assert.NotContains(suite.T(), user.PasswordHash, "correct horse")
	assert.True(suite.T(), user.CheckPassword("correct horse battery staple"))
	assert.False(suite.T(), user.CheckPassword("incorrect horse"))
}

func (suite *TestSuiteStandard) TestUserEmailNotUnique() {
	_ = suite.createTestUser(models.User{Email: "jane@example.com"})

	user := models.User{Name: "Other", Email: "jane@example.com"}
	err := user.SetPassword("averysecurepassword")
	assert.Nil(suite.T(), err)

	err = models.DB.Create(&user).Error
	assert.ErrorIs(suite.T(), err, models.ErrEmailNotUnique)
}

func (suite *TestSuiteStandard) TestUserByEmail() {
	user := suite.createTestUser(models.User{Email: "jane@example.com"})

	found, err := models.UserByEmail(models.DB, " Jane@example.com ")
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), user.ID, found.ID)

	_, err = models.UserByEmail(models.DB, "nobody@example.com")
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

package httputil

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON request body to the struct passed in.
//
// It only returns the error, writing the response is up to the caller
// since the response envelope differs per resource.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(&data)
	if err == nil {
		return nil
	}

	if errors.Is(io.EOF, err) {
		return ErrRequestBodyEmpty
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		texts := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			texts = append(texts, validationErrorText(fieldError))
		}
		return errors.New(strings.Join(texts, ", "))
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}

// validationErrorText turns a validator error into a readable message.
func validationErrorText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "email":
		return "invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s characters", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}

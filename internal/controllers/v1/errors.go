package v1

import (
	"errors"
	"net/http"

	"github.com/monet-app/backend/internal/models"
	"github.com/monet-app/backend/internal/reports"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Auth errors
var (
	errInvalidCredentials = errors.New("the email or password is incorrect")
)

// Report errors
var errPeriodNotSet = errors.New("the period query parameter must be set to " + string(reports.PeriodWeek) + ", " + string(reports.PeriodMonth) + " or " + string(reports.PeriodYear))

package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/monet-app/backend/internal/httputil"
	"github.com/monet-app/backend/internal/models"
	"github.com/monet-app/backend/internal/reports"
)

// reportTransactionLimit caps how many transactions a single report
// aggregates, newest first.
const reportTransactionLimit = 1000

type ReportResponse struct {
	Data  *reports.Report `json:"data"`
	Error *string         `json:"error" example:"the period query parameter must be set to week, month or year"`
}

type ReportQueryFilter struct {
	Period string `form:"period"` // The reporting period
}

func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsReports)
	r.GET("", co.GetReport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports [options]
func (co Controller) OptionsReports(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get report
// @Description	Returns an aggregated spending report for the requested period
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ReportResponse
// @Failure		400	{object}	ReportResponse
// @Failure		500	{object}	ReportResponse
// @Router			/v1/reports [get]
// @Param			period	query	string	true	"The reporting period. One of week, month, year."
func (co Controller) GetReport(c *gin.Context) {
	var filter ReportQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{
			Error: &s,
		})
		return
	}

	if filter.Period == "" {
		s := errPeriodNotSet.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{
			Error: &s,
		})
		return
	}

	period, err := reports.ParsePeriod(filter.Period)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)

	var transactions []models.Transaction
	err = co.db.
		Where("transactions.user_id = ?", user.ID).
		Order("date(transactions.date) DESC, transactions.created_at DESC").
		Limit(reportTransactionLimit).
		Find(&transactions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	categories, err := models.AllCategories(co.db, user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	report := reports.Build(transactions, categories, period, time.Now().In(time.UTC))
	c.JSON(http.StatusOK, ReportResponse{Data: &report})
}

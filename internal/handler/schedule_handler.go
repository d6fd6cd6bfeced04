package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-jobs-api/internal/analysis"
	appErrors "github.com/noah-isme/student-jobs-api/pkg/errors"
	"github.com/noah-isme/student-jobs-api/pkg/response"
)

type scheduleService interface {
	Analyze(ctx context.Context, userID string, from, to time.Time) (*analysis.Report, error)
	Export(ctx context.Context, userID string, from, to time.Time, format string) ([]byte, string, error)
}

// ScheduleHandler exposes the schedule analysis engine over HTTP.
type ScheduleHandler struct {
	service scheduleService
}

// NewScheduleHandler constructs the handler.
func NewScheduleHandler(service scheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// analysisRange reads the mandatory from/to query parameters.
func analysisRange(c *gin.Context) (time.Time, time.Time, error) {
	from, err := parseDateQuery(c, "from")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if from == nil || to == nil {
		return time.Time{}, time.Time{}, appErrors.Clone(appErrors.ErrValidation, "from and to query parameters are required")
	}
	return *from, *to, nil
}

// Analyze godoc
// @Summary Run the schedule analysis over a date range
// @Description Returns conflicts, overloaded days, free slots, time stats and the balance score.
// @Tags Analysis
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /schedule/analysis [get]
func (h *ScheduleHandler) Analyze(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	from, to, err := analysisRange(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.service.Analyze(c.Request.Context(), claims.UserID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report, nil)
}

// Export godoc
// @Summary Export the schedule analysis as CSV or PDF
// @Tags Analysis
// @Produce text/csv
// @Produce application/pdf
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param format query string true "Export format (csv or pdf)"
// @Success 200 {file} binary
// @Router /schedule/analysis/export [get]
func (h *ScheduleHandler) Export(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	from, to, err := analysisRange(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	payload, contentType, err := h.service.Export(c.Request.Context(), claims.UserID, from, to, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := "schedule-analysis-" + from.Format("2006-01-02") + "-" + to.Format("2006-01-02")
	switch contentType {
	case "text/csv":
		filename += ".csv"
	case "application/pdf":
		filename += ".pdf"
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, payload)
}

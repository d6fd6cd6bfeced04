package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-jobs-api/internal/dto"
	"github.com/noah-isme/student-jobs-api/internal/models"
	appErrors "github.com/noah-isme/student-jobs-api/pkg/errors"
	"github.com/noah-isme/student-jobs-api/pkg/response"
)

type jobService interface {
	List(ctx context.Context, filter models.JobFilter) ([]models.JobPosting, *models.Pagination, error)
	Create(ctx context.Context, req dto.CreateJobRequest) (*models.JobPosting, error)
	Deactivate(ctx context.Context, jobID string) error
	Match(ctx context.Context, userID string, from, to time.Time) ([]models.JobMatch, error)
}

// JobHandler wires job-posting endpoints.
type JobHandler struct {
	service jobService
}

// NewJobHandler constructs the handler.
func NewJobHandler(service jobService) *JobHandler {
	return &JobHandler{service: service}
}

// List godoc
// @Summary List active job postings
// @Tags Jobs
// @Produce json
// @Param weekday query string false "Filter by shift weekday"
// @Param min_rate query number false "Minimum hourly rate"
// @Success 200 {object} response.Envelope
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := models.JobFilter{Weekday: c.Query("weekday")}
	if raw := c.Query("min_rate"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid min_rate"))
			return
		}
		filter.MinRate = &rate
	}
	active := true
	filter.Active = &active
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "50"))

	jobs, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, jobs, pagination)
}

// Create godoc
// @Summary Publish a job posting
// @Tags Jobs
// @Accept json
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if claims.Role != models.RoleCompany && claims.Role != models.RoleAdmin {
		response.Error(c, appErrors.ErrForbidden)
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}

	job, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, job)
}

// Delete godoc
// @Summary Withdraw a job posting
// @Tags Jobs
// @Param id path string true "Job ID"
// @Success 204
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if claims.Role != models.RoleCompany && claims.Role != models.RoleAdmin {
		response.Error(c, appErrors.ErrForbidden)
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Match godoc
// @Summary Match job postings against the student's free slots
// @Description Lists active jobs whose weekly shift fits entirely inside one of the student's free slots.
// @Tags Jobs
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /jobs/match [get]
func (h *JobHandler) Match(c *gin.Context) {
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

	matches, err := h.service.Match(c.Request.Context(), claims.UserID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, matches, nil)
}

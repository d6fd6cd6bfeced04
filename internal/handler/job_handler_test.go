package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/student-jobs-api/internal/dto"
	"github.com/noah-isme/student-jobs-api/internal/middleware"
	"github.com/noah-isme/student-jobs-api/internal/models"
)

type fakeJobSrv struct {
	deactivated []string
}

func (f *fakeJobSrv) List(context.Context, models.JobFilter) ([]models.JobPosting, *models.Pagination, error) {
	return nil, &models.Pagination{}, nil
}

func (f *fakeJobSrv) Create(context.Context, dto.CreateJobRequest) (*models.JobPosting, error) {
	return &models.JobPosting{}, nil
}

func (f *fakeJobSrv) Deactivate(_ context.Context, jobID string) error {
	f.deactivated = append(f.deactivated, jobID)
	return nil
}

func (f *fakeJobSrv) Match(context.Context, string, time.Time, time.Time) ([]models.JobMatch, error) {
	return nil, nil
}

func jobContext(t *testing.T, role models.UserRole) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodDelete, "/jobs/job-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "job-1"}}
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "u-1", Role: role})
	return c, rec
}

func TestJobHandlerDeleteRequiresCompanyRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeJobSrv{}
	handler := NewJobHandler(srv)

	c, rec := jobContext(t, models.RoleStudent)
	handler.Delete(c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, srv.deactivated)
}

func TestJobHandlerDeleteWithdrawsPosting(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeJobSrv{}
	handler := NewJobHandler(srv)

	c, rec := jobContext(t, models.RoleCompany)
	handler.Delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"job-1"}, srv.deactivated)
}

package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskman/internal/apperror"
	"taskman/internal/handler"
	"taskman/internal/middleware"
	"taskman/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupReportRouter() (*gin.Engine, *MockReportService) {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	mockService := new(MockReportService)
	reportHandler := handler.NewReportHandler(mockService)

	identified := r.Group("/", middleware.RequireIdentity())
	identified.GET("/api/reports/performance", reportHandler.GetPerformance)

	return r, mockService
}

func TestReportHandler_GetPerformance_Success(t *testing.T) {
	// Arrange
	router, mockService := setupReportRouter()

	managerID := uuid.New()
	userID := uuid.New()
	report := &service.PerformanceReport{
		GeneratedAt:  time.Now().UTC(),
		PeriodInDays: service.ReportPeriodInDays,
		Summaries: []service.UserPerformanceSummary{
			{UserID: userID, UserName: "Alice", CompletedTasksCount: 3, AverageTasksPerDay: 0.1},
		},
		OverallAverageTasksPerDay: 0.1,
	}
	mockService.On("GetPerformanceReport", mock.Anything, managerID).Return(report, nil)

	req, _ := http.NewRequest("GET", "/api/reports/performance", nil)
	req.Header.Set(middleware.UserIDHeader, managerID.String())

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	var response handler.PerformanceReportResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, service.ReportPeriodInDays, response.PeriodInDays)
	assert.Len(t, response.Summaries, 1)
	assert.Equal(t, "Alice", response.Summaries[0].UserName)
	assert.Equal(t, 3, response.Summaries[0].CompletedTasksCount)
	assert.Equal(t, 0.1, response.OverallAverageTasksPerDay)
}

func TestReportHandler_GetPerformance_Forbidden(t *testing.T) {
	// Arrange
	router, mockService := setupReportRouter()

	basicUserID := uuid.New()
	mockService.On("GetPerformanceReport", mock.Anything, basicUserID).
		Return(nil, apperror.PermissionDenied("only users with the Manager role may access the performance report"))

	req, _ := http.NewRequest("GET", "/api/reports/performance", nil)
	req.Header.Set(middleware.UserIDHeader, basicUserID.String())

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Contains(t, resp.Body.String(), "Manager")
}

func TestReportHandler_GetPerformance_MissingIdentity(t *testing.T) {
	// Arrange
	router, mockService := setupReportRouter()

	req, _ := http.NewRequest("GET", "/api/reports/performance", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockService.AssertNotCalled(t, "GetPerformanceReport", mock.Anything, mock.Anything)
}

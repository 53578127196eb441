package handler

import (
	"net/http"
	"time"

	"taskman/internal/middleware"
	"taskman/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReportHandler struct {
	reportService service.ReportServiceInterface
}

func NewReportHandler(reportService service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

type UserPerformanceSummaryResponse struct {
	UserID              string  `json:"user_id"`
	UserName            string  `json:"user_name"`
	CompletedTasksCount int     `json:"completed_tasks_count"`
	AverageTasksPerDay  float64 `json:"average_tasks_per_day"`
}

type PerformanceReportResponse struct {
	GeneratedAt               string                           `json:"generated_at"`
	PeriodInDays              int                              `json:"period_in_days"`
	Summaries                 []UserPerformanceSummaryResponse `json:"summaries"`
	OverallAverageTasksPerDay float64                          `json:"overall_average_tasks_per_day"`
}

// GetPerformance generates the 30-day completed-task report. Manager only.
func (h *ReportHandler) GetPerformance(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user identity"})
		return
	}
	requesterID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	report, err := h.reportService.GetPerformanceReport(c.Request.Context(), requesterID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	summaries := make([]UserPerformanceSummaryResponse, len(report.Summaries))
	for i, s := range report.Summaries {
		summaries[i] = UserPerformanceSummaryResponse{
			UserID:              s.UserID.String(),
			UserName:            s.UserName,
			CompletedTasksCount: s.CompletedTasksCount,
			AverageTasksPerDay:  s.AverageTasksPerDay,
		}
	}

	c.JSON(http.StatusOK, PerformanceReportResponse{
		GeneratedAt:               report.GeneratedAt.Format(time.RFC3339),
		PeriodInDays:              report.PeriodInDays,
		Summaries:                 summaries,
		OverallAverageTasksPerDay: report.OverallAverageTasksPerDay,
	})
}

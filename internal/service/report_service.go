package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"taskman/internal/apperror"
	"taskman/internal/model"
	"taskman/internal/repository"
)

// ReportPeriodInDays is the fixed trailing window of the performance report.
const ReportPeriodInDays = 30

type UserPerformanceSummary struct {
	UserID              uuid.UUID
	UserName            string
	CompletedTasksCount int
	AverageTasksPerDay  float64
}

type PerformanceReport struct {
	GeneratedAt               time.Time
	PeriodInDays              int
	Summaries                 []UserPerformanceSummary
	OverallAverageTasksPerDay float64
}

type ReportService struct {
	logger   zerolog.Logger
	taskRepo repository.TaskRepositoryInterface
	userRepo repository.UserRepositoryInterface
}

var _ ReportServiceInterface = (*ReportService)(nil)

func NewReportService(
	logger zerolog.Logger,
	taskRepo repository.TaskRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
) *ReportService {
	return &ReportService{
		logger:   logger,
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// GetPerformanceReport aggregates tasks completed in the trailing 30-day
// window per assignee. Only managers may request it. The overall average is
// the arithmetic mean of the per-user daily averages, not a pooled figure.
func (s *ReportService) GetPerformanceReport(ctx context.Context, requestingUserExternalID uuid.UUID) (*PerformanceReport, error) {
	requester, err := s.userRepo.GetByExternalID(ctx, requestingUserExternalID)
	if err != nil {
		return nil, err
	}
	if requester == nil {
		s.logger.Warn().
			Str("user_id", requestingUserExternalID.String()).
			Msg("report requested by unknown user")
		return nil, apperror.Validation("requesting user not found")
	}
	if requester.Role != model.RoleManager {
		s.logger.Warn().
			Str("user_id", requestingUserExternalID.String()).
			Str("role", string(requester.Role)).
			Msg("report access denied")
		return nil, apperror.PermissionDenied("only users with the Manager role may access the performance report")
	}

	endDate := utcDate(time.Now())
	startDate := endDate.AddDate(0, 0, -ReportPeriodInDays)

	tasks, err := s.taskRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	completedByAssignee := make(map[uint]int)
	for _, task := range tasks {
		if task.Status != model.StatusCompleted {
			continue
		}
		updated := utcDate(task.UpdatedAt)
		if updated.Before(startDate) || updated.After(endDate) {
			continue
		}
		completedByAssignee[task.AssignedToID]++
	}

	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	usersByID := make(map[uint]model.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	summaries := make([]UserPerformanceSummary, 0, len(completedByAssignee))
	for assigneeID, count := range completedByAssignee {
		user, ok := usersByID[assigneeID]
		if !ok {
			// Stale assignee: keep the report, drop the row.
			s.logger.Warn().
				Uint("assignee_id", assigneeID).
				Msg("assignee missing from user table, skipping summary")
			continue
		}
		summaries = append(summaries, UserPerformanceSummary{
			UserID:              user.ExternalID,
			UserName:            user.Name,
			CompletedTasksCount: count,
			AverageTasksPerDay:  float64(count) / ReportPeriodInDays,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].AverageTasksPerDay > summaries[j].AverageTasksPerDay
	})

	var overall float64
	if len(summaries) > 0 {
		for _, summary := range summaries {
			overall += summary.AverageTasksPerDay
		}
		overall /= float64(len(summaries))
	}

	s.logger.Info().
		Int("users", len(summaries)).
		Float64("overall_average", overall).
		Msg("generated performance report")

	return &PerformanceReport{
		GeneratedAt:               time.Now().UTC(),
		PeriodInDays:              ReportPeriodInDays,
		Summaries:                 summaries,
		OverallAverageTasksPerDay: overall,
	}, nil
}

func utcDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"taskman/internal/apperror"
	"taskman/internal/model"
	"taskman/internal/repository"
)

type TaskService struct {
	logger      zerolog.Logger
	projectRepo repository.ProjectRepositoryInterface
	taskRepo    repository.TaskRepositoryInterface
	historyRepo repository.HistoryRepositoryInterface
	userRepo    repository.UserRepositoryInterface
}

var _ TaskServiceInterface = (*TaskService)(nil)

func NewTaskService(
	logger zerolog.Logger,
	projectRepo repository.ProjectRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	historyRepo repository.HistoryRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
) *TaskService {
	return &TaskService{
		logger:      logger,
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
	}
}

func (s *TaskService) Create(ctx context.Context, projectExternalID uuid.UUID, title, description string, deadline time.Time, priority model.TaskPriority, assigneeExternalID uuid.UUID) (*model.ProjectTask, error) {
	project, err := s.projectRepo.GetByExternalID(ctx, projectExternalID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		s.logger.Warn().
			Str("project_id", projectExternalID.String()).
			Msg("project not found for task creation")
		return nil, apperror.Validation("project with id %s not found", projectExternalID)
	}

	assignee, err := s.userRepo.GetByExternalID(ctx, assigneeExternalID)
	if err != nil {
		return nil, err
	}
	if assignee == nil {
		s.logger.Warn().
			Str("assignee_id", assigneeExternalID.String()).
			Msg("assignee not found for task creation")
		return nil, apperror.Validation("user with id %s not found", assigneeExternalID)
	}

	task, err := model.NewProjectTask(title, description, deadline, priority, project.ID, assignee.ID)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.CreateInProject(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskLimitReached) {
			s.logger.Warn().
				Str("project_id", projectExternalID.String()).
				Str("name", project.Name).
				Msg("task limit reached")
			return nil, apperror.BusinessRule("project '%s' has reached the maximum of %d tasks", project.Name, model.MaxTasksPerProject)
		}
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, apperror.Validation("project with id %s not found", projectExternalID)
		}
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ExternalID.String()).
		Str("project_id", projectExternalID.String()).
		Str("title", task.Title).
		Msg("created task")

	return task, nil
}

func (s *TaskService) GetByExternalID(ctx context.Context, externalID uuid.UUID) (*model.ProjectTask, error) {
	return s.taskRepo.GetByExternalID(ctx, externalID)
}

func (s *TaskService) GetByProjectExternalID(ctx context.Context, projectExternalID uuid.UUID) ([]model.ProjectTask, error) {
	return s.taskRepo.GetByProjectExternalID(ctx, projectExternalID)
}

func (s *TaskService) GetAll(ctx context.Context) ([]model.ProjectTask, error) {
	return s.taskRepo.GetAll(ctx)
}

// UpdateDetails applies a validated title/description/deadline change and
// appends one history row per field that actually changed. Deadlines are
// recorded as calendar dates.
func (s *TaskService) UpdateDetails(ctx context.Context, externalID uuid.UUID, newTitle, newDescription string, newDeadline time.Time, modifiedBy uuid.UUID) (bool, error) {
	task, err := s.taskRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		return false, err
	}
	if task == nil {
		s.logger.Warn().
			Str("task_id", externalID.String()).
			Msg("task not found for details update")
		return false, nil
	}

	oldTitle := task.Title
	oldDescription := task.Description
	oldDeadline := task.Deadline

	if err := task.UpdateDetails(newTitle, newDescription, newDeadline); err != nil {
		s.logger.Warn().
			Err(err).
			Str("task_id", externalID.String()).
			Msg("task details rejected")
		return false, err
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return false, err
	}

	var entries []*model.ProjectTaskHistory
	if oldTitle != newTitle {
		entry, err := model.NewProjectTaskHistory(task.ID, model.HistoryPropertyTitle, oldTitle, newTitle, modifiedBy, "")
		if err != nil {
			return false, err
		}
		entries = append(entries, entry)
	}
	if oldDescription != newDescription {
		entry, err := model.NewProjectTaskHistory(task.ID, model.HistoryPropertyDescription, oldDescription, newDescription, modifiedBy, "")
		if err != nil {
			return false, err
		}
		entries = append(entries, entry)
	}
	if !sameCalendarDate(oldDeadline, newDeadline) {
		entry, err := model.NewProjectTaskHistory(
			task.ID,
			model.HistoryPropertyDeadline,
			oldDeadline.Format(model.DeadlineFormat),
			newDeadline.Format(model.DeadlineFormat),
			modifiedBy,
			"",
		)
		if err != nil {
			return false, err
		}
		entries = append(entries, entry)
	}

	if err := s.historyRepo.CreateBatch(ctx, entries); err != nil {
		return false, err
	}

	s.logger.Info().
		Str("task_id", externalID.String()).
		Int("changed_fields", len(entries)).
		Msg("updated task details")

	return true, nil
}

// UpdateStatus records a history row only when the status actually changes;
// re-applying the same status is a no-op in history.
func (s *TaskService) UpdateStatus(ctx context.Context, externalID uuid.UUID, newStatus model.TaskStatus, modifiedBy uuid.UUID) (bool, error) {
	task, err := s.taskRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		return false, err
	}
	if task == nil {
		s.logger.Warn().
			Str("task_id", externalID.String()).
			Msg("task not found for status update")
		return false, nil
	}

	oldStatus := task.Status

	if err := task.UpdateStatus(newStatus); err != nil {
		return false, err
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return false, err
	}

	if oldStatus != newStatus {
		entry, err := model.NewProjectTaskHistory(task.ID, model.HistoryPropertyStatus, string(oldStatus), string(newStatus), modifiedBy, "")
		if err != nil {
			return false, err
		}
		if err := s.historyRepo.Create(ctx, entry); err != nil {
			return false, err
		}
	}

	s.logger.Info().
		Str("task_id", externalID.String()).
		Str("status", string(newStatus)).
		Msg("updated task status")

	return true, nil
}

func (s *TaskService) Delete(ctx context.Context, externalID uuid.UUID) (bool, error) {
	task, err := s.taskRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		return false, err
	}
	if task == nil {
		s.logger.Warn().
			Str("task_id", externalID.String()).
			Msg("task not found for deletion")
		return false, nil
	}

	if err := s.taskRepo.Delete(ctx, task); err != nil {
		return false, err
	}

	s.logger.Info().
		Str("task_id", externalID.String()).
		Msg("deleted task")

	return true, nil
}

// AddComment appends a CommentAdded history row. Unlike field updates,
// every call appends a row; comments are not deduplicated.
func (s *TaskService) AddComment(ctx context.Context, externalID uuid.UUID, content string, commentedBy uuid.UUID) (bool, error) {
	task, err := s.taskRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		return false, err
	}
	if task == nil {
		s.logger.Warn().
			Str("task_id", externalID.String()).
			Msg("task not found for comment")
		return false, nil
	}

	if commentedBy == uuid.Nil {
		return false, apperror.Validation("commenter id is required")
	}

	commenter, err := s.userRepo.GetByExternalID(ctx, commentedBy)
	if err != nil {
		return false, err
	}
	if commenter == nil {
		s.logger.Warn().
			Str("commenter_id", commentedBy.String()).
			Msg("commenter not found")
		return false, apperror.Validation("user with id %s not found", commentedBy)
	}

	entry, err := model.NewProjectTaskHistory(task.ID, model.HistoryPropertyComment, "", content, commentedBy, model.ChangeTypeCommentAdded)
	if err != nil {
		return false, err
	}
	if err := s.historyRepo.Create(ctx, entry); err != nil {
		return false, err
	}

	s.logger.Info().
		Str("task_id", externalID.String()).
		Str("commenter_id", commentedBy.String()).
		Msg("added comment")

	return true, nil
}

// GetHistory returns the audit trail of a task. The second return value is
// false when the task does not exist.
func (s *TaskService) GetHistory(ctx context.Context, externalID uuid.UUID) ([]model.ProjectTaskHistory, bool, error) {
	task, err := s.taskRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, false, err
	}
	if task == nil {
		return nil, false, nil
	}

	entries, err := s.historyRepo.GetByTaskID(ctx, task.ID)
	if err != nil {
		return nil, false, err
	}
	return entries, true, nil
}

func sameCalendarDate(a, b time.Time) bool {
	return a.UTC().Format(model.DeadlineFormat) == b.UTC().Format(model.DeadlineFormat)
}

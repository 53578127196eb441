package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskman/internal/model"
)

// Primary-target lookup misses are reported as nil/false return values;
// a missing entity that is merely referenced by an operation (creator,
// assignee, commenter, report requester) surfaces as a validation error.

type ProjectServiceInterface interface {
	Create(ctx context.Context, name, description string, creatorExternalID uuid.UUID) (*model.Project, error)
	GetByExternalID(ctx context.Context, externalID uuid.UUID) (*model.Project, error)
	GetAll(ctx context.Context) ([]model.Project, error)
	Update(ctx context.Context, externalID uuid.UUID, newName, newDescription string) (bool, error)
	Delete(ctx context.Context, externalID uuid.UUID) (bool, error)
}

type TaskServiceInterface interface {
	Create(ctx context.Context, projectExternalID uuid.UUID, title, description string, deadline time.Time, priority model.TaskPriority, assigneeExternalID uuid.UUID) (*model.ProjectTask, error)
	GetByExternalID(ctx context.Context, externalID uuid.UUID) (*model.ProjectTask, error)
	GetByProjectExternalID(ctx context.Context, projectExternalID uuid.UUID) ([]model.ProjectTask, error)
	GetAll(ctx context.Context) ([]model.ProjectTask, error)
	UpdateDetails(ctx context.Context, externalID uuid.UUID, newTitle, newDescription string, newDeadline time.Time, modifiedBy uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, externalID uuid.UUID, newStatus model.TaskStatus, modifiedBy uuid.UUID) (bool, error)
	Delete(ctx context.Context, externalID uuid.UUID) (bool, error)
	AddComment(ctx context.Context, externalID uuid.UUID, content string, commentedBy uuid.UUID) (bool, error)
	GetHistory(ctx context.Context, externalID uuid.UUID) ([]model.ProjectTaskHistory, bool, error)
}

type ReportServiceInterface interface {
	GetPerformanceReport(ctx context.Context, requestingUserExternalID uuid.UUID) (*PerformanceReport, error)
}

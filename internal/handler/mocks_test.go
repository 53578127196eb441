package handler_test

import (
	"context"
	"time"

	"taskman/internal/model"
	"taskman/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, name, description string, creatorExternalID uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, name, description, creatorExternalID)
	if project := args.Get(0); project != nil {
		return project.(*model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProjectService) GetByExternalID(ctx context.Context, externalID uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, externalID)
	if project := args.Get(0); project != nil {
		return project.(*model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProjectService) GetAll(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if projects := args.Get(0); projects != nil {
		return projects.([]model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, externalID uuid.UUID, newName, newDescription string) (bool, error) {
	args := m.Called(ctx, externalID, newName, newDescription)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, externalID uuid.UUID) (bool, error) {
	args := m.Called(ctx, externalID)
	return args.Bool(0), args.Error(1)
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) Create(ctx context.Context, projectExternalID uuid.UUID, title, description string, deadline time.Time, priority model.TaskPriority, assigneeExternalID uuid.UUID) (*model.ProjectTask, error) {
	args := m.Called(ctx, projectExternalID, title, description, deadline, priority, assigneeExternalID)
	if task := args.Get(0); task != nil {
		return task.(*model.ProjectTask), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) GetByExternalID(ctx context.Context, externalID uuid.UUID) (*model.ProjectTask, error) {
	args := m.Called(ctx, externalID)
	if task := args.Get(0); task != nil {
		return task.(*model.ProjectTask), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) GetByProjectExternalID(ctx context.Context, projectExternalID uuid.UUID) ([]model.ProjectTask, error) {
	args := m.Called(ctx, projectExternalID)
	if tasks := args.Get(0); tasks != nil {
		return tasks.([]model.ProjectTask), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) GetAll(ctx context.Context) ([]model.ProjectTask, error) {
	args := m.Called(ctx)
	if tasks := args.Get(0); tasks != nil {
		return tasks.([]model.ProjectTask), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskService) UpdateDetails(ctx context.Context, externalID uuid.UUID, newTitle, newDescription string, newDeadline time.Time, modifiedBy uuid.UUID) (bool, error) {
	args := m.Called(ctx, externalID, newTitle, newDescription, newDeadline, modifiedBy)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskService) UpdateStatus(ctx context.Context, externalID uuid.UUID, newStatus model.TaskStatus, modifiedBy uuid.UUID) (bool, error) {
	args := m.Called(ctx, externalID, newStatus, modifiedBy)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, externalID uuid.UUID) (bool, error) {
	args := m.Called(ctx, externalID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskService) AddComment(ctx context.Context, externalID uuid.UUID, content string, commentedBy uuid.UUID) (bool, error) {
	args := m.Called(ctx, externalID, content, commentedBy)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskService) GetHistory(ctx context.Context, externalID uuid.UUID) ([]model.ProjectTaskHistory, bool, error) {
	args := m.Called(ctx, externalID)
	if entries := args.Get(0); entries != nil {
		return entries.([]model.ProjectTaskHistory), args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GetPerformanceReport(ctx context.Context, requestingUserExternalID uuid.UUID) (*service.PerformanceReport, error) {
	args := m.Called(ctx, requestingUserExternalID)
	if report := args.Get(0); report != nil {
		return report.(*service.PerformanceReport), args.Error(1)
	}
	return nil, args.Error(1)
}

package service_test

import (
	"context"

	"taskman/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) GetByExternalID(ctx context.Context, externalID uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, externalID)
	if project := args.Get(0); project != nil {
		return project.(*model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProjectRepository) GetAll(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if projects := args.Get(0); projects != nil {
		return projects.([]model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) CreateInProject(ctx context.Context, task *model.ProjectTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByExternalID(ctx context.Context, externalID uuid.UUID) (*model.ProjectTask, error) {
	args := m.Called(ctx, externalID)
	if task := args.Get(0); task != nil {
		return task.(*model.ProjectTask), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskRepository) GetByProjectExternalID(ctx context.Context, projectExternalID uuid.UUID) ([]model.ProjectTask, error) {
	args := m.Called(ctx, projectExternalID)
	if tasks := args.Get(0); tasks != nil {
		return tasks.([]model.ProjectTask), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskRepository) GetAll(ctx context.Context) ([]model.ProjectTask, error) {
	args := m.Called(ctx)
	if tasks := args.Get(0); tasks != nil {
		return tasks.([]model.ProjectTask), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *model.ProjectTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, task *model.ProjectTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) CountByProjectID(ctx context.Context, projectID uint) (int64, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(int64), args.Error(1)
}

type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Create(ctx context.Context, entry *model.ProjectTaskHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) CreateBatch(ctx context.Context, entries []*model.ProjectTaskHistory) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockHistoryRepository) GetByTaskID(ctx context.Context, projectTaskID uint) ([]model.ProjectTaskHistory, error) {
	args := m.Called(ctx, projectTaskID)
	if entries := args.Get(0); entries != nil {
		return entries.([]model.ProjectTaskHistory), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByExternalID(ctx context.Context, externalID uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, externalID)
	if user := args.Get(0); user != nil {
		return user.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if users := args.Get(0); users != nil {
		return users.([]model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

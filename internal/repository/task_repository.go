package repository

import (
	"context"
	"errors"

	"taskman/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaskRepository struct {
	db *gorm.DB
}

type TaskRepositoryInterface interface {
	CreateInProject(ctx context.Context, task *model.ProjectTask) error
	GetByExternalID(ctx context.Context, externalID uuid.UUID) (*model.ProjectTask, error)
	GetByProjectExternalID(ctx context.Context, projectExternalID uuid.UUID) ([]model.ProjectTask, error)
	GetAll(ctx context.Context) ([]model.ProjectTask, error)
	Update(ctx context.Context, task *model.ProjectTask) error
	Delete(ctx context.Context, task *model.ProjectTask) error
	CountByProjectID(ctx context.Context, projectID uint) (int64, error)
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateInProject inserts a task while holding a lock on its project row, so
// concurrent inserts cannot push the project past the capacity cap. Returns
// ErrTaskLimitReached when the project is full and ErrProjectNotFound when
// the referenced project vanished.
func (r *TaskRepository) CreateInProject(ctx context.Context, task *model.ProjectTask) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project model.Project
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&project, "id = ?", task.ProjectID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&model.ProjectTask{}).Where("project_id = ?", task.ProjectID).Count(&count).Error; err != nil {
			return err
		}
		if count >= model.MaxTasksPerProject {
			return ErrTaskLimitReached
		}

		return tx.Create(task).Error
	})
}

// GetByExternalID returns nil without an error when no task matches. The
// owning project is preloaded.
func (r *TaskRepository) GetByExternalID(ctx context.Context, externalID uuid.UUID) (*model.ProjectTask, error) {
	var task model.ProjectTask
	err := r.db.WithContext(ctx).
		Preload("Project").
		Where("external_id = ?", externalID).
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetByProjectExternalID retrieves all tasks owned by the given project.
func (r *TaskRepository) GetByProjectExternalID(ctx context.Context, projectExternalID uuid.UUID) ([]model.ProjectTask, error) {
	var tasks []model.ProjectTask
	err := r.db.WithContext(ctx).
		Joins("JOIN projects ON projects.id = project_tasks.project_id").
		Where("projects.external_id = ?", projectExternalID).
		Order("project_tasks.id").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) GetAll(ctx context.Context) ([]model.ProjectTask, error) {
	var tasks []model.ProjectTask
	if err := r.db.WithContext(ctx).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *model.ProjectTask) error {
	result := r.db.WithContext(ctx).Save(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, task *model.ProjectTask) error {
	result := r.db.WithContext(ctx).Delete(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) CountByProjectID(ctx context.Context, projectID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ProjectTask{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	return count, err
}

package repository

import (
	"context"

	"taskman/internal/model"

	"gorm.io/gorm"
)

type HistoryRepository struct {
	db *gorm.DB
}

type HistoryRepositoryInterface interface {
	Create(ctx context.Context, entry *model.ProjectTaskHistory) error
	CreateBatch(ctx context.Context, entries []*model.ProjectTaskHistory) error
	GetByTaskID(ctx context.Context, projectTaskID uint) ([]model.ProjectTaskHistory, error)
}

var _ HistoryRepositoryInterface = (*HistoryRepository)(nil)

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create appends one history row. Rows are never updated or deleted.
func (r *HistoryRepository) Create(ctx context.Context, entry *model.ProjectTaskHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// CreateBatch appends several history rows in a single insert.
func (r *HistoryRepository) CreateBatch(ctx context.Context, entries []*model.ProjectTaskHistory) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(entries).Error
}

// GetByTaskID retrieves the audit trail of a task, oldest first.
func (r *HistoryRepository) GetByTaskID(ctx context.Context, projectTaskID uint) ([]model.ProjectTaskHistory, error) {
	var entries []model.ProjectTaskHistory
	err := r.db.WithContext(ctx).
		Where("project_task_id = ?", projectTaskID).
		Order("id").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

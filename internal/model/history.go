package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"taskman/internal/apperror"
)

const (
	ChangeTypeUpdate       = "Update"
	ChangeTypeCommentAdded = "CommentAdded"
)

// Property names recorded in history rows.
const (
	HistoryPropertyTitle       = "Title"
	HistoryPropertyDescription = "Description"
	HistoryPropertyDeadline    = "Deadline"
	HistoryPropertyStatus      = "Status"
	HistoryPropertyComment     = "Comment"
)

// ProjectTaskHistory is an append-only audit record for a single field
// change or comment on a task. Rows are never updated or deleted; the
// modifier is kept as a bare external id so the trail survives user edits.
type ProjectTaskHistory struct {
	ID               uint      `gorm:"primaryKey"`
	ProjectTaskID    uint      `gorm:"not null;index"`
	PropertyName     string    `gorm:"size:100;not null"`
	OldValue         string    `gorm:"size:1000"`
	NewValue         string    `gorm:"size:1000"`
	ModifiedByUserID uuid.UUID `gorm:"type:uuid;not null"`
	ChangeType       string    `gorm:"size:50"`
	ModificationDate time.Time `gorm:"not null"`

	ProjectTask ProjectTask `gorm:"foreignKey:ProjectTaskID;constraint:OnDelete:CASCADE"`
}

func NewProjectTaskHistory(projectTaskID uint, propertyName, oldValue, newValue string, modifiedByUserID uuid.UUID, changeType string) (*ProjectTaskHistory, error) {
	if projectTaskID == 0 {
		return nil, apperror.Validation("history task id must be valid")
	}
	if strings.TrimSpace(propertyName) == "" {
		return nil, apperror.Validation("history property name must not be empty")
	}
	if modifiedByUserID == uuid.Nil {
		return nil, apperror.Validation("history modifier id must not be empty")
	}
	if strings.TrimSpace(changeType) == "" {
		changeType = ChangeTypeUpdate
	}
	return &ProjectTaskHistory{
		ProjectTaskID:    projectTaskID,
		PropertyName:     propertyName,
		OldValue:         oldValue,
		NewValue:         newValue,
		ModifiedByUserID: modifiedByUserID,
		ChangeType:       changeType,
		ModificationDate: time.Now().UTC(),
	}, nil
}

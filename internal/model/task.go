package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"taskman/internal/apperror"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "InProgress"
	StatusCompleted  TaskStatus = "Completed"
	StatusCancelled  TaskStatus = "Cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// DeadlineFormat is the calendar-date layout used when recording deadline
// changes in the task history.
const DeadlineFormat = "2006-01-02"

type ProjectTask struct {
	ID           uint         `gorm:"primaryKey"`
	ExternalID   uuid.UUID    `gorm:"type:uuid;uniqueIndex;not null"`
	Title        string       `gorm:"size:255;not null"`
	Description  string       `gorm:"size:1000;not null"`
	Deadline     time.Time    `gorm:"not null"`
	Status       TaskStatus   `gorm:"size:20;not null;check:status IN ('Pending', 'InProgress', 'Completed', 'Cancelled')"`
	Priority     TaskPriority `gorm:"size:20;not null;check:priority IN ('Low', 'Medium', 'High')"`
	ProjectID    uint         `gorm:"not null;index"`
	AssignedToID uint         `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Project    Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	AssignedTo User    `gorm:"foreignKey:AssignedToID"`
}

func NewProjectTask(title, description string, deadline time.Time, priority TaskPriority, projectID, assignedToID uint) (*ProjectTask, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperror.Validation("task title must not be empty")
	}
	if strings.TrimSpace(description) == "" {
		return nil, apperror.Validation("task description must not be empty")
	}
	if deadline.Before(startOfToday()) {
		return nil, apperror.Validation("task deadline must not be in the past")
	}
	if !priority.Valid() {
		return nil, apperror.Validation("invalid task priority %q", priority)
	}
	if projectID == 0 {
		return nil, apperror.Validation("task project id must be valid")
	}
	if assignedToID == 0 {
		return nil, apperror.Validation("task assignee id must be valid")
	}
	return &ProjectTask{
		ExternalID:   uuid.New(),
		Title:        title,
		Description:  description,
		Deadline:     deadline,
		Status:       StatusPending,
		Priority:     priority,
		ProjectID:    projectID,
		AssignedToID: assignedToID,
	}, nil
}

// UpdateDetails replaces title, description and deadline. A past deadline is
// rejected unless the task is already Completed.
func (t *ProjectTask) UpdateDetails(title, description string, deadline time.Time) error {
	if strings.TrimSpace(title) == "" {
		return apperror.Validation("task title must not be empty")
	}
	if strings.TrimSpace(description) == "" {
		return apperror.Validation("task description must not be empty")
	}
	if deadline.Before(startOfToday()) && t.Status != StatusCompleted {
		return apperror.Validation("task deadline must not be in the past")
	}
	t.Title = title
	t.Description = description
	t.Deadline = deadline
	return nil
}

func (t *ProjectTask) UpdateStatus(status TaskStatus) error {
	if !status.Valid() {
		return apperror.Validation("invalid task status %q", status)
	}
	t.Status = status
	return nil
}

func startOfToday() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

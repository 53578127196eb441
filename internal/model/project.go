package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"taskman/internal/apperror"
)

// MaxTasksPerProject caps how many tasks a single project may own.
const MaxTasksPerProject = 20

type Project struct {
	ID          uint      `gorm:"primaryKey"`
	ExternalID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Name        string    `gorm:"size:255;not null"`
	Description string    `gorm:"size:1000;not null"`
	CreatedByID uint      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	CreatedBy User          `gorm:"foreignKey:CreatedByID"`
	Tasks     []ProjectTask `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func NewProject(name, description string, createdByID uint) (*Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperror.Validation("project name must not be empty")
	}
	if strings.TrimSpace(description) == "" {
		return nil, apperror.Validation("project description must not be empty")
	}
	return &Project{
		ExternalID:  uuid.New(),
		Name:        name,
		Description: description,
		CreatedByID: createdByID,
	}, nil
}

func (p *Project) UpdateName(newName string) error {
	if strings.TrimSpace(newName) == "" {
		return apperror.Validation("project name must not be empty")
	}
	p.Name = newName
	return nil
}

func (p *Project) UpdateDescription(newDescription string) error {
	if strings.TrimSpace(newDescription) == "" {
		return apperror.Validation("project description must not be empty")
	}
	p.Description = newDescription
	return nil
}

// AddTask appends a task to the in-memory collection. The task must already
// reference this project and the capacity cap must not be exceeded.
func (p *Project) AddTask(task *ProjectTask) error {
	if task == nil {
		return apperror.Validation("task must not be nil")
	}
	if len(p.Tasks) >= MaxTasksPerProject {
		return apperror.BusinessRule("project '%s' has reached the maximum of %d tasks", p.Name, MaxTasksPerProject)
	}
	if task.ProjectID != p.ID {
		return apperror.Validation("task does not belong to this project")
	}
	p.Tasks = append(p.Tasks, *task)
	return nil
}

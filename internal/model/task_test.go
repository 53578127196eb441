package model_test

import (
	"testing"
	"time"

	"taskman/internal/apperror"
	"taskman/internal/model"

	"github.com/stretchr/testify/assert"
)

func futureDeadline() time.Time {
	return time.Now().UTC().AddDate(0, 0, 7)
}

func TestNewProjectTask_Valid(t *testing.T) {
	deadline := futureDeadline()

	task, err := model.NewProjectTask("Design", "Design the landing page", deadline, model.PriorityHigh, 10, 2)

	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, task.Status)
	assert.Equal(t, model.PriorityHigh, task.Priority)
	assert.Equal(t, uint(10), task.ProjectID)
	assert.Equal(t, uint(2), task.AssignedToID)
	assert.NotEqual(t, task.ExternalID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestNewProjectTask_PastDeadline(t *testing.T) {
	yesterday := time.Now().UTC().AddDate(0, 0, -1)

	task, err := model.NewProjectTask("Design", "desc", yesterday, model.PriorityLow, 10, 2)

	assert.Nil(t, task)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestNewProjectTask_EmptyFields(t *testing.T) {
	_, err := model.NewProjectTask("", "desc", futureDeadline(), model.PriorityLow, 10, 2)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = model.NewProjectTask("Design", "   ", futureDeadline(), model.PriorityLow, 10, 2)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestNewProjectTask_InvalidPriority(t *testing.T) {
	_, err := model.NewProjectTask("Design", "desc", futureDeadline(), model.TaskPriority("Urgent"), 10, 2)

	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestProjectTask_UpdateDetails(t *testing.T) {
	task, _ := model.NewProjectTask("Design", "desc", futureDeadline(), model.PriorityLow, 10, 2)
	newDeadline := time.Now().UTC().AddDate(0, 0, 14)

	err := task.UpdateDetails("Redesign", "new desc", newDeadline)

	assert.NoError(t, err)
	assert.Equal(t, "Redesign", task.Title)
	assert.Equal(t, "new desc", task.Description)
	assert.Equal(t, newDeadline, task.Deadline)
}

func TestProjectTask_UpdateDetails_PastDeadlineRejected(t *testing.T) {
	task, _ := model.NewProjectTask("Design", "desc", futureDeadline(), model.PriorityLow, 10, 2)
	originalDeadline := task.Deadline
	yesterday := time.Now().UTC().AddDate(0, 0, -1)

	err := task.UpdateDetails("X", "Y", yesterday)

	// The task stays untouched when validation fails.
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	assert.Equal(t, "Design", task.Title)
	assert.Equal(t, "desc", task.Description)
	assert.Equal(t, originalDeadline, task.Deadline)
}

func TestProjectTask_UpdateDetails_PastDeadlineAllowedWhenCompleted(t *testing.T) {
	task, _ := model.NewProjectTask("Design", "desc", futureDeadline(), model.PriorityLow, 10, 2)
	assert.NoError(t, task.UpdateStatus(model.StatusCompleted))

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	err := task.UpdateDetails("Design", "desc", yesterday)

	assert.NoError(t, err)
	assert.Equal(t, yesterday, task.Deadline)
}

func TestProjectTask_UpdateStatus(t *testing.T) {
	task, _ := model.NewProjectTask("Design", "desc", futureDeadline(), model.PriorityLow, 10, 2)

	assert.NoError(t, task.UpdateStatus(model.StatusInProgress))
	assert.Equal(t, model.StatusInProgress, task.Status)

	err := task.UpdateStatus(model.TaskStatus("Archived"))
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	assert.Equal(t, model.StatusInProgress, task.Status)
}

package model_test

import (
	"testing"

	"taskman/internal/apperror"
	"taskman/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewProjectTaskHistory_DefaultsToUpdate(t *testing.T) {
	modifier := uuid.New()

	entry, err := model.NewProjectTaskHistory(5, model.HistoryPropertyTitle, "old", "new", modifier, "")

	assert.NoError(t, err)
	assert.Equal(t, model.ChangeTypeUpdate, entry.ChangeType)
	assert.Equal(t, uint(5), entry.ProjectTaskID)
	assert.Equal(t, "old", entry.OldValue)
	assert.Equal(t, "new", entry.NewValue)
	assert.Equal(t, modifier, entry.ModifiedByUserID)
	assert.False(t, entry.ModificationDate.IsZero())
}

func TestNewProjectTaskHistory_CommentChangeType(t *testing.T) {
	entry, err := model.NewProjectTaskHistory(5, model.HistoryPropertyComment, "", "hello", uuid.New(), model.ChangeTypeCommentAdded)

	assert.NoError(t, err)
	assert.Equal(t, model.ChangeTypeCommentAdded, entry.ChangeType)
	assert.Equal(t, "", entry.OldValue)
	assert.Equal(t, "hello", entry.NewValue)
}

func TestNewProjectTaskHistory_Invalid(t *testing.T) {
	_, err := model.NewProjectTaskHistory(0, model.HistoryPropertyTitle, "a", "b", uuid.New(), "")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = model.NewProjectTaskHistory(5, "  ", "a", "b", uuid.New(), "")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = model.NewProjectTaskHistory(5, model.HistoryPropertyTitle, "a", "b", uuid.Nil, "")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestNewUser(t *testing.T) {
	user, err := model.NewUser("Alice", model.RoleManager)

	assert.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, model.RoleManager, user.Role)

	_, err = model.NewUser("", model.RoleBasic)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = model.NewUser("Bob", model.UserRole("Admin"))
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestUser_Update(t *testing.T) {
	user, _ := model.NewUser("Alice", model.RoleBasic)

	assert.NoError(t, user.Update("Alicia", model.RoleManager))
	assert.Equal(t, "Alicia", user.Name)
	assert.Equal(t, model.RoleManager, user.Role)

	err := user.Update("", model.RoleBasic)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	assert.Equal(t, "Alicia", user.Name)
}

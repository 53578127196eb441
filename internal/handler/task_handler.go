package handler

import (
	"net/http"
	"time"

	"taskman/internal/middleware"
	"taskman/internal/model"
	"taskman/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	taskService service.TaskServiceInterface
}

func NewTaskHandler(taskService service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type CreateTaskRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Description string    `json:"description" binding:"required,max=1000"`
	Deadline    time.Time `json:"deadline" binding:"required"`
	Priority    string    `json:"priority" binding:"required,oneof=Low Medium High"`
	AssigneeID  string    `json:"assignee_id" binding:"required,uuid"`
}

type UpdateTaskRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Description string    `json:"description" binding:"required,max=1000"`
	Deadline    time.Time `json:"deadline" binding:"required"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending InProgress Completed Cancelled"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	ProjectID   string `json:"project_id"`
}

type HistoryResponse struct {
	PropertyName     string `json:"property_name"`
	OldValue         string `json:"old_value"`
	NewValue         string `json:"new_value"`
	ModifiedBy       string `json:"modified_by"`
	ChangeType       string `json:"change_type"`
	ModificationDate string `json:"modification_date"`
}

// taskResponse maps a task to its transport shape. Only external ids are
// exposed, never storage keys.
func taskResponse(task *model.ProjectTask, projectExternalID uuid.UUID) TaskResponse {
	return TaskResponse{
		ID:          task.ExternalID.String(),
		Title:       task.Title,
		Description: task.Description,
		Deadline:    task.Deadline.UTC().Format(model.DeadlineFormat),
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		ProjectID:   projectExternalID.String(),
	}
}

// Create adds a new task to a project
func (h *TaskHandler) Create(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user identity"})
		return
	}
	if _, ok := userID.(uuid.UUID); !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	assigneeID, err := uuid.Parse(req.AssigneeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignee ID format"})
		return
	}

	task, err := h.taskService.Create(
		c.Request.Context(),
		projectID,
		req.Title,
		req.Description,
		req.Deadline,
		model.TaskPriority(req.Priority),
		assigneeID,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, taskResponse(task, projectID))
}

// GetByID retrieves a task by its external id
func (h *TaskHandler) GetByID(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	task, err := h.taskService.GetByExternalID(c.Request.Context(), taskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, taskResponse(task, task.Project.ExternalID))
}

// GetByProjectID lists all tasks of a project
func (h *TaskHandler) GetByProjectID(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	tasks, err := h.taskService.GetByProjectExternalID(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if len(tasks) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]TaskResponse, len(tasks))
	for i := range tasks {
		response[i] = taskResponse(&tasks[i], projectID)
	}

	c.JSON(http.StatusOK, response)
}

// Update replaces a task's title, description and deadline, recording each
// actual change in the task history
func (h *TaskHandler) Update(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user identity"})
		return
	}
	modifierID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	found, err := h.taskService.UpdateDetails(c.Request.Context(), taskID, req.Title, req.Description, req.Deadline, modifierID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	task, err := h.taskService.GetByExternalID(c.Request.Context(), taskID)
	if err != nil || task == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve updated task"})
		return
	}

	c.JSON(http.StatusOK, taskResponse(task, task.Project.ExternalID))
}

// UpdateStatus moves a task to a new status, recording the transition in
// the task history when the status actually changes
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user identity"})
		return
	}
	modifierID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	found, err := h.taskService.UpdateStatus(c.Request.Context(), taskID, model.TaskStatus(req.Status), modifierID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	task, err := h.taskService.GetByExternalID(c.Request.Context(), taskID)
	if err != nil || task == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve updated task"})
		return
	}

	c.JSON(http.StatusOK, taskResponse(task, task.Project.ExternalID))
}

// Delete removes a task
func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	found, err := h.taskService.Delete(c.Request.Context(), taskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// AddComment appends a comment to the task history
func (h *TaskHandler) AddComment(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user identity"})
		return
	}
	commenterID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	found, err := h.taskService.AddComment(c.Request.Context(), taskID, req.Content, commenterID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.Status(http.StatusCreated)
}

// GetHistory lists the audit trail of a task, oldest first
func (h *TaskHandler) GetHistory(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	entries, found, err := h.taskService.GetHistory(c.Request.Context(), taskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	response := make([]HistoryResponse, len(entries))
	for i, entry := range entries {
		response[i] = HistoryResponse{
			PropertyName:     entry.PropertyName,
			OldValue:         entry.OldValue,
			NewValue:         entry.NewValue,
			ModifiedBy:       entry.ModifiedByUserID.String(),
			ChangeType:       entry.ChangeType,
			ModificationDate: entry.ModificationDate.UTC().Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, response)
}

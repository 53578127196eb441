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

type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"required,max=1000"`
}

type UpdateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"required,max=1000"`
}

type ProjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func projectResponse(project *model.Project) ProjectResponse {
	return ProjectResponse{
		ID:          project.ExternalID.String(),
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   project.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// Create creates a new project owned by the acting user
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user identity"})
		return
	}

	creatorID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), req.Name, req.Description, creatorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, projectResponse(project))
}

// GetByID retrieves a project by its external id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	project, err := h.projectService.GetByExternalID(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, projectResponse(project))
}

// GetAll lists every project
func (h *ProjectHandler) GetAll(c *gin.Context) {
	projects, err := h.projectService.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if len(projects) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]ProjectResponse, len(projects))
	for i := range projects {
		response[i] = projectResponse(&projects[i])
	}

	c.JSON(http.StatusOK, response)
}

// Update replaces a project's name and description
func (h *ProjectHandler) Update(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	found, err := h.projectService.Update(c.Request.Context(), projectID, req.Name, req.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	project, err := h.projectService.GetByExternalID(c.Request.Context(), projectID)
	if err != nil || project == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve updated project"})
		return
	}

	c.JSON(http.StatusOK, projectResponse(project))
}

// Delete removes a project unless it still has pending tasks
func (h *ProjectHandler) Delete(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	found, err := h.projectService.Delete(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

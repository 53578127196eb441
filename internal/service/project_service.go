package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"taskman/internal/apperror"
	"taskman/internal/model"
	"taskman/internal/repository"
)

type ProjectService struct {
	logger      zerolog.Logger
	projectRepo repository.ProjectRepositoryInterface
	taskRepo    repository.TaskRepositoryInterface
	userRepo    repository.UserRepositoryInterface
}

var _ ProjectServiceInterface = (*ProjectService)(nil)

func NewProjectService(
	logger zerolog.Logger,
	projectRepo repository.ProjectRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
) *ProjectService {
	return &ProjectService{
		logger:      logger,
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		userRepo:    userRepo,
	}
}

func (s *ProjectService) Create(ctx context.Context, name, description string, creatorExternalID uuid.UUID) (*model.Project, error) {
	creator, err := s.userRepo.GetByExternalID(ctx, creatorExternalID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		s.logger.Warn().
			Str("creator_id", creatorExternalID.String()).
			Msg("project creator not found")
		return nil, apperror.Validation("user with id %s not found", creatorExternalID)
	}

	project, err := model.NewProject(name, description, creator.ID)
	if err != nil {
		return nil, err
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("project_id", project.ExternalID.String()).
		Str("name", project.Name).
		Msg("created project")

	return project, nil
}

func (s *ProjectService) GetByExternalID(ctx context.Context, externalID uuid.UUID) (*model.Project, error) {
	return s.projectRepo.GetByExternalID(ctx, externalID)
}

func (s *ProjectService) GetAll(ctx context.Context) ([]model.Project, error) {
	return s.projectRepo.GetAll(ctx)
}

func (s *ProjectService) Update(ctx context.Context, externalID uuid.UUID, newName, newDescription string) (bool, error) {
	project, err := s.projectRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		return false, err
	}
	if project == nil {
		return false, nil
	}

	if err := project.UpdateName(newName); err != nil {
		return false, err
	}
	if err := project.UpdateDescription(newDescription); err != nil {
		return false, err
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return false, err
	}

	s.logger.Info().
		Str("project_id", externalID.String()).
		Msg("updated project")

	return true, nil
}

// Delete removes a project and its tasks. A project that still owns a
// Pending task cannot be removed.
func (s *ProjectService) Delete(ctx context.Context, externalID uuid.UUID) (bool, error) {
	project, err := s.projectRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		return false, err
	}
	if project == nil {
		s.logger.Warn().
			Str("project_id", externalID.String()).
			Msg("project not found for deletion")
		return false, nil
	}

	tasks, err := s.taskRepo.GetByProjectExternalID(ctx, externalID)
	if err != nil {
		return false, err
	}
	for _, task := range tasks {
		if task.Status == model.StatusPending {
			s.logger.Warn().
				Str("project_id", externalID.String()).
				Str("name", project.Name).
				Msg("deletion blocked by pending tasks")
			return false, apperror.BusinessRule(
				"cannot remove project '%s': it still has pending tasks; complete or remove them first",
				project.Name,
			)
		}
	}

	if err := s.projectRepo.Delete(ctx, project); err != nil {
		return false, err
	}

	s.logger.Info().
		Str("project_id", externalID.String()).
		Msg("deleted project")

	return true, nil
}

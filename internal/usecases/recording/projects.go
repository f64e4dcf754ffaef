package recording

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
)

func (s *Service) ListProjects(userID int) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListByUser(userID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar projetos")
		return nil, dbError(resourceProject, "", err)
	}

	if projects == nil {
		return []domain.Project{}, nil
	}
	return projects, nil
}

// ensureClient confirma que o cliente existe e pertence ao usuário
func (s *Service) ensureClient(userID int, clientID string) error {
	client, err := s.clientRepo.GetByID(userID, clientID)
	if err != nil {
		return dbError(resourceClient, clientID, err)
	}
	if client == nil {
		return unknownReference(resourceClient, clientID)
	}
	return nil
}

func applyProjectRequest(project *domain.Project, req *domain.ProjectRequest) {
	project.ClientID = req.ClientID
	project.Name = strings.TrimSpace(req.Name)
	project.HourlyRate = req.HourlyRate
	project.Budget = req.Budget

	if req.Status != nil {
		project.Status = *req.Status
	}
	if project.Status == "" {
		project.Status = domain.ProjectStatusActive
	}
}

func (s *Service) CreateProject(userID int, req *domain.ProjectRequest) (*domain.Project, error) {
	if err := s.validateRequest(resourceProject, req); err != nil {
		return nil, err
	}

	if err := s.ensureClient(userID, req.ClientID); err != nil {
		return nil, err
	}

	id, err := s.generateID(resourceProject)
	if err != nil {
		return nil, err
	}

	project := &domain.Project{ID: id, UserID: userID}
	applyProjectRequest(project, req)

	if err := s.projectRepo.Create(project); err != nil {
		logrus.WithError(err).Error("Erro ao criar projeto")
		return nil, dbError(resourceProject, id, err)
	}

	return project, nil
}

func (s *Service) UpdateProject(userID int, projectID string, req *domain.ProjectRequest) (*domain.Project, error) {
	if err := s.validateRequest(resourceProject, req); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.GetByID(userID, projectID)
	if err != nil {
		return nil, dbError(resourceProject, projectID, err)
	}
	if project == nil {
		return nil, notFound(resourceProject, projectID)
	}

	if project.ClientID != req.ClientID {
		if err := s.ensureClient(userID, req.ClientID); err != nil {
			return nil, err
		}
	}

	applyProjectRequest(project, req)

	found, err := s.projectRepo.Update(project)
	if err != nil {
		return nil, dbError(resourceProject, projectID, err)
	}
	if !found {
		return nil, notFound(resourceProject, projectID)
	}

	return project, nil
}

func (s *Service) DeleteProject(userID int, projectID string) error {
	found, err := s.projectRepo.Delete(userID, projectID)
	if err != nil {
		return dbError(resourceProject, projectID, err)
	}
	if !found {
		return notFound(resourceProject, projectID)
	}
	return nil
}

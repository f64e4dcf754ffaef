package recording

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/vfg2006/consultant-dashboard-api/pkg/utils"
)

func (s *Service) ListTimeEntries(userID int, rng *domain.DateRange) ([]domain.TimeEntry, error) {
	entries, err := s.entryRepo.ListByUser(userID, rng)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar lançamentos de horas")
		return nil, dbError(resourceTimeEntry, "", err)
	}

	if entries == nil {
		return []domain.TimeEntry{}, nil
	}
	return entries, nil
}

func (s *Service) CreateTimeEntry(userID int, req *domain.TimeEntryRequest) (*domain.TimeEntry, error) {
	if err := s.validateRequest(resourceTimeEntry, req); err != nil {
		return nil, err
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, invalid(resourceTimeEntry, err.Error())
	}

	project, err := s.projectRepo.GetByID(userID, req.ProjectID)
	if err != nil {
		return nil, dbError(resourceProject, req.ProjectID, err)
	}
	if project == nil {
		return nil, unknownReference(resourceProject, req.ProjectID)
	}

	id, err := s.generateID(resourceTimeEntry)
	if err != nil {
		return nil, err
	}

	entry := &domain.TimeEntry{
		ID:          id,
		UserID:      userID,
		ProjectID:   req.ProjectID,
		Date:        *date,
		Hours:       req.Hours,
		Description: req.Description,
	}

	if err := s.entryRepo.Create(entry); err != nil {
		logrus.WithError(err).Error("Erro ao criar lançamento de horas")
		return nil, dbError(resourceTimeEntry, id, err)
	}

	return entry, nil
}

func (s *Service) DeleteTimeEntry(userID int, entryID string) error {
	found, err := s.entryRepo.Delete(userID, entryID)
	if err != nil {
		return dbError(resourceTimeEntry, entryID, err)
	}
	if !found {
		return notFound(resourceTimeEntry, entryID)
	}
	return nil
}

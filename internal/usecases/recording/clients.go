package recording

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/vfg2006/consultant-dashboard-api/pkg/utils"
)

func (s *Service) ListClients(userID int) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListByUser(userID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar clientes")
		return nil, dbError(resourceClient, "", err)
	}

	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func (s *Service) GetClient(userID int, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(userID, clientID)
	if err != nil {
		return nil, dbError(resourceClient, clientID, err)
	}
	if client == nil {
		return nil, notFound(resourceClient, clientID)
	}
	return client, nil
}

// applyClientRequest normaliza o pedido. O telefone é salvo em E.164.
func applyClientRequest(client *domain.Client, req *domain.ClientRequest) error {
	client.Name = strings.TrimSpace(req.Name)
	client.Company = req.Company
	client.ContactPerson = req.ContactPerson
	client.Email = req.Email
	client.OrganisationNumber = req.OrganisationNumber
	client.Phone = nil

	if req.Phone != nil && strings.TrimSpace(*req.Phone) != "" {
		phone, err := utils.NormalizePhone(*req.Phone, utils.DefaultPhoneRegion)
		if err != nil {
			return invalid(resourceClient, err.Error())
		}
		client.Phone = &phone
	}

	return nil
}

func (s *Service) CreateClient(userID int, req *domain.ClientRequest) (*domain.Client, error) {
	if err := s.validateRequest(resourceClient, req); err != nil {
		return nil, err
	}

	client := &domain.Client{UserID: userID}
	if err := applyClientRequest(client, req); err != nil {
		return nil, err
	}

	id, err := s.generateID(resourceClient)
	if err != nil {
		return nil, err
	}
	client.ID = id

	if err := s.clientRepo.Create(client); err != nil {
		logrus.WithError(err).Error("Erro ao criar cliente")
		return nil, dbError(resourceClient, id, err)
	}

	return client, nil
}

func (s *Service) UpdateClient(userID int, clientID string, req *domain.ClientRequest) (*domain.Client, error) {
	if err := s.validateRequest(resourceClient, req); err != nil {
		return nil, err
	}

	client, err := s.GetClient(userID, clientID)
	if err != nil {
		return nil, err
	}

	if err := applyClientRequest(client, req); err != nil {
		return nil, err
	}

	found, err := s.clientRepo.Update(client)
	if err != nil {
		return nil, dbError(resourceClient, clientID, err)
	}
	if !found {
		return nil, notFound(resourceClient, clientID)
	}

	return client, nil
}

// DeleteClient remove também os projetos e lançamentos do cliente (cascade no banco)
func (s *Service) DeleteClient(userID int, clientID string) error {
	found, err := s.clientRepo.Delete(userID, clientID)
	if err != nil {
		return dbError(resourceClient, clientID, err)
	}
	if !found {
		return notFound(resourceClient, clientID)
	}
	return nil
}

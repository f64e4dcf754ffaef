package recording

import (
	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/consultant-dashboard-api/internal/config"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/vfg2006/consultant-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/consultant-dashboard-api/pkg/utils"
)

const (
	resourceClient      = "client"
	resourceProject     = "project"
	resourceTimeEntry   = "time_entry"
	resourceInvoiceItem = "invoice_item"
	resourceExpense     = "expense"
)

type ClientRecorder interface {
	ListClients(userID int) ([]domain.Client, error)
	GetClient(userID int, clientID string) (*domain.Client, error)
	CreateClient(userID int, req *domain.ClientRequest) (*domain.Client, error)
	UpdateClient(userID int, clientID string, req *domain.ClientRequest) (*domain.Client, error)
	DeleteClient(userID int, clientID string) error
}

type ProjectRecorder interface {
	ListProjects(userID int) ([]domain.Project, error)
	CreateProject(userID int, req *domain.ProjectRequest) (*domain.Project, error)
	UpdateProject(userID int, projectID string, req *domain.ProjectRequest) (*domain.Project, error)
	DeleteProject(userID int, projectID string) error
}

type TimeEntryRecorder interface {
	ListTimeEntries(userID int, rng *domain.DateRange) ([]domain.TimeEntry, error)
	CreateTimeEntry(userID int, req *domain.TimeEntryRequest) (*domain.TimeEntry, error)
	DeleteTimeEntry(userID int, entryID string) error
}

type InvoiceItemRecorder interface {
	ListInvoiceItems(userID int, filters domain.InvoiceItemFilters) ([]domain.InvoiceItem, error)
	CreateInvoiceItem(userID int, req *domain.InvoiceItemRequest) (*domain.InvoiceItem, error)
	UpdateInvoiceItem(userID int, itemID string, req *domain.InvoiceItemRequest) (*domain.InvoiceItem, error)
	DeleteInvoiceItem(userID int, itemID string) error
}

type ExpenseRecorder interface {
	ListExpenses(userID int, rng *domain.DateRange) ([]domain.Expense, error)
	CreateExpense(userID int, req *domain.ExpenseRequest) (*domain.Expense, error)
	DeleteExpense(userID int, expenseID string) error
}

// Recorder reúne os cadastros do consultor, sempre restritos ao usuário autenticado
type Recorder interface {
	ClientRecorder
	ProjectRecorder
	TimeEntryRecorder
	InvoiceItemRecorder
	ExpenseRecorder
}

type Service struct {
	clientRepo       repository.ClientRepository
	projectRepo      repository.ProjectRepository
	entryRepo        repository.TimeEntryRepository
	itemRepo         repository.InvoiceItemRepository
	expenseRepo      repository.ExpenseRepository
	validate         *validator.Validate
	paymentTermsDays int
	newID            func() (string, error)
}

func NewService(
	cfg *config.Config,
	clientRepo repository.ClientRepository,
	projectRepo repository.ProjectRepository,
	entryRepo repository.TimeEntryRepository,
	itemRepo repository.InvoiceItemRepository,
	expenseRepo repository.ExpenseRepository,
) Recorder {
	terms := 30
	if cfg != nil && cfg.Invoicing.DefaultPaymentTermsDays > 0 {
		terms = cfg.Invoicing.DefaultPaymentTermsDays
	}

	return &Service{
		clientRepo:       clientRepo,
		projectRepo:      projectRepo,
		entryRepo:        entryRepo,
		itemRepo:         itemRepo,
		expenseRepo:      expenseRepo,
		validate:         validator.New(),
		paymentTermsDays: terms,
		newID:            utils.GenerateID,
	}
}

func (s *Service) validateRequest(resource string, req any) error {
	if err := s.validate.Struct(req); err != nil {
		return NewRecordError(ErrInvalidInput, apiErrors.ErrInvalidRequest, resource, utils.ValidationDetails(err))
	}
	return nil
}

func (s *Service) generateID(resource string) (string, error) {
	id, err := s.newID()
	if err != nil {
		return "", NewRecordError(ErrGenerateID, apiErrors.ErrInternalServer, resource, "Falha ao gerar identificador único")
	}
	return id, nil
}

func dbError(resource, id string, err error) error {
	return NewRecordErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, resource, id, err.Error())
}

func notFound(resource, id string) error {
	return NewRecordErrorWithID(ErrNotFound, apiErrors.ErrResourceNotFound, resource, id, "Registro não encontrado")
}

func invalid(resource, details string) error {
	return NewRecordError(ErrInvalidInput, apiErrors.ErrInvalidRequest, resource, details)
}

func unknownReference(resource, id string) error {
	return NewRecordErrorWithID(ErrUnknownReference, apiErrors.ErrInvalidRequest, resource, id, "Registro referenciado não existe")
}

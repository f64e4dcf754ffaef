package exporting

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/integrator/fortnox"
	fortnoxdomain "github.com/vfg2006/consultant-dashboard-api/infrastructure/integrator/fortnox/domain"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/integrator/fortnox/fortnoxclient"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/kvstore"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/consultant-dashboard-api/internal/config"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/consultant-dashboard-api/pkg/log"
	"github.com/vfg2006/consultant-dashboard-api/pkg/utils"
)

var (
	ErrInvalidInput = errors.New("dados de exportação inválidos")
	ErrNoItems      = errors.New("nenhum item de fatura encontrado")
)

// Exporter reúne as exportações de faturamento: Fortnox, fatura em texto e planilha
type Exporter interface {
	ExportToFortnox(ctx context.Context, userID int, req domain.FortnoxExportRequest) fortnoxdomain.ExportResult
	TextInvoice(ctx context.Context, userID int, req domain.TextInvoiceRequest) (*domain.TextInvoiceFile, error)
	RevenueWorkbook(ctx context.Context, userID int, rng domain.DateRange) (*bytes.Buffer, error)

	FortnoxStatus(ctx context.Context, userID int) (*domain.FortnoxStatus, error)
	SaveFortnoxConfig(ctx context.Context, userID int, req domain.FortnoxConfigRequest) error
	ClearFortnoxConfig(ctx context.Context, userID int) error
	TestFortnoxConnection(ctx context.Context, userID int) (fortnoxdomain.ConnectionResult, error)
	FortnoxCustomers(ctx context.Context, userID int) ([]fortnoxdomain.Customer, error)
}

type Service struct {
	cfg        *config.Config
	store      kvstore.CredentialStore
	locker     ExportLocker
	itemRepo   repository.InvoiceItemRepository
	userRepo   repository.UserRepository
	reporter   reporting.Reporter
	validate   *validator.Validate
	newAdapter func() fortnox.Integrator
	now        func() time.Time
}

func NewService(
	cfg *config.Config,
	store kvstore.CredentialStore,
	locker ExportLocker,
	itemRepo repository.InvoiceItemRepository,
	userRepo repository.UserRepository,
	reporter reporting.Reporter,
) Exporter {
	return &Service{
		cfg:      cfg,
		store:    store,
		locker:   locker,
		itemRepo: itemRepo,
		userRepo: userRepo,
		reporter: reporter,
		validate: validator.New(),
		// cada exportação usa um adaptador novo, configurado só com as credenciais do usuário
		newAdapter: func() fortnox.Integrator {
			return fortnox.New(cfg, fortnoxclient.NewClient(cfg.FortnoxTimeout()))
		},
		now: time.Now,
	}
}

// adapterFor retorna um adaptador configurado quando o usuário tem credenciais salvas
func (s *Service) adapterFor(ctx context.Context, userID int) (fortnox.Integrator, error) {
	creds, err := s.store.LoadFortnox(ctx, userID)
	if err != nil {
		return nil, err
	}

	adapter := s.newAdapter()
	if creds != nil && creds.IsComplete() {
		adapter.Configure(*creds)
	}

	return adapter, nil
}

func (s *Service) ExportToFortnox(ctx context.Context, userID int, req domain.FortnoxExportRequest) fortnoxdomain.ExportResult {
	logger := log.ForContext(ctx).WithField("user_id", userID)

	if err := s.validate.Struct(req); err != nil {
		return fortnoxdomain.ExportResult{Success: false, Error: fmt.Sprintf("%s: %v", ErrInvalidInput, err)}
	}

	// credenciais são verificadas antes do lock
	creds, err := s.store.LoadFortnox(ctx, userID)
	if err != nil {
		logger.WithError(err).Error("erro ao carregar credenciais do Fortnox")
		return fortnoxdomain.ExportResult{Success: false, Error: "could not load Fortnox configuration"}
	}
	if creds == nil || !creds.IsComplete() {
		logger.Warn("exportação para o Fortnox sem credenciais configuradas")
		return fortnoxdomain.ExportResult{Success: false, Error: fortnox.ErrNotConfigured}
	}

	release, err := s.locker.Acquire(ctx, userID)
	if err != nil {
		logger.WithError(err).Warn("exportação para o Fortnox não iniciada")
		return fortnoxdomain.ExportResult{Success: false, Error: err.Error()}
	}
	defer release()

	adapter := s.newAdapter()
	adapter.Configure(*creds)

	items, err := s.itemRepo.List(userID, domain.InvoiceItemFilters{ItemIDs: req.ItemIDs})
	if err != nil {
		logger.WithError(err).Error("erro ao buscar itens para exportação")
		return fortnoxdomain.ExportResult{Success: false, Error: "could not load invoice items"}
	}

	result := adapter.ExportInvoiceItems(ctx, items, req.CustomerName)

	logger.WithFields(log.Fields{
		"success":         result.Success,
		"document_number": result.DocumentNumber,
		"items":           len(items),
	}).Info("exportação para o Fortnox finalizada")

	return result
}

func (s *Service) TextInvoice(ctx context.Context, userID int, req domain.TextInvoiceRequest) (*domain.TextInvoiceFile, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	filters := domain.InvoiceItemFilters{ItemIDs: req.ItemIDs}
	if req.From != "" {
		from, err := utils.ParseDate(req.From)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		to, err := utils.ParseDate(req.To)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		rng := domain.NewDateRange(*from, *to)
		if err := rng.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filters.Range = &rng
	}

	if len(filters.ItemIDs) == 0 && filters.Range == nil {
		return nil, fmt.Errorf("%w: informe item_ids ou o período", ErrInvalidInput)
	}

	items, err := s.itemRepo.List(userID, filters)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens de fatura: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	number, err := utils.GenerateInvoiceNumber()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar número da fatura: %w", err)
	}

	invoice := s.newAdapter().ConvertItems(items, "", domain.DateOnly(s.now()))

	doc := TextInvoiceDocument{
		Number:       number,
		SellerName:   sellerName(user),
		CustomerName: req.CustomerName,
		VATPercent:   invoice.InvoiceRows[0].VAT,
		Invoice:      invoice,
	}

	return &domain.TextInvoiceFile{
		Filename: fmt.Sprintf("faktura-%s.txt", number),
		Content:  FormatTextInvoice(doc),
	}, nil
}

func sellerName(user *domain.User) string {
	if user == nil {
		return ""
	}
	if user.CompanyName != nil && *user.CompanyName != "" {
		return *user.CompanyName
	}
	return user.Name
}

func (s *Service) RevenueWorkbook(ctx context.Context, userID int, rng domain.DateRange) (*bytes.Buffer, error) {
	metrics, err := s.reporter.RevenueReport(ctx, userID, rng)
	if err != nil {
		return nil, err
	}

	return BuildRevenueWorkbook(rng, *metrics)
}

func (s *Service) FortnoxStatus(ctx context.Context, userID int) (*domain.FortnoxStatus, error) {
	creds, err := s.store.LoadFortnox(ctx, userID)
	if err != nil {
		return nil, err
	}

	if creds == nil || !creds.IsComplete() {
		return &domain.FortnoxStatus{Configured: false}, nil
	}

	return &domain.FortnoxStatus{
		Configured:      true,
		BaseURL:         creds.BaseURL,
		AccessTokenHint: maskSecret(creds.AccessToken),
	}, nil
}

func maskSecret(secret string) string {
	const visible = 4
	if len(secret) <= visible {
		return "****"
	}
	return "****" + secret[len(secret)-visible:]
}

func (s *Service) SaveFortnoxConfig(ctx context.Context, userID int, req domain.FortnoxConfigRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	creds := fortnoxdomain.Credentials{
		AccessToken:  req.AccessToken,
		ClientSecret: req.ClientSecret,
		BaseURL:      req.BaseURL,
	}

	if err := s.store.SaveFortnox(ctx, userID, creds); err != nil {
		return err
	}

	log.ForContext(ctx).WithField("user_id", userID).Info("credenciais do Fortnox salvas")
	return nil
}

func (s *Service) ClearFortnoxConfig(ctx context.Context, userID int) error {
	return s.store.ClearFortnox(ctx, userID)
}

func (s *Service) TestFortnoxConnection(ctx context.Context, userID int) (fortnoxdomain.ConnectionResult, error) {
	adapter, err := s.adapterFor(ctx, userID)
	if err != nil {
		return fortnoxdomain.ConnectionResult{}, err
	}
	return adapter.TestConnection(ctx), nil
}

func (s *Service) FortnoxCustomers(ctx context.Context, userID int) ([]fortnoxdomain.Customer, error) {
	adapter, err := s.adapterFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return adapter.ListCustomers(ctx), nil
}

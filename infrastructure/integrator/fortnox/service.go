package fortnox

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	fortnoxdomain "github.com/vfg2006/consultant-dashboard-api/infrastructure/integrator/fortnox/domain"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/integrator/fortnox/fortnoxclient"
	"github.com/vfg2006/consultant-dashboard-api/internal/config"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/vfg2006/consultant-dashboard-api/pkg/finance"
	"github.com/vfg2006/consultant-dashboard-api/pkg/log"
)

const (
	DefaultBaseURL          = "https://api.fortnox.se/3"
	DefaultVATPercent       = 25
	DefaultPaymentTermsDays = 30

	ErrNotConfigured = "Fortnox service not configured"
	ErrNoItems       = "No invoice items to export"
)

type Integrator interface {
	Configure(creds fortnoxdomain.Credentials)
	ClearConfiguration()
	IsConfigured() bool
	TestConnection(ctx context.Context) fortnoxdomain.ConnectionResult
	ListCustomers(ctx context.Context) []fortnoxdomain.Customer
	FindCustomerByName(ctx context.Context, name string) *fortnoxdomain.Customer
	CreateCustomer(ctx context.Context, customer fortnoxdomain.Customer) fortnoxdomain.CustomerResult
	FindOrCreateCustomer(ctx context.Context, name string) fortnoxdomain.CustomerResult
	ConvertItems(items []domain.InvoiceItem, customerNumber string, invoiceDate time.Time) fortnoxdomain.Invoice
	CreateInvoice(ctx context.Context, invoice fortnoxdomain.Invoice) fortnoxdomain.InvoiceResult
	ExportInvoiceItems(ctx context.Context, items []domain.InvoiceItem, customerName string) fortnoxdomain.ExportResult
}

// FortnoxService guarda credenciais opcionais. Nenhuma operação pública retorna erro ou entra em panic:
// falhas viram resultados com Success=false ou valores vazios.
type FortnoxService struct {
	mu               sync.RWMutex
	creds            *fortnoxdomain.Credentials
	client           fortnoxclient.Client
	defaultBaseURL   string
	vatPercent       int
	paymentTermsDays int
	now              func() time.Time
}

func New(cfg *config.Config, client fortnoxclient.Client) Integrator {
	s := &FortnoxService{
		client:           client,
		defaultBaseURL:   DefaultBaseURL,
		vatPercent:       DefaultVATPercent,
		paymentTermsDays: DefaultPaymentTermsDays,
		now:              time.Now,
	}

	if cfg != nil {
		if cfg.Fortnox.BaseURL != "" {
			s.defaultBaseURL = cfg.Fortnox.BaseURL
		}
		if cfg.Invoicing.DefaultVATPercent > 0 {
			s.vatPercent = cfg.Invoicing.DefaultVATPercent
		}
		if cfg.Invoicing.DefaultPaymentTermsDays > 0 {
			s.paymentTermsDays = cfg.Invoicing.DefaultPaymentTermsDays
		}
	}

	return s
}

func (s *FortnoxService) Configure(creds fortnoxdomain.Credentials) {
	if creds.BaseURL == "" {
		creds.BaseURL = s.defaultBaseURL
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = &creds
}

func (s *FortnoxService) ClearConfiguration() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = nil
}

func (s *FortnoxService) IsConfigured() bool {
	_, ok := s.credentials()
	return ok
}

func (s *FortnoxService) credentials() (fortnoxdomain.Credentials, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.creds == nil {
		return fortnoxdomain.Credentials{}, false
	}
	return *s.creds, true
}

func (s *FortnoxService) TestConnection(ctx context.Context) fortnoxdomain.ConnectionResult {
	creds, ok := s.credentials()
	if !ok {
		return fortnoxdomain.ConnectionResult{Success: false, Error: ErrNotConfigured}
	}

	info, err := s.client.GetCompanyInformation(ctx, creds)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("fortnox: falha ao testar conexão")
		return fortnoxdomain.ConnectionResult{Success: false, Error: err.Error()}
	}

	return fortnoxdomain.ConnectionResult{Success: true, CompanyName: info.CompanyName}
}

// ListCustomers retorna lista vazia em qualquer falha
func (s *FortnoxService) ListCustomers(ctx context.Context) []fortnoxdomain.Customer {
	creds, ok := s.credentials()
	if !ok {
		return []fortnoxdomain.Customer{}
	}

	customers, err := s.client.ListCustomers(ctx, creds)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("fortnox: falha ao listar clientes")
		return []fortnoxdomain.Customer{}
	}

	return customers
}

// FindCustomerByName compara o nome exato sem diferenciar maiúsculas. Retorna nil em falha.
func (s *FortnoxService) FindCustomerByName(ctx context.Context, name string) *fortnoxdomain.Customer {
	target := strings.TrimSpace(name)
	for _, customer := range s.ListCustomers(ctx) {
		if strings.EqualFold(strings.TrimSpace(customer.Name), target) {
			c := customer
			return &c
		}
	}
	return nil
}

func (s *FortnoxService) CreateCustomer(ctx context.Context, customer fortnoxdomain.Customer) fortnoxdomain.CustomerResult {
	creds, ok := s.credentials()
	if !ok {
		return fortnoxdomain.CustomerResult{Success: false, Error: ErrNotConfigured}
	}

	created, err := s.client.CreateCustomer(ctx, creds, customer)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("fortnox: falha ao criar cliente")
		return fortnoxdomain.CustomerResult{Success: false, Error: err.Error()}
	}

	return fortnoxdomain.CustomerResult{Success: true, CustomerNumber: created.CustomerNumber}
}

func (s *FortnoxService) FindOrCreateCustomer(ctx context.Context, name string) fortnoxdomain.CustomerResult {
	if existing := s.FindCustomerByName(ctx, name); existing != nil {
		return fortnoxdomain.CustomerResult{Success: true, CustomerNumber: existing.CustomerNumber}
	}

	return s.CreateCustomer(ctx, fortnoxdomain.Customer{Name: strings.TrimSpace(name)})
}

// ConvertItems gera uma linha por item. Itens por hora usam horas x taxa, os demais 1 x valor total.
func (s *FortnoxService) ConvertItems(items []domain.InvoiceItem, customerNumber string, invoiceDate time.Time) fortnoxdomain.Invoice {
	rows := make([]fortnoxdomain.InvoiceRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, s.convertItem(item))
	}

	return fortnoxdomain.Invoice{
		CustomerNumber: customerNumber,
		InvoiceDate:    invoiceDate.Format(time.DateOnly),
		DueDate:        finance.PaymentDate(invoiceDate, s.paymentTermsDays).Format(time.DateOnly),
		InvoiceRows:    rows,
	}
}

func (s *FortnoxService) convertItem(item domain.InvoiceItem) fortnoxdomain.InvoiceRow {
	row := fortnoxdomain.InvoiceRow{
		Description: item.Description,
		VAT:         s.vatPercent,
	}

	if item.IsHourly() {
		row.DeliveredQuantity = decimal.NewFromFloat(*item.Hours).Round(2).InexactFloat64()
		row.Price = decimal.NewFromFloat(*item.HourlyRate).Round(2).InexactFloat64()
		return row
	}

	row.DeliveredQuantity = 1
	row.Price = decimal.NewFromFloat(item.TotalAmount).Round(2).InexactFloat64()
	return row
}

func (s *FortnoxService) CreateInvoice(ctx context.Context, invoice fortnoxdomain.Invoice) fortnoxdomain.InvoiceResult {
	creds, ok := s.credentials()
	if !ok {
		return fortnoxdomain.InvoiceResult{Success: false, Error: ErrNotConfigured}
	}

	created, err := s.client.CreateInvoice(ctx, creds, invoice)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("fortnox: falha ao criar fatura")
		return fortnoxdomain.InvoiceResult{Success: false, Error: err.Error()}
	}

	return fortnoxdomain.InvoiceResult{Success: true, DocumentNumber: created.DocumentNumber}
}

// ExportInvoiceItems busca ou cria o cliente e então cria a fatura, nessa ordem e sem novas tentativas
func (s *FortnoxService) ExportInvoiceItems(ctx context.Context, items []domain.InvoiceItem, customerName string) (result fortnoxdomain.ExportResult) {
	defer func() {
		if r := recover(); r != nil {
			log.ForContext(ctx).Errorf("fortnox: panic durante exportação: %v", r)
			result = fortnoxdomain.ExportResult{Success: false, Error: "unexpected error during export"}
		}
	}()

	if !s.IsConfigured() {
		return fortnoxdomain.ExportResult{Success: false, Error: ErrNotConfigured}
	}

	if len(items) == 0 {
		return fortnoxdomain.ExportResult{Success: false, Error: ErrNoItems}
	}

	customer := s.FindOrCreateCustomer(ctx, customerName)
	if !customer.Success {
		return fortnoxdomain.ExportResult{Success: false, Error: customer.Error}
	}

	invoice := s.ConvertItems(items, customer.CustomerNumber, domain.DateOnly(s.now()))
	created := s.CreateInvoice(ctx, invoice)
	if !created.Success {
		return fortnoxdomain.ExportResult{Success: false, CustomerNumber: customer.CustomerNumber, Error: created.Error}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"document_number": created.DocumentNumber,
		"customer_number": customer.CustomerNumber,
		"items":           len(items),
	}).Info("fortnox: fatura exportada")

	return fortnoxdomain.ExportResult{
		Success:        true,
		DocumentNumber: created.DocumentNumber,
		CustomerNumber: customer.CustomerNumber,
		ItemCount:      len(items),
	}
}

package recording

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/vfg2006/consultant-dashboard-api/pkg/finance"
	"github.com/vfg2006/consultant-dashboard-api/pkg/utils"
)

func (s *Service) ListInvoiceItems(userID int, filters domain.InvoiceItemFilters) ([]domain.InvoiceItem, error) {
	for _, status := range filters.Status {
		if !status.IsValid() {
			return nil, invalid(resourceInvoiceItem, "status inválido: "+string(status))
		}
	}

	items, err := s.itemRepo.List(userID, filters)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar itens de fatura")
		return nil, dbError(resourceInvoiceItem, "", err)
	}

	if items == nil {
		return []domain.InvoiceItem{}, nil
	}
	return items, nil
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// ComputeTotal calcula o valor da linha: horas x taxa quando há horas, senão o valor fixo.
// Sem taxa informada, usa a taxa do projeto.
func ComputeTotal(hours, rate, fixed, projectRate *float64) (total float64, appliedRate *float64, ok bool) {
	if hours != nil && *hours > 0 {
		if rate == nil {
			rate = projectRate
		}
		if rate == nil {
			return 0, nil, false
		}

		amount := decimal.NewFromFloat(*hours).Mul(decimal.NewFromFloat(*rate)).Round(2)
		return amount.InexactFloat64(), rate, true
	}

	if fixed != nil {
		return decimal.NewFromFloat(*fixed).Round(2).InexactFloat64(), rate, true
	}

	return 0, nil, false
}

// applyInvoiceItemRequest valida referências e datas e recalcula o total da linha
func (s *Service) applyInvoiceItemRequest(userID int, item *domain.InvoiceItem, req *domain.InvoiceItemRequest) error {
	invoiceDate, err := utils.ParseDate(req.InvoiceDate)
	if err != nil {
		return invalid(resourceInvoiceItem, err.Error())
	}

	dueDate := finance.PaymentDate(*invoiceDate, s.paymentTermsDays)
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, err := utils.ParseDate(*req.DueDate)
		if err != nil {
			return invalid(resourceInvoiceItem, err.Error())
		}
		dueDate = *parsed
	}
	if dueDate.Before(*invoiceDate) {
		return invalid(resourceInvoiceItem, "due_date não pode ser anterior a invoice_date")
	}

	status := domain.InvoiceStatusDraft
	if req.Status != nil {
		status = *req.Status
	}
	if !status.IsValid() {
		return invalid(resourceInvoiceItem, "status inválido: "+string(status))
	}

	clientID := nonEmpty(req.ClientID)
	if clientID != nil {
		if err := s.ensureClient(userID, *clientID); err != nil {
			return err
		}
	}

	var projectRate *float64
	projectID := nonEmpty(req.ProjectID)
	if projectID != nil {
		project, err := s.projectRepo.GetByID(userID, *projectID)
		if err != nil {
			return dbError(resourceProject, *projectID, err)
		}
		if project == nil {
			return unknownReference(resourceProject, *projectID)
		}
		projectRate = project.HourlyRate
	}

	total, rate, ok := ComputeTotal(req.Hours, req.HourlyRate, req.FixedAmount, projectRate)
	if !ok {
		return invalid(resourceInvoiceItem, "informe horas com taxa horária ou um valor fixo")
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	item.ClientID = clientID
	item.ProjectID = projectID
	item.Description = strings.TrimSpace(req.Description)
	item.Hours = req.Hours
	item.HourlyRate = rate
	item.FixedAmount = req.FixedAmount
	item.TotalAmount = total
	item.Currency = currency
	item.InvoiceDate = *invoiceDate
	item.DueDate = &dueDate
	item.Status = status
	item.Notes = req.Notes

	return nil
}

func (s *Service) CreateInvoiceItem(userID int, req *domain.InvoiceItemRequest) (*domain.InvoiceItem, error) {
	if err := s.validateRequest(resourceInvoiceItem, req); err != nil {
		return nil, err
	}

	item := &domain.InvoiceItem{UserID: userID}
	if err := s.applyInvoiceItemRequest(userID, item, req); err != nil {
		return nil, err
	}

	id, err := s.generateID(resourceInvoiceItem)
	if err != nil {
		return nil, err
	}
	item.ID = id

	if err := s.itemRepo.Create(item); err != nil {
		logrus.WithError(err).Error("Erro ao criar item de fatura")
		return nil, dbError(resourceInvoiceItem, id, err)
	}

	return item, nil
}

func (s *Service) UpdateInvoiceItem(userID int, itemID string, req *domain.InvoiceItemRequest) (*domain.InvoiceItem, error) {
	if err := s.validateRequest(resourceInvoiceItem, req); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(userID, itemID)
	if err != nil {
		return nil, dbError(resourceInvoiceItem, itemID, err)
	}
	if item == nil {
		return nil, notFound(resourceInvoiceItem, itemID)
	}

	if err := s.applyInvoiceItemRequest(userID, item, req); err != nil {
		return nil, err
	}

	found, err := s.itemRepo.Update(item)
	if err != nil {
		return nil, dbError(resourceInvoiceItem, itemID, err)
	}
	if !found {
		return nil, notFound(resourceInvoiceItem, itemID)
	}

	return item, nil
}

func (s *Service) DeleteInvoiceItem(userID int, itemID string) error {
	found, err := s.itemRepo.Delete(userID, itemID)
	if err != nil {
		return dbError(resourceInvoiceItem, itemID, err)
	}
	if !found {
		return notFound(resourceInvoiceItem, itemID)
	}
	return nil
}

package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/consultant-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/vfg2006/consultant-dashboard-api/pkg/log"
	"github.com/vfg2006/consultant-dashboard-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

var ErrReportNotFound = errors.New("relatório mensal não encontrado")

// Reporter expõe os relatórios analíticos de um usuário
type Reporter interface {
	// RevenueReport calcula as métricas de faturamento do período
	RevenueReport(ctx context.Context, userID int, rng domain.DateRange) (*domain.RevenueMetrics, error)

	// ClientHealthReport calcula a saúde dos clientes no período
	ClientHealthReport(ctx context.Context, userID int, rng domain.DateRange) (*domain.ClientHealthReport, error)

	// CashFlowReport monta o fluxo de caixa dos últimos months meses a partir do saldo informado
	CashFlowReport(ctx context.Context, userID int, months int, balance float64) (*domain.CashFlowReport, error)

	// MonthlyReports lista os snapshots mensais persistidos
	MonthlyReports(userID int) ([]*domain.MonthlyRevenueReport, error)

	// MonthlyReport retorna o snapshot de um período mm-yyyy
	MonthlyReport(userID int, period string) (*domain.MonthlyRevenueReport, error)

	// ComputeMonthlyRevenue recalcula e persiste o snapshot do mês de month
	ComputeMonthlyRevenue(ctx context.Context, userID int, month time.Time) (*domain.MonthlyRevenueReport, error)
}

type Service struct {
	clientRepo  repository.ClientRepository
	projectRepo repository.ProjectRepository
	itemRepo    repository.InvoiceItemRepository
	entryRepo   repository.TimeEntryRepository
	expenseRepo repository.ExpenseRepository
	monthlyRepo repository.MonthlyRevenueReportRepository
	policy      HealthPolicy
	now         func() time.Time
}

func NewService(
	clientRepo repository.ClientRepository,
	projectRepo repository.ProjectRepository,
	itemRepo repository.InvoiceItemRepository,
	entryRepo repository.TimeEntryRepository,
	expenseRepo repository.ExpenseRepository,
	monthlyRepo repository.MonthlyRevenueReportRepository,
	policy HealthPolicy,
) Reporter {
	return &Service{
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
		itemRepo:    itemRepo,
		entryRepo:   entryRepo,
		expenseRepo: expenseRepo,
		monthlyRepo: monthlyRepo,
		policy:      policy,
		now:         time.Now,
	}
}

// datasetQuery indica quais coleções carregar e com qual filtro de período.
// Um período nil carrega todo o histórico do usuário.
type datasetQuery struct {
	items        bool
	itemRange    *domain.DateRange
	entries      bool
	entryRange   *domain.DateRange
	expenses     bool
	expenseRange *domain.DateRange
	relations    bool
}

// loadDataset busca as coleções em paralelo. O primeiro erro cancela as demais buscas.
func (s *Service) loadDataset(ctx context.Context, userID int, rng domain.DateRange, q datasetQuery) (Dataset, error) {
	ds := Dataset{Range: rng, Now: s.now()}
	g, gctx := errgroup.WithContext(ctx)

	if q.items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			items, err := s.itemRepo.List(userID, domain.InvoiceItemFilters{Range: q.itemRange})
			if err != nil {
				return fmt.Errorf("erro ao buscar itens de fatura: %w", err)
			}
			ds.Items = items
			return nil
		})
	}

	if q.entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries, err := s.entryRepo.ListByUser(userID, q.entryRange)
			if err != nil {
				return fmt.Errorf("erro ao buscar lançamentos de horas: %w", err)
			}
			ds.Entries = entries
			return nil
		})
	}

	if q.expenses {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			expenses, err := s.expenseRepo.ListByUser(userID, q.expenseRange)
			if err != nil {
				return fmt.Errorf("erro ao buscar despesas: %w", err)
			}
			ds.Expenses = expenses
			return nil
		})
	}

	if q.relations {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			clients, err := s.clientRepo.ListByUser(userID)
			if err != nil {
				return fmt.Errorf("erro ao buscar clientes: %w", err)
			}
			ds.Clients = clients
			return nil
		})

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			projects, err := s.projectRepo.ListByUser(userID)
			if err != nil {
				return fmt.Errorf("erro ao buscar projetos: %w", err)
			}
			ds.Projects = projects
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Dataset{}, err
	}

	return ds, nil
}

func (s *Service) revenueDataset(ctx context.Context, userID int, rng domain.DateRange) (Dataset, error) {
	// o período anterior precisa estar carregado para o cálculo de crescimento
	window := domain.DateRange{From: rng.Previous().From, To: rng.To}
	return s.loadDataset(ctx, userID, rng, datasetQuery{items: true, itemRange: &window, relations: true})
}

func (s *Service) RevenueReport(ctx context.Context, userID int, rng domain.DateRange) (*domain.RevenueMetrics, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	ds, err := s.revenueDataset(ctx, userID, rng)
	if err != nil {
		return nil, err
	}

	// o dataset carregado nunca está em Loading, então o cálculo é direto e sem estado
	metrics := roundRevenue(ComputeRevenue(ds.Range, ds.Items, ds.Clients, ds.Projects, ds.Now))

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id": userID,
		"items":   len(ds.Items),
		"total":   metrics.TotalRevenue,
	}).Debug("relatório de faturamento calculado")

	return &metrics, nil
}

func (s *Service) ClientHealthReport(ctx context.Context, userID int, rng domain.DateRange) (*domain.ClientHealthReport, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	// a última atividade considera todo o histórico, então itens e lançamentos não são filtrados
	ds, err := s.loadDataset(ctx, userID, rng, datasetQuery{items: true, entries: true, relations: true})
	if err != nil {
		return nil, err
	}

	report := roundClientHealth(ComputeClientHealth(ds.Range, ds.Clients, ds.Projects, ds.Items, ds.Entries, ds.Now, s.policy))

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id": userID,
		"clients": report.TotalClients,
	}).Debug("relatório de saúde dos clientes calculado")

	return &report, nil
}

func (s *Service) CashFlowReport(ctx context.Context, userID int, months int, balance float64) (*domain.CashFlowReport, error) {
	if months <= 0 {
		months = DefaultCashFlowMonths
	}

	now := s.now()
	current := domain.MonthRange(now)
	window := domain.DateRange{From: current.From.AddDate(0, -(months - 1), 0), To: current.To}

	ds, err := s.loadDataset(ctx, userID, window, datasetQuery{
		items:        true,
		itemRange:    &window,
		expenses:     true,
		expenseRange: &window,
	})
	if err != nil {
		return nil, err
	}

	report := roundCashFlow(ComputeCashFlow(ds.Items, ds.Expenses, now, months, balance))
	return &report, nil
}

func (s *Service) MonthlyReports(userID int) ([]*domain.MonthlyRevenueReport, error) {
	reports, err := s.monthlyRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar relatórios mensais: %w", err)
	}

	if reports == nil {
		return []*domain.MonthlyRevenueReport{}, nil
	}
	return reports, nil
}

func (s *Service) MonthlyReport(userID int, period string) (*domain.MonthlyRevenueReport, error) {
	if _, err := utils.ParsePeriod(period); err != nil {
		return nil, err
	}

	report, err := s.monthlyRepo.GetByUserAndPeriod(userID, period)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar relatório mensal: %w", err)
	}

	if report == nil {
		return nil, ErrReportNotFound
	}
	return report, nil
}

func (s *Service) ComputeMonthlyRevenue(ctx context.Context, userID int, month time.Time) (*domain.MonthlyRevenueReport, error) {
	rng := domain.MonthRange(month)

	ds, err := s.revenueDataset(ctx, userID, rng)
	if err != nil {
		return nil, err
	}

	report := &domain.MonthlyRevenueReport{
		UserID:  userID,
		Period:  utils.FormatPeriod(rng.From),
		Metrics: roundRevenue(ComputeRevenue(ds.Range, ds.Items, ds.Clients, ds.Projects, ds.Now)),
	}

	if err := s.monthlyRepo.SaveOrUpdate(report); err != nil {
		return nil, fmt.Errorf("erro ao salvar relatório mensal %s: %w", report.Period, err)
	}

	return report, nil
}

func roundRevenue(m domain.RevenueMetrics) domain.RevenueMetrics {
	m.TotalRevenue = utils.Round2(m.TotalRevenue)
	m.PaidRevenue = utils.Round2(m.PaidRevenue)
	m.PendingRevenue = utils.Round2(m.PendingRevenue)
	m.OverdueRevenue = utils.Round2(m.OverdueRevenue)
	m.AverageInvoiceValue = utils.Round2(m.AverageInvoiceValue)
	m.CollectionRate = utils.Round2(m.CollectionRate)
	m.GrowthRate = utils.Round2(m.GrowthRate)

	shares := make([]domain.ClientRevenueShare, len(m.TopClients))
	for i, share := range m.TopClients {
		share.Revenue = utils.Round2(share.Revenue)
		share.Percentage = utils.Round2(share.Percentage)
		shares[i] = share
	}
	m.TopClients = shares

	return m
}

func roundClientHealth(r domain.ClientHealthReport) domain.ClientHealthReport {
	r.RetentionRate = utils.Round2(r.RetentionRate)
	r.AverageProjectValue = utils.Round2(r.AverageProjectValue)

	rows := make([]domain.ClientPerformance, len(r.Clients))
	for i, perf := range r.Clients {
		perf.Revenue = utils.Round2(perf.Revenue)
		perf.Hours = utils.Round2(perf.Hours)
		perf.AverageProjectValue = utils.Round2(perf.AverageProjectValue)
		rows[i] = perf
	}
	r.Clients = rows

	return r
}

func roundCashFlow(r domain.CashFlowReport) domain.CashFlowReport {
	for i := range r.Months {
		r.Months[i].Income = utils.Round2(r.Months[i].Income)
		r.Months[i].Expenses = utils.Round2(r.Months[i].Expenses)
		r.Months[i].Net = utils.Round2(r.Months[i].Net)
	}
	for i := range r.ProjectedBalances {
		r.ProjectedBalances[i] = utils.Round2(r.ProjectedBalances[i])
	}

	r.CurrentBalance = utils.Round2(r.CurrentBalance)
	r.BurnRate = utils.Round2(r.BurnRate)
	r.NetBurn = utils.Round2(r.NetBurn)
	r.RevenueGrowth = utils.Round2(r.RevenueGrowth)
	if r.RunwayMonths != nil {
		runway := utils.Round2(*r.RunwayMonths)
		r.RunwayMonths = &runway
	}

	return r
}

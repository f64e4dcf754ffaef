package reporting

import (
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
)

// MaxTopClients limita a distribuição de receita exibida por cliente
const MaxTopClients = 10

type revenueTotals struct {
	total   float64
	paid    float64
	pending float64
	overdue float64
	count   int
}

func sumRevenue(rng domain.DateRange, items []domain.InvoiceItem, now time.Time) (revenueTotals, []domain.InvoiceItem) {
	var totals revenueTotals
	inRange := make([]domain.InvoiceItem, 0, len(items))

	for _, item := range items {
		if !rng.Contains(item.InvoiceDate) {
			continue
		}

		inRange = append(inRange, item)
		totals.total += item.TotalAmount
		totals.count++

		switch item.Status {
		case domain.InvoiceStatusPaid:
			totals.paid += item.TotalAmount
		case domain.InvoiceStatusSent:
			totals.pending += item.TotalAmount
		}

		if item.IsOverdue(now) {
			totals.overdue += item.TotalAmount
		}
	}

	return totals, inRange
}

// ComputeRevenue calcula as métricas de faturamento do período, o crescimento contra o período anterior
// de mesma duração e a distribuição de receita por cliente
func ComputeRevenue(rng domain.DateRange, items []domain.InvoiceItem, clients []domain.Client, projects []domain.Project, now time.Time) domain.RevenueMetrics {
	current, inRange := sumRevenue(rng, items, now)
	previous, _ := sumRevenue(rng.Previous(), items, now)

	metrics := domain.RevenueMetrics{
		TotalRevenue:        current.total,
		PaidRevenue:         current.paid,
		PendingRevenue:      current.pending,
		OverdueRevenue:      current.overdue,
		InvoiceCount:        current.count,
		AverageInvoiceValue: safeDiv(current.total, float64(current.count)),
		CollectionRate:      percentage(current.paid, current.total),
	}

	if previous.total != 0 {
		metrics.GrowthRate = (current.total - previous.total) / previous.total * 100
	}

	shares := revenueByClient(inRange, newClientResolver(clients, projects), current.total)
	if len(shares) > MaxTopClients {
		metrics.RemainingClients = len(shares) - MaxTopClients
		shares = shares[:MaxTopClients]
	}
	metrics.TopClients = shares

	return metrics
}

func revenueByClient(items []domain.InvoiceItem, resolver clientResolver, total float64) []domain.ClientRevenueShare {
	index := make(map[string]int)
	shares := make([]domain.ClientRevenueShare, 0)

	for _, item := range items {
		id, name := domain.UnknownClientID, domain.UnknownClientName
		if client, ok := resolver.forItem(item); ok {
			id, name = client.ID, client.Name
		}

		pos, ok := index[id]
		if !ok {
			pos = len(shares)
			index[id] = pos
			shares = append(shares, domain.ClientRevenueShare{ClientID: id, ClientName: name})
		}
		shares[pos].Revenue += item.TotalAmount
	}

	for i := range shares {
		shares[i].Percentage = percentage(shares[i].Revenue, total)
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Revenue > shares[j].Revenue
	})

	return shares
}

// RevenueAggregator mantém o último snapshot calculado. Enquanto o dataset está carregando,
// o snapshot anterior é devolvido sem recálculo.
type RevenueAggregator struct {
	mu       sync.Mutex
	snapshot domain.RevenueMetrics
}

func NewRevenueAggregator() *RevenueAggregator {
	return &RevenueAggregator{}
}

func (a *RevenueAggregator) Recompute(ds Dataset) domain.RevenueMetrics {
	a.mu.Lock()
	defer a.mu.Unlock()

	if ds.Loading {
		return a.snapshot
	}

	a.snapshot = ComputeRevenue(ds.Range, ds.Items, ds.Clients, ds.Projects, ds.Now)
	return a.snapshot
}

func (a *RevenueAggregator) Snapshot() domain.RevenueMetrics {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshot
}

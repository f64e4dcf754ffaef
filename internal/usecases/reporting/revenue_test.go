package reporting

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func invoice(total float64, status domain.InvoiceStatus, date time.Time) domain.InvoiceItem {
	return domain.InvoiceItem{TotalAmount: total, Status: status, InvoiceDate: date}
}

func TestComputeRevenue(t *testing.T) {
	now := day(2024, 3, 20)
	march := domain.NewDateRange(day(2024, 3, 1), day(2024, 3, 31))

	t.Run("linhas pagas e vencidas no período", func(t *testing.T) {
		overdue := invoice(500, domain.InvoiceStatusSent, day(2024, 3, 5))
		overdue.DueDate = timePtr(day(2024, 3, 10))

		metrics := ComputeRevenue(march, []domain.InvoiceItem{
			invoice(1000, domain.InvoiceStatusPaid, day(2024, 3, 2)),
			overdue,
		}, nil, nil, now)

		assert.Equal(t, 1500.0, metrics.TotalRevenue)
		assert.Equal(t, 1000.0, metrics.PaidRevenue)
		assert.Equal(t, 500.0, metrics.PendingRevenue)
		assert.Equal(t, 500.0, metrics.OverdueRevenue)
		assert.Equal(t, 750.0, metrics.AverageInvoiceValue)
		assert.InDelta(t, 66.67, metrics.CollectionRate, 0.01)
		assert.Equal(t, 2, metrics.InvoiceCount)
	})

	t.Run("extremidades do período são incluídas", func(t *testing.T) {
		metrics := ComputeRevenue(march, []domain.InvoiceItem{
			invoice(100, domain.InvoiceStatusDraft, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
			invoice(100, domain.InvoiceStatusDraft, time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC)),
			invoice(100, domain.InvoiceStatusDraft, day(2024, 4, 1)),
		}, nil, nil, now)

		assert.Equal(t, 200.0, metrics.TotalRevenue)
		assert.Equal(t, 0.0, metrics.CollectionRate)
	})

	t.Run("sem linhas não divide por zero", func(t *testing.T) {
		metrics := ComputeRevenue(march, nil, nil, nil, now)

		assert.Zero(t, metrics.TotalRevenue)
		assert.Zero(t, metrics.AverageInvoiceValue)
		assert.Zero(t, metrics.CollectionRate)
		assert.Zero(t, metrics.GrowthRate)
		assert.Empty(t, metrics.TopClients)
	})

	t.Run("crescimento zero quando período anterior não tem receita", func(t *testing.T) {
		metrics := ComputeRevenue(march, []domain.InvoiceItem{
			invoice(800, domain.InvoiceStatusPaid, day(2024, 3, 15)),
		}, nil, nil, now)

		assert.Zero(t, metrics.GrowthRate)
	})

	t.Run("crescimento contra período anterior de mesma duração", func(t *testing.T) {
		rng := domain.NewDateRange(day(2024, 3, 11), day(2024, 3, 20))
		metrics := ComputeRevenue(rng, []domain.InvoiceItem{
			invoice(150, domain.InvoiceStatusPaid, day(2024, 3, 15)),
			invoice(100, domain.InvoiceStatusPaid, day(2024, 3, 5)),
		}, nil, nil, now)

		assert.InDelta(t, 50.0, metrics.GrowthRate, 0.0001)
	})

	t.Run("status fora de pago e enviado entra apenas no total", func(t *testing.T) {
		metrics := ComputeRevenue(march, []domain.InvoiceItem{
			invoice(300, domain.InvoiceStatusPaid, day(2024, 3, 2)),
			invoice(200, domain.InvoiceStatusSent, day(2024, 3, 3)),
			invoice(100, domain.InvoiceStatusDraft, day(2024, 3, 4)),
		}, nil, nil, now)

		assert.Equal(t, metrics.TotalRevenue, metrics.PaidRevenue+metrics.PendingRevenue+100)
		assert.Zero(t, metrics.OverdueRevenue)
	})
}

func TestComputeRevenue_ClientDistribution(t *testing.T) {
	now := day(2024, 3, 20)
	march := domain.NewDateRange(day(2024, 3, 1), day(2024, 3, 31))

	clients := []domain.Client{{ID: "c1", Name: "Acme AB"}, {ID: "c2", Name: "Beta AB"}}
	projects := []domain.Project{{ID: "p1", ClientID: "c1"}}

	viaProject := invoice(600, domain.InvoiceStatusPaid, day(2024, 3, 2))
	viaProject.ProjectID = strPtr("p1")

	direct := invoice(300, domain.InvoiceStatusPaid, day(2024, 3, 3))
	direct.ClientID = strPtr("c2")

	orphan := invoice(100, domain.InvoiceStatusSent, day(2024, 3, 4))
	orphan.ProjectID = strPtr("missing")

	metrics := ComputeRevenue(march, []domain.InvoiceItem{orphan, direct, viaProject}, clients, projects, now)

	require.Len(t, metrics.TopClients, 3)
	assert.Equal(t, "c1", metrics.TopClients[0].ClientID)
	assert.Equal(t, "Acme AB", metrics.TopClients[0].ClientName)
	assert.Equal(t, 600.0, metrics.TopClients[0].Revenue)
	assert.InDelta(t, 60.0, metrics.TopClients[0].Percentage, 0.0001)
	assert.Equal(t, "c2", metrics.TopClients[1].ClientID)
	assert.InDelta(t, 30.0, metrics.TopClients[1].Percentage, 0.0001)
	assert.Equal(t, domain.UnknownClientID, metrics.TopClients[2].ClientID)
	assert.Equal(t, domain.UnknownClientName, metrics.TopClients[2].ClientName)

	var sum float64
	for _, share := range metrics.TopClients {
		sum += share.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.0001)
	assert.Zero(t, metrics.RemainingClients)
}

func TestComputeRevenue_TopClientsCap(t *testing.T) {
	now := day(2024, 3, 20)
	march := domain.NewDateRange(day(2024, 3, 1), day(2024, 3, 31))

	var clients []domain.Client
	var items []domain.InvoiceItem
	for i := 0; i < 13; i++ {
		id := fmt.Sprintf("c%02d", i)
		clients = append(clients, domain.Client{ID: id, Name: id})

		item := invoice(float64(100+i), domain.InvoiceStatusPaid, day(2024, 3, 10))
		item.ClientID = strPtr(id)
		items = append(items, item)
	}

	metrics := ComputeRevenue(march, items, clients, nil, now)

	require.Len(t, metrics.TopClients, MaxTopClients)
	assert.Equal(t, 3, metrics.RemainingClients)
	assert.Equal(t, "c12", metrics.TopClients[0].ClientID)
	assert.Equal(t, "c03", metrics.TopClients[MaxTopClients-1].ClientID)
}

func TestRevenueAggregator_Recompute(t *testing.T) {
	march := domain.NewDateRange(day(2024, 3, 1), day(2024, 3, 31))
	agg := NewRevenueAggregator()

	first := agg.Recompute(Dataset{
		Range: march,
		Now:   day(2024, 3, 20),
		Items: []domain.InvoiceItem{invoice(400, domain.InvoiceStatusPaid, day(2024, 3, 2))},
	})
	assert.Equal(t, 400.0, first.TotalRevenue)

	loading := agg.Recompute(Dataset{
		Range:   march,
		Now:     day(2024, 3, 20),
		Items:   []domain.InvoiceItem{invoice(9999, domain.InvoiceStatusPaid, day(2024, 3, 2))},
		Loading: true,
	})
	assert.Equal(t, first, loading)
	assert.Equal(t, first, agg.Snapshot())
}

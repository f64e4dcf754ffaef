package exporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

func TestBuildRevenueWorkbook(t *testing.T) {
	rng := domain.NewDateRange(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	metrics := domain.RevenueMetrics{
		TotalRevenue:     1500,
		PaidRevenue:      1000,
		CollectionRate:   66.67,
		InvoiceCount:     2,
		RemainingClients: 1,
		TopClients: []domain.ClientRevenueShare{
			{ClientID: "c1", ClientName: "Acme AB", Revenue: 1000, Percentage: 66.67},
		},
	}

	buf, err := BuildRevenueWorkbook(rng, metrics)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{summarySheet, clientsSheet}, f.GetSheetList())

	period, err := f.GetCellValue(summarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01 - 2024-03-31", period)

	total, err := f.GetCellValue(summarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "1500", total)

	client, err := f.GetCellValue(clientsSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Acme AB", client)

	remaining, err := f.GetCellValue(clientsSheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "+1 övriga", remaining)
}

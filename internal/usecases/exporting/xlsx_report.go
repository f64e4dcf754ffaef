package exporting

import (
	"bytes"
	"fmt"
	"time"

	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Översikt"
	clientsSheet = "Kunder"
)

// BuildRevenueWorkbook monta a planilha com o resumo de faturamento e a distribuição por cliente
func BuildRevenueWorkbook(rng domain.DateRange, metrics domain.RevenueMetrics) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("erro ao renomear planilha: %w", err)
	}

	if _, err := f.NewSheet(clientsSheet); err != nil {
		return nil, fmt.Errorf("erro ao criar planilha de clientes: %w", err)
	}

	summary := [][]any{
		{"Period", fmt.Sprintf("%s - %s", rng.From.Format(time.DateOnly), rng.To.Format(time.DateOnly))},
		{"Total", metrics.TotalRevenue},
		{"Betalt", metrics.PaidRevenue},
		{"Obetalt", metrics.PendingRevenue},
		{"Förfallet", metrics.OverdueRevenue},
		{"Antal fakturarader", metrics.InvoiceCount},
		{"Snittvärde", metrics.AverageInvoiceValue},
		{"Betalningsgrad (%)", metrics.CollectionRate},
		{"Tillväxt (%)", metrics.GrowthRate},
	}

	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("erro ao escrever resumo: %w", err)
		}
	}

	header := []any{"Kund", "Intäkt", "Andel (%)"}
	if err := f.SetSheetRow(clientsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("erro ao escrever cabeçalho: %w", err)
	}

	for i, share := range metrics.TopClients {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{share.ClientName, share.Revenue, share.Percentage}
		if err := f.SetSheetRow(clientsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("erro ao escrever cliente %s: %w", share.ClientID, err)
		}
	}

	if metrics.RemainingClients > 0 {
		cell, _ := excelize.CoordinatesToCellName(1, len(metrics.TopClients)+2)
		row := []any{fmt.Sprintf("+%d övriga", metrics.RemainingClients)}
		if err := f.SetSheetRow(clientsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("erro ao escrever restante: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar xlsx: %w", err)
	}

	return buf, nil
}

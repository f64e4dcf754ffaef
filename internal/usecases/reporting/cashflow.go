package reporting

import (
	"time"

	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/vfg2006/consultant-dashboard-api/pkg/finance"
	"github.com/vfg2006/consultant-dashboard-api/pkg/utils"
)

const (
	DefaultCashFlowMonths   = 6
	DefaultProjectionMonths = 6
)

// ComputeCashFlow monta o fluxo de caixa mensal dos últimos months meses, terminando no mês de now.
// Receita considera apenas linhas pagas, pelo mês da fatura.
func ComputeCashFlow(items []domain.InvoiceItem, expenses []domain.Expense, now time.Time, months int, balance float64) domain.CashFlowReport {
	if months <= 0 {
		months = DefaultCashFlowMonths
	}

	current := domain.MonthRange(now).From
	first := current.AddDate(0, -(months - 1), 0)

	periods := make([]domain.MonthlyCashFlow, months)
	index := make(map[string]int, months)
	for i := range periods {
		period := utils.FormatPeriod(first.AddDate(0, i, 0))
		periods[i].Period = period
		index[period] = i
	}

	for _, item := range items {
		if item.Status != domain.InvoiceStatusPaid {
			continue
		}
		if i, ok := index[utils.FormatPeriod(item.InvoiceDate)]; ok {
			periods[i].Income += item.TotalAmount
		}
	}

	for _, expense := range expenses {
		if i, ok := index[utils.FormatPeriod(expense.Date)]; ok {
			periods[i].Expenses += expense.Amount
		}
	}

	income := make([]float64, months)
	costs := make([]float64, months)
	for i := range periods {
		periods[i].Net = periods[i].Income - periods[i].Expenses
		income[i] = periods[i].Income
		costs[i] = periods[i].Expenses
	}

	report := domain.CashFlowReport{
		Months:         periods,
		CurrentBalance: balance,
		BurnRate:       finance.BurnRate(costs),
		NetBurn:        finance.NetBurn(income, costs),
		RevenueGrowth:  finance.GrowthRateFromHistory(income),
	}

	if runway, finite := finance.RunwayMonths(balance, report.NetBurn); finite {
		report.RunwayMonths = &runway
	}

	report.ProjectedBalances = finance.ProjectBalance(balance, finance.MonthlyAverage(income), report.BurnRate, DefaultProjectionMonths)

	return report
}

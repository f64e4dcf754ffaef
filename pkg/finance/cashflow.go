package finance

import "time"

// PaymentDate projeta a data de pagamento somando days dias corridos
func PaymentDate(from time.Time, days int) time.Time {
	return from.AddDate(0, 0, days)
}

// MonthlyAverage é a média simples de uma série mensal, 0 quando vazia
func MonthlyAverage(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// BurnRate é a média mensal de despesas
func BurnRate(monthlyExpenses []float64) float64 {
	return MonthlyAverage(monthlyExpenses)
}

// NetBurn é a média de despesas menos a média de receitas. Positivo significa consumo de caixa.
func NetBurn(monthlyIncome, monthlyExpenses []float64) float64 {
	return MonthlyAverage(monthlyExpenses) - MonthlyAverage(monthlyIncome)
}

// RunwayMonths retorna quantos meses o saldo cobre o burn informado.
// O segundo retorno é false quando o runway é infinito (burn <= 0).
func RunwayMonths(balance, burn float64) (float64, bool) {
	if burn <= 0 {
		return 0, false
	}

	if balance <= 0 {
		return 0, true
	}

	return balance / burn, true
}

// ProjectBalance projeta o saldo ao fim de cada um dos próximos meses
func ProjectBalance(start, monthlyIncome, monthlyExpenses float64, months int) []float64 {
	if months <= 0 {
		return []float64{}
	}

	balances := make([]float64, months)
	current := start
	for i := range balances {
		current += monthlyIncome - monthlyExpenses
		balances[i] = current
	}

	return balances
}

// GrowthRateFromHistory compara a média dos 3 últimos períodos com a dos 3 primeiros, em porcentagem.
// Com menos de 6 valores as janelas se sobrepõem.
func GrowthRateFromHistory(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	window := min(3, n)
	leading := MonthlyAverage(values[:window])
	trailing := MonthlyAverage(values[n-window:])

	if leading == 0 {
		return 0
	}

	return (trailing - leading) / leading * 100
}

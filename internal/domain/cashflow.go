package domain

type MonthlyCashFlow struct {
	Period   string  `json:"period"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

type CashFlowReport struct {
	Months            []MonthlyCashFlow `json:"months"`
	CurrentBalance    float64           `json:"current_balance"`
	BurnRate          float64           `json:"burn_rate"`
	NetBurn           float64           `json:"net_burn"`
	RunwayMonths      *float64          `json:"runway_months"`
	ProjectedBalances []float64         `json:"projected_balances"`
	RevenueGrowth     float64           `json:"revenue_growth"`
}

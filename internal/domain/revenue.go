package domain

// RevenueMetrics é o retrato agregado de faturamento de um período
type RevenueMetrics struct {
	TotalRevenue        float64              `json:"total_revenue"`
	PaidRevenue         float64              `json:"paid_revenue"`
	PendingRevenue      float64              `json:"pending_revenue"`
	OverdueRevenue      float64              `json:"overdue_revenue"`
	AverageInvoiceValue float64              `json:"average_invoice_value"`
	CollectionRate      float64              `json:"collection_rate"`
	GrowthRate          float64              `json:"growth_rate"`
	InvoiceCount        int                  `json:"invoice_count"`
	TopClients          []ClientRevenueShare `json:"top_clients"`
	RemainingClients    int                  `json:"remaining_clients"`
}

type ClientRevenueShare struct {
	ClientID   string  `json:"client_id"`
	ClientName string  `json:"client_name"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

// MonthlyRevenueReport é o snapshot mensal persistido pelo scheduler
type MonthlyRevenueReport struct {
	UserID    int            `json:"user_id"`
	Period    string         `json:"period"` // Período no formato mm-yyyy
	Metrics   RevenueMetrics `json:"metrics"`
	CreatedAt string         `json:"created_at,omitempty"`
}

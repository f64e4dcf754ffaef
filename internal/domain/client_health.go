package domain

import "time"

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusAtRisk   ClientStatus = "at-risk"
	ClientStatusInactive ClientStatus = "inactive"
)

type ClientHealthReport struct {
	TotalClients        int                 `json:"total_clients"`
	ActiveClients       int                 `json:"active_clients"`
	RetentionRate       float64             `json:"retention_rate"`
	AverageProjectValue float64             `json:"average_project_value"`
	Clients             []ClientPerformance `json:"clients"`
	RemainingClients    int                 `json:"remaining_clients"`
}

type ClientPerformance struct {
	ClientID            string       `json:"client_id"`
	ClientName          string       `json:"client_name"`
	Revenue             float64      `json:"revenue"`
	Hours               float64      `json:"hours"`
	ProjectCount        int          `json:"project_count"`
	InvoiceCount        int          `json:"invoice_count"`
	AverageProjectValue float64      `json:"average_project_value"`
	LastActivity        *time.Time   `json:"last_activity"`
	DaysSinceActivity   *int         `json:"days_since_activity"`
	Status              ClientStatus `json:"status"`
	HealthScore         int          `json:"health_score"`
}

package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

const DefaultCurrency = "SEK"

// InvoiceItem é uma linha faturável (horas ou valor fixo) ligada a um projeto ou cliente
type InvoiceItem struct {
	ID          string        `json:"id"`
	UserID      int           `json:"user_id"`
	ClientID    *string       `json:"client_id"`
	ProjectID   *string       `json:"project_id"`
	Description string        `json:"description"`
	Hours       *float64      `json:"hours"`
	HourlyRate  *float64      `json:"hourly_rate"`
	FixedAmount *float64      `json:"fixed_amount"`
	TotalAmount float64       `json:"total_amount"`
	Currency    string        `json:"currency"`
	InvoiceDate time.Time     `json:"invoice_date"`
	DueDate     *time.Time    `json:"due_date"`
	Status      InvoiceStatus `json:"status"`
	Notes       *string       `json:"notes"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// IsHourly indica se a linha foi registrada como horas x taxa
func (i *InvoiceItem) IsHourly() bool {
	return i.Hours != nil && i.HourlyRate != nil && *i.Hours > 0
}

// IsOverdue considera vencidas apenas linhas enviadas com vencimento anterior a now
func (i *InvoiceItem) IsOverdue(now time.Time) bool {
	return i.Status == InvoiceStatusSent && i.DueDate != nil && i.DueDate.Before(now)
}

type InvoiceItemRequest struct {
	ClientID    *string        `json:"client_id"`
	ProjectID   *string        `json:"project_id"`
	Description string         `json:"description" validate:"required,max=500"`
	Hours       *float64       `json:"hours" validate:"omitempty,gte=0"`
	HourlyRate  *float64       `json:"hourly_rate" validate:"omitempty,gte=0"`
	FixedAmount *float64       `json:"fixed_amount" validate:"omitempty,gte=0"`
	Currency    string         `json:"currency" validate:"omitempty,len=3"`
	InvoiceDate string         `json:"invoice_date" validate:"required,datetime=2006-01-02"`
	DueDate     *string        `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Status      *InvoiceStatus `json:"status"`
	Notes       *string        `json:"notes"`
}

type InvoiceItemFilters struct {
	Range    *DateRange
	Status   []InvoiceStatus
	ItemIDs  []string
	ClientID *string
}

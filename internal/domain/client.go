package domain

import "time"

// UnknownClientID identifica o grupo de receitas sem cliente associado
const (
	UnknownClientID   = "unknown"
	UnknownClientName = "Okänd kund"
)

type Client struct {
	ID                 string    `json:"id"`
	UserID             int       `json:"user_id"`
	Name               string    `json:"name"`
	Company            *string   `json:"company"`
	ContactPerson      *string   `json:"contact_person"`
	Email              *string   `json:"email"`
	Phone              *string   `json:"phone"`
	OrganisationNumber *string   `json:"organisation_number"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type ClientRequest struct {
	Name               string  `json:"name" validate:"required,max=200"`
	Company            *string `json:"company" validate:"omitempty,max=200"`
	ContactPerson      *string `json:"contact_person" validate:"omitempty,max=200"`
	Email              *string `json:"email" validate:"omitempty,email"`
	Phone              *string `json:"phone"`
	OrganisationNumber *string `json:"organisation_number" validate:"omitempty,max=20"`
}

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusPaused    ProjectStatus = "paused"
)

type Project struct {
	ID         string        `json:"id"`
	UserID     int           `json:"user_id"`
	ClientID   string        `json:"client_id"`
	Name       string        `json:"name"`
	HourlyRate *float64      `json:"hourly_rate"`
	Budget     *float64      `json:"budget"`
	Status     ProjectStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

type ProjectRequest struct {
	ClientID   string         `json:"client_id" validate:"required"`
	Name       string         `json:"name" validate:"required,max=200"`
	HourlyRate *float64       `json:"hourly_rate" validate:"omitempty,gte=0"`
	Budget     *float64       `json:"budget" validate:"omitempty,gte=0"`
	Status     *ProjectStatus `json:"status" validate:"omitempty,oneof=active completed paused"`
}

type TimeEntry struct {
	ID          string    `json:"id"`
	UserID      int       `json:"user_id"`
	ProjectID   string    `json:"project_id"`
	Date        time.Time `json:"date"`
	Hours       float64   `json:"hours"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type TimeEntryRequest struct {
	ProjectID   string  `json:"project_id" validate:"required"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Hours       float64 `json:"hours" validate:"gt=0,lte=24"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type Expense struct {
	ID          string    `json:"id"`
	UserID      int       `json:"user_id"`
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type ExpenseRequest struct {
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Amount      float64 `json:"amount" validate:"gt=0"`
	Category    string  `json:"category" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

package domain

import "time"

type CVProfile struct {
	UserID         int             `json:"user_id"`
	PersonalInfo   CVPersonalInfo  `json:"personal_info" validate:"required"`
	Summary        string          `json:"summary" validate:"max=4000"`
	Experience     []CVExperience  `json:"experience" validate:"dive"`
	Projects       []CVProject     `json:"projects" validate:"dive"`
	Education      []CVEducation   `json:"education" validate:"dive"`
	Certifications []CVCertificate `json:"certifications" validate:"dive"`
	Courses        []CVCertificate `json:"courses" validate:"dive"`
	Skills         []string        `json:"skills"`
	Languages      []CVLanguage    `json:"languages" validate:"dive"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type CVPersonalInfo struct {
	Name     string  `json:"name" validate:"required"`
	Title    string  `json:"title"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
	LinkedIn *string `json:"linkedin" validate:"omitempty,url"`
}

type CVExperience struct {
	Company     string   `json:"company" validate:"required"`
	Role        string   `json:"role" validate:"required"`
	StartDate   string   `json:"start_date" validate:"required"`
	EndDate     *string  `json:"end_date"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

type CVProject struct {
	Name        string   `json:"name" validate:"required"`
	Client      *string  `json:"client"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

type CVEducation struct {
	School    string `json:"school" validate:"required"`
	Degree    string `json:"degree"`
	StartYear int    `json:"start_year"`
	EndYear   *int   `json:"end_year"`
}

type CVCertificate struct {
	Name   string  `json:"name" validate:"required"`
	Issuer *string `json:"issuer"`
	Year   *int    `json:"year"`
}

type CVLanguage struct {
	Language string `json:"language" validate:"required"`
	Level    string `json:"level"`
}

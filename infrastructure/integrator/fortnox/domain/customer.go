package domain

type Customer struct {
	CustomerNumber     string `json:"CustomerNumber,omitempty"`
	Name               string `json:"Name"`
	Email              string `json:"Email,omitempty"`
	OrganisationNumber string `json:"OrganisationNumber,omitempty"`
}

type CustomerEnvelope struct {
	Customer Customer `json:"Customer"`
}

type CustomersEnvelope struct {
	Customers []Customer `json:"Customers"`
}

type CompanyInformation struct {
	CompanyName        string `json:"CompanyName"`
	OrganizationNumber string `json:"OrganizationNumber,omitempty"`
}

type CompanyInformationEnvelope struct {
	CompanyInformation CompanyInformation `json:"CompanyInformation"`
}

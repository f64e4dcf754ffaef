package domain

type ConnectionResult struct {
	Success     bool   `json:"success"`
	CompanyName string `json:"company_name,omitempty"`
	Error       string `json:"error,omitempty"`
}

type CustomerResult struct {
	Success        bool   `json:"success"`
	CustomerNumber string `json:"customer_number,omitempty"`
	Error          string `json:"error,omitempty"`
}

type InvoiceResult struct {
	Success        bool   `json:"success"`
	DocumentNumber string `json:"document_number,omitempty"`
	Error          string `json:"error,omitempty"`
}

type ExportResult struct {
	Success        bool   `json:"success"`
	DocumentNumber string `json:"document_number,omitempty"`
	CustomerNumber string `json:"customer_number,omitempty"`
	ItemCount      int    `json:"item_count,omitempty"`
	Error          string `json:"error,omitempty"`
}

package domain

// Invoice segue o formato de fatura da API da Fortnox
type Invoice struct {
	CustomerNumber string       `json:"CustomerNumber"`
	InvoiceDate    string       `json:"InvoiceDate"`
	DueDate        string       `json:"DueDate"`
	InvoiceRows    []InvoiceRow `json:"InvoiceRows"`
}

type InvoiceRow struct {
	Description       string  `json:"Description"`
	DeliveredQuantity float64 `json:"DeliveredQuantity"`
	Price             float64 `json:"Price"`
	VAT               int     `json:"VAT"`
}

type InvoiceEnvelope struct {
	Invoice Invoice `json:"Invoice"`
}

type CreatedInvoice struct {
	DocumentNumber string  `json:"DocumentNumber"`
	CustomerNumber string  `json:"CustomerNumber"`
	Total          float64 `json:"Total,omitempty"`
}

type CreatedInvoiceEnvelope struct {
	Invoice CreatedInvoice `json:"Invoice"`
}

package domain

type FortnoxExportRequest struct {
	ItemIDs      []string `json:"item_ids" validate:"required,min=1,dive,required"`
	CustomerName string   `json:"customer_name" validate:"required,max=200"`
}

// TextInvoiceRequest seleciona as linhas por id ou por período de fatura
type TextInvoiceRequest struct {
	ItemIDs      []string `json:"item_ids" validate:"omitempty,dive,required"`
	From         string   `json:"from" validate:"required_without=ItemIDs,omitempty,datetime=2006-01-02"`
	To           string   `json:"to" validate:"required_with=From,omitempty,datetime=2006-01-02"`
	CustomerName string   `json:"customer_name" validate:"required,max=200"`
}

type FortnoxConfigRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
	BaseURL      string `json:"base_url" validate:"omitempty,url"`
}

// FortnoxStatus nunca expõe as credenciais completas
type FortnoxStatus struct {
	Configured      bool   `json:"configured"`
	BaseURL         string `json:"base_url,omitempty"`
	AccessTokenHint string `json:"access_token_hint,omitempty"`
}

type TextInvoiceFile struct {
	Filename string
	Content  string
}

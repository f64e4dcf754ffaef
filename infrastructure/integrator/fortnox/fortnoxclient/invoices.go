package fortnoxclient

import (
	"context"
	"net/http"

	fortnoxdomain "github.com/vfg2006/consultant-dashboard-api/infrastructure/integrator/fortnox/domain"
)

func (c *FortnoxClient) CreateInvoice(ctx context.Context, creds fortnoxdomain.Credentials, invoice fortnoxdomain.Invoice) (*fortnoxdomain.CreatedInvoice, error) {
	var response fortnoxdomain.CreatedInvoiceEnvelope
	payload := fortnoxdomain.InvoiceEnvelope{Invoice: invoice}

	if err := c.do(ctx, creds, http.MethodPost, "/invoices", payload, &response); err != nil {
		return nil, err
	}

	return &response.Invoice, nil
}

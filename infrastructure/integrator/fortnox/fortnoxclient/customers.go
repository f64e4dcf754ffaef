package fortnoxclient

import (
	"context"
	"net/http"

	fortnoxdomain "github.com/vfg2006/consultant-dashboard-api/infrastructure/integrator/fortnox/domain"
)

func (c *FortnoxClient) ListCustomers(ctx context.Context, creds fortnoxdomain.Credentials) ([]fortnoxdomain.Customer, error) {
	var response fortnoxdomain.CustomersEnvelope
	if err := c.do(ctx, creds, http.MethodGet, "/customers", nil, &response); err != nil {
		return nil, err
	}

	if response.Customers == nil {
		return []fortnoxdomain.Customer{}, nil
	}

	return response.Customers, nil
}

func (c *FortnoxClient) CreateCustomer(ctx context.Context, creds fortnoxdomain.Credentials, customer fortnoxdomain.Customer) (*fortnoxdomain.Customer, error) {
	var response fortnoxdomain.CustomerEnvelope
	payload := fortnoxdomain.CustomerEnvelope{Customer: customer}

	if err := c.do(ctx, creds, http.MethodPost, "/customers", payload, &response); err != nil {
		return nil, err
	}

	return &response.Customer, nil
}

package fortnoxclient

import (
	"context"
	"net/http"

	fortnoxdomain "github.com/vfg2006/consultant-dashboard-api/infrastructure/integrator/fortnox/domain"
)

func (c *FortnoxClient) GetCompanyInformation(ctx context.Context, creds fortnoxdomain.Credentials) (*fortnoxdomain.CompanyInformation, error) {
	var response fortnoxdomain.CompanyInformationEnvelope
	if err := c.do(ctx, creds, http.MethodGet, "/companyinformation", nil, &response); err != nil {
		return nil, err
	}

	return &response.CompanyInformation, nil
}

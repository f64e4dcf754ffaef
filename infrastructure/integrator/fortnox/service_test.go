package fortnox

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fortnoxdomain "github.com/vfg2006/consultant-dashboard-api/infrastructure/integrator/fortnox/domain"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/integrator/fortnox/fortnoxclient"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/integrator/fortnox/mocks"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 { return &f }

func fixedNow() time.Time { return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC) }

func newTestService(client fortnoxclient.Client) *FortnoxService {
	s := New(nil, client).(*FortnoxService)
	s.now = fixedNow
	return s
}

func TestExportInvoiceItems_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	s := newTestService(client)
	result := s.ExportInvoiceItems(context.Background(), []domain.InvoiceItem{{Description: "x", TotalAmount: 100}}, "Acme")

	assert.False(t, result.Success)
	assert.Equal(t, "Fortnox service not configured", result.Error)
}

func TestConfigure_DefaultsBaseURL(t *testing.T) {
	s := newTestService(nil)
	assert.False(t, s.IsConfigured())

	s.Configure(fortnoxdomain.Credentials{AccessToken: "a", ClientSecret: "b"})
	assert.True(t, s.IsConfigured())

	creds, _ := s.credentials()
	assert.Equal(t, DefaultBaseURL, creds.BaseURL)

	s.ClearConfiguration()
	assert.False(t, s.IsConfigured())
}

func TestConvertItems(t *testing.T) {
	s := newTestService(nil)
	items := []domain.InvoiceItem{
		{Description: "Utveckling", Hours: floatPtr(10), HourlyRate: floatPtr(950), TotalAmount: 9500},
		{Description: "Licens", FixedAmount: floatPtr(1200), TotalAmount: 1200},
		{Description: "Timmar utan taxa", Hours: floatPtr(3), TotalAmount: 300},
	}

	invoice := s.ConvertItems(items, "7", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "7", invoice.CustomerNumber)
	assert.Equal(t, "2024-01-15", invoice.InvoiceDate)
	assert.Equal(t, "2024-02-14", invoice.DueDate)
	require.Len(t, invoice.InvoiceRows, 3)

	assert.Equal(t, fortnoxdomain.InvoiceRow{Description: "Utveckling", DeliveredQuantity: 10, Price: 950, VAT: 25}, invoice.InvoiceRows[0])
	assert.Equal(t, fortnoxdomain.InvoiceRow{Description: "Licens", DeliveredQuantity: 1, Price: 1200, VAT: 25}, invoice.InvoiceRows[1])
	assert.Equal(t, fortnoxdomain.InvoiceRow{Description: "Timmar utan taxa", DeliveredQuantity: 1, Price: 300, VAT: 25}, invoice.InvoiceRows[2])
}

func TestFindOrCreateCustomer(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(client *mocks.MockClient)
		expectedResult fortnoxdomain.CustomerResult
	}{
		{
			name: "cliente existente com nome em caixa diferente",
			setupMock: func(client *mocks.MockClient) {
				client.EXPECT().ListCustomers(gomock.Any(), gomock.Any()).Return([]fortnoxdomain.Customer{
					{CustomerNumber: "1", Name: "Other AB"},
					{CustomerNumber: "2", Name: "ACME AB"},
				}, nil)
			},
			expectedResult: fortnoxdomain.CustomerResult{Success: true, CustomerNumber: "2"},
		},
		{
			name: "cliente inexistente é criado",
			setupMock: func(client *mocks.MockClient) {
				client.EXPECT().ListCustomers(gomock.Any(), gomock.Any()).Return([]fortnoxdomain.Customer{}, nil)
				client.EXPECT().CreateCustomer(gomock.Any(), gomock.Any(), fortnoxdomain.Customer{Name: "Acme AB"}).
					Return(&fortnoxdomain.Customer{CustomerNumber: "9", Name: "Acme AB"}, nil)
			},
			expectedResult: fortnoxdomain.CustomerResult{Success: true, CustomerNumber: "9"},
		},
		{
			name: "falha na listagem segue para criação",
			setupMock: func(client *mocks.MockClient) {
				client.EXPECT().ListCustomers(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
				client.EXPECT().CreateCustomer(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &fortnoxclient.APIError{StatusCode: 400, Body: "bad request"})
			},
			expectedResult: fortnoxdomain.CustomerResult{Success: false, Error: "Fortnox API error: 400 - bad request"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			tt.setupMock(client)

			s := newTestService(client)
			s.Configure(fortnoxdomain.Credentials{AccessToken: "a", ClientSecret: "b"})

			assert.Equal(t, tt.expectedResult, s.FindOrCreateCustomer(context.Background(), " Acme AB "))
		})
	}
}

func TestTestConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	s := newTestService(client)

	assert.Equal(t, fortnoxdomain.ConnectionResult{Success: false, Error: ErrNotConfigured}, s.TestConnection(context.Background()))

	s.Configure(fortnoxdomain.Credentials{AccessToken: "a", ClientSecret: "b"})
	client.EXPECT().GetCompanyInformation(gomock.Any(), gomock.Any()).Return(&fortnoxdomain.CompanyInformation{CompanyName: "Konsult AB"}, nil)

	assert.Equal(t, fortnoxdomain.ConnectionResult{Success: true, CompanyName: "Konsult AB"}, s.TestConnection(context.Background()))
}

func TestExportInvoiceItems_HappyPath(t *testing.T) {
	var order []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, r.Method+" "+r.URL.Path)

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/customers":
			_, _ = io.WriteString(w, `{"Customers":[]}`)
		case r.Method == http.MethodPost && r.URL.Path == "/customers":
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"Customer":{"CustomerNumber":"55","Name":"Acme AB"}}`)
		case r.Method == http.MethodPost && r.URL.Path == "/invoices":
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"Invoice":{"DocumentNumber":"2001","CustomerNumber":"55"}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	s := newTestService(fortnoxclient.NewClient(5 * time.Second))
	s.Configure(fortnoxdomain.Credentials{AccessToken: "a", ClientSecret: "b", BaseURL: server.URL})

	result := s.ExportInvoiceItems(context.Background(), []domain.InvoiceItem{
		{Description: "Konsulttimmar", Hours: floatPtr(8), HourlyRate: floatPtr(1000), TotalAmount: 8000},
	}, "Acme AB")

	assert.Equal(t, fortnoxdomain.ExportResult{Success: true, DocumentNumber: "2001", CustomerNumber: "55", ItemCount: 1}, result)
	assert.Equal(t, []string{"GET /customers", "POST /customers", "POST /invoices"}, order)
}

func TestExportInvoiceItems_InvoiceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().ListCustomers(gomock.Any(), gomock.Any()).Return([]fortnoxdomain.Customer{{CustomerNumber: "3", Name: "Acme"}}, nil)
	client.EXPECT().CreateInvoice(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, &fortnoxclient.APIError{StatusCode: 500, Body: "boom"})

	s := newTestService(client)
	s.Configure(fortnoxdomain.Credentials{AccessToken: "a", ClientSecret: "b"})

	result := s.ExportInvoiceItems(context.Background(), []domain.InvoiceItem{{Description: "x", TotalAmount: 10}}, "Acme")

	assert.False(t, result.Success)
	assert.Equal(t, "3", result.CustomerNumber)
	assert.Equal(t, "Fortnox API error: 500 - boom", result.Error)
}

func TestExportInvoiceItems_NoItems(t *testing.T) {
	s := newTestService(nil)
	s.Configure(fortnoxdomain.Credentials{AccessToken: "a", ClientSecret: "b"})

	result := s.ExportInvoiceItems(context.Background(), nil, "Acme")

	assert.Equal(t, fortnoxdomain.ExportResult{Success: false, Error: ErrNoItems}, result)
}

package fortnoxclient

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
)

func testCreds(url string) fortnoxdomain.Credentials {
	return fortnoxdomain.Credentials{AccessToken: "token", ClientSecret: "secret", BaseURL: url}
}

func TestClient_SendsAuthHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/companyinformation", r.URL.Path)
		assert.Equal(t, "token", r.Header.Get("Access-Token"))
		assert.Equal(t, "secret", r.Header.Get("Client-Secret"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		_, _ = io.WriteString(w, `{"CompanyInformation":{"CompanyName":"Konsult AB"}}`)
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	info, err := client.GetCompanyInformation(context.Background(), testCreds(server.URL))

	require.NoError(t, err)
	assert.Equal(t, "Konsult AB", info.CompanyName)
}

func TestClient_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, "invalid token")
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	_, err := client.ListCustomers(context.Background(), testCreds(server.URL))

	require.Error(t, err)
	assert.Equal(t, "Fortnox API error: 401 - invalid token", err.Error())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestClient_CreateInvoice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/invoices", r.URL.Path)

		var payload fortnoxdomain.InvoiceEnvelope
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "42", payload.Invoice.CustomerNumber)
		assert.Len(t, payload.Invoice.InvoiceRows, 1)

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"Invoice":{"DocumentNumber":"1001","CustomerNumber":"42"}}`)
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	created, err := client.CreateInvoice(context.Background(), testCreds(server.URL+"/"), fortnoxdomain.Invoice{
		CustomerNumber: "42",
		InvoiceDate:    "2024-01-15",
		DueDate:        "2024-02-14",
		InvoiceRows:    []fortnoxdomain.InvoiceRow{{Description: "Konsulttimmar", DeliveredQuantity: 10, Price: 1000, VAT: 25}},
	})

	require.NoError(t, err)
	assert.Equal(t, "1001", created.DocumentNumber)
}

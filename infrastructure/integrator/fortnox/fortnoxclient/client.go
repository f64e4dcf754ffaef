package fortnoxclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	fortnoxdomain "github.com/vfg2006/consultant-dashboard-api/infrastructure/integrator/fortnox/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetCompanyInformation(ctx context.Context, creds fortnoxdomain.Credentials) (*fortnoxdomain.CompanyInformation, error)
	ListCustomers(ctx context.Context, creds fortnoxdomain.Credentials) ([]fortnoxdomain.Customer, error)
	CreateCustomer(ctx context.Context, creds fortnoxdomain.Credentials, customer fortnoxdomain.Customer) (*fortnoxdomain.Customer, error)
	CreateInvoice(ctx context.Context, creds fortnoxdomain.Credentials, invoice fortnoxdomain.Invoice) (*fortnoxdomain.CreatedInvoice, error)
}

type FortnoxClient struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) Client {
	return &FortnoxClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// APIError é retornado quando a Fortnox responde com status fora da faixa 2xx
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Fortnox API error: %d - %s", e.StatusCode, e.Body)
}

// do executa a chamada e decodifica a resposta em out quando informado
func (c *FortnoxClient) do(ctx context.Context, creds fortnoxdomain.Credentials, method, endpoint string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
		}
		body = bytes.NewReader(data)
	}

	url := strings.TrimRight(creds.BaseURL, "/") + endpoint

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Access-Token", creds.AccessToken)
	req.Header.Set("Client-Secret", creds.ClientSecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(text)}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}

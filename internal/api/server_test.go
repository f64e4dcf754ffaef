package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fortnoxdomain "github.com/vfg2006/consultant-dashboard-api/infrastructure/integrator/fortnox/domain"
	"github.com/vfg2006/consultant-dashboard-api/internal/api/handler"
	"github.com/vfg2006/consultant-dashboard-api/internal/config"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	authmocks "github.com/vfg2006/consultant-dashboard-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/exporting"
	exportmocks "github.com/vfg2006/consultant-dashboard-api/internal/usecases/exporting/mocks"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/profiling"
	profilemocks "github.com/vfg2006/consultant-dashboard-api/internal/usecases/profiling/mocks"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/recording"
	recordmocks "github.com/vfg2006/consultant-dashboard-api/internal/usecases/recording/mocks"
	reportmocks "github.com/vfg2006/consultant-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/consultant-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	userToken  = "token-usuario"
	adminToken = "token-admin"
)

type fakeJob struct {
	triggered int
}

func (j *fakeJob) TriggerManualSync() { j.triggered++ }

func (j *fakeJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": false}
}

type apiMocks struct {
	auth     *authmocks.MockAuthenticator
	recorder *recordmocks.MockRecorder
	reporter *reportmocks.MockReporter
	exporter *exportmocks.MockExporter
	profiler *profilemocks.MockProfiler
	job      *fakeJob
}

func newTestHandler(t *testing.T, deps map[string]handler.Pinger) (http.Handler, apiMocks) {
	ctrl := gomock.NewController(t)

	m := apiMocks{
		auth:     authmocks.NewMockAuthenticator(ctrl),
		recorder: recordmocks.NewMockRecorder(ctrl),
		reporter: reportmocks.NewMockReporter(ctrl),
		exporter: exportmocks.NewMockExporter(ctrl),
		profiler: profilemocks.NewMockProfiler(ctrl),
		job:      &fakeJob{},
	}

	m.auth.EXPECT().ValidateToken(userToken).
		Return(&domain.Claims{UserID: 7, UserRoleID: domain.RoleUser}, nil).AnyTimes()
	m.auth.EXPECT().ValidateToken(adminToken).
		Return(&domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}, nil).AnyTimes()

	cfg := &config.Config{}
	h := NewHandler(cfg, Services{
		Authenticator: m.auth,
		Recorder:      m.recorder,
		Reporter:      m.reporter,
		Exporter:      m.exporter,
		Profiler:      m.profiler,
		CronJobs:      handler.CronJobServices{MonthlyRevenueSync: m.job},
		Dependencies:  deps,
	})

	return h, m
}

func do(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHealthcheck(t *testing.T) {
	t.Run("dependências disponíveis", func(t *testing.T) {
		h, _ := newTestHandler(t, map[string]handler.Pinger{
			"postgres": handler.PingFunc(func(context.Context) error { return nil }),
		})

		rec := do(h, http.MethodGet, "/healthcheck", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"postgres":"up"`)
	})

	t.Run("redis fora do ar", func(t *testing.T) {
		h, _ := newTestHandler(t, map[string]handler.Pinger{
			"redis": handler.PingFunc(func(context.Context) error { return errors.New("connection refused") }),
		})

		rec := do(h, http.MethodGet, "/healthcheck", "", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"redis":"down"`)
	})
}

func TestAuthRequired(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rec := do(h, http.MethodGet, "/v1/clients", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidToken, decodeError(t, rec).Code)
}

func TestLogin(t *testing.T) {
	h, m := newTestHandler(t, nil)

	m.auth.EXPECT().
		LoginUser(&domain.LoginRequest{Email: "ana@konsult.se", Password: "Hemligt123"}).
		Return("jwt", nil)

	rec := do(h, http.MethodPost, "/v1/login", "", `{"email":"ana@konsult.se","password":"Hemligt123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"jwt"}`, rec.Body.String())
}

func TestClients(t *testing.T) {
	t.Run("lista os clientes do usuário do token", func(t *testing.T) {
		h, m := newTestHandler(t, nil)

		m.recorder.EXPECT().ListClients(7).Return([]domain.Client{{ID: "c1", Name: "Acme"}}, nil)

		rec := do(h, http.MethodGet, "/v1/clients", userToken, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var clients []domain.Client
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &clients))
		assert.Equal(t, "Acme", clients[0].Name)
	})

	t.Run("erro de validação vira 400 com detalhes", func(t *testing.T) {
		h, m := newTestHandler(t, nil)

		m.recorder.EXPECT().CreateClient(7, gomock.Any()).
			Return(nil, recording.NewRecordError(recording.ErrInvalidInput, apiErrors.ErrInvalidRequest, "client", map[string]string{"Name": "required"}))

		rec := do(h, http.MethodPost, "/v1/clients", userToken, `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
		assert.Equal(t, map[string]any{"Name": "required"}, apiErr.Details)
	})

	t.Run("corpo inválido", func(t *testing.T) {
		h, _ := newTestHandler(t, nil)

		rec := do(h, http.MethodPost, "/v1/clients", userToken, `{`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("remoção responde 204", func(t *testing.T) {
		h, m := newTestHandler(t, nil)

		m.recorder.EXPECT().DeleteClient(7, "c1").Return(nil)

		rec := do(h, http.MethodDelete, "/v1/clients/c1", userToken, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestInvoiceItemsFilters(t *testing.T) {
	h, m := newTestHandler(t, nil)

	m.recorder.EXPECT().
		ListInvoiceItems(7, gomock.Any()).
		DoAndReturn(func(_ int, filters domain.InvoiceItemFilters) ([]domain.InvoiceItem, error) {
			require.NotNil(t, filters.Range)
			assert.Equal(t, "2024-01-01", filters.Range.From.Format("2006-01-02"))
			assert.Equal(t, []domain.InvoiceStatus{domain.InvoiceStatusSent, domain.InvoiceStatusPaid}, filters.Status)
			require.NotNil(t, filters.ClientID)
			assert.Equal(t, "c1", *filters.ClientID)
			return nil, nil
		})

	rec := do(h, http.MethodGet, "/v1/invoice-items?from=2024-01-01&to=2024-01-31&status=sent,paid&client_id=c1", userToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/v1/invoice-items?status=lost", userToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRevenueReport(t *testing.T) {
	t.Run("repassa o período informado", func(t *testing.T) {
		h, m := newTestHandler(t, nil)

		m.reporter.EXPECT().
			RevenueReport(gomock.Any(), 7, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, rng domain.DateRange) (*domain.RevenueMetrics, error) {
				assert.Equal(t, "2024-03-01", rng.From.Format("2006-01-02"))
				assert.Equal(t, "2024-03-31", rng.To.Format("2006-01-02"))
				return &domain.RevenueMetrics{TotalRevenue: 1500}, nil
			})

		rec := do(h, http.MethodGet, "/v1/reports/revenue?from=2024-03-01&to=2024-03-31", userToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_revenue":1500`)
	})

	t.Run("período invertido", func(t *testing.T) {
		h, _ := newTestHandler(t, nil)

		rec := do(h, http.MethodGet, "/v1/reports/revenue?from=2024-03-31&to=2024-03-01", userToken, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("apenas um limite", func(t *testing.T) {
		h, _ := newTestHandler(t, nil)

		rec := do(h, http.MethodGet, "/v1/reports/revenue?from=2024-03-01", userToken, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("planilha xlsx", func(t *testing.T) {
		h, m := newTestHandler(t, nil)

		m.exporter.EXPECT().RevenueWorkbook(gomock.Any(), 7, gomock.Any()).
			Return(bytes.NewBufferString("PK"), nil)

		rec := do(h, http.MethodGet, "/v1/reports/revenue/export?from=2024-03-01&to=2024-03-31", userToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "intakter_2024-03-01_2024-03-31.xlsx")
	})
}

func TestCashFlowReport(t *testing.T) {
	h, m := newTestHandler(t, nil)

	m.reporter.EXPECT().CashFlowReport(gomock.Any(), 7, 12, 50000.0).
		Return(&domain.CashFlowReport{}, nil)

	rec := do(h, http.MethodGet, "/v1/reports/cashflow?months=12&balance=50000", userToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/v1/reports/cashflow?months=0", userToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTextInvoiceExport(t *testing.T) {
	t.Run("anexo text/plain", func(t *testing.T) {
		h, m := newTestHandler(t, nil)

		m.exporter.EXPECT().
			TextInvoice(gomock.Any(), 7, domain.TextInvoiceRequest{ItemIDs: []string{"i1"}, CustomerName: "Acme AB"}).
			Return(&domain.TextInvoiceFile{Filename: "faktura-12345678.txt", Content: "FAKTURA"}, nil)

		rec := do(h, http.MethodPost, "/v1/invoice-items/export/text", userToken, `{"item_ids":["i1"],"customer_name":"Acme AB"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="faktura-12345678.txt"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "FAKTURA", rec.Body.String())
	})

	t.Run("sem itens", func(t *testing.T) {
		h, m := newTestHandler(t, nil)

		m.exporter.EXPECT().TextInvoice(gomock.Any(), 7, gomock.Any()).Return(nil, exporting.ErrNoItems)

		rec := do(h, http.MethodPost, "/v1/invoice-items/export/text", userToken, `{"item_ids":["x"],"customer_name":"Acme AB"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrResourceNotFound, decodeError(t, rec).Code)
	})
}

func TestFortnoxExport(t *testing.T) {
	tests := []struct {
		name       string
		result     fortnoxdomain.ExportResult
		wantStatus int
	}{
		{
			name:       "sucesso",
			result:     fortnoxdomain.ExportResult{Success: true, DocumentNumber: "2001", CustomerNumber: "55", ItemCount: 1},
			wantStatus: http.StatusOK,
		},
		{
			name:       "exportação em andamento",
			result:     fortnoxdomain.ExportResult{Success: false, Error: exporting.ErrExportInProgress.Error()},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "Fortnox não configurado",
			result:     fortnoxdomain.ExportResult{Success: false, Error: "Fortnox service not configured"},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, nil)

			m.exporter.EXPECT().ExportToFortnox(gomock.Any(), 7, gomock.Any()).Return(tt.result)

			rec := do(h, http.MethodPost, "/v1/integrations/fortnox/export", userToken, `{"item_ids":["i1"],"customer_name":"Acme AB"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var result fortnoxdomain.ExportResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestCV(t *testing.T) {
	t.Run("não encontrado", func(t *testing.T) {
		h, m := newTestHandler(t, nil)

		m.profiler.EXPECT().GetProfile(7).Return(nil, profiling.ErrNotFound)

		rec := do(h, http.MethodGet, "/v1/cv", userToken, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("validação", func(t *testing.T) {
		h, m := newTestHandler(t, nil)

		m.profiler.EXPECT().SaveProfile(7, gomock.Any()).
			Return(nil, &profiling.ValidationError{Fields: map[string]string{"Name": "required"}})

		rec := do(h, http.MethodPut, "/v1/cv", userToken, `{"personal_info":{}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"Name": "required"}, decodeError(t, rec).Details)
	})
}

func TestCronJobs(t *testing.T) {
	t.Run("usuário comum não pode executar", func(t *testing.T) {
		h, m := newTestHandler(t, nil)

		rec := do(h, http.MethodPost, "/v1/cron/monthly-revenue/run", userToken, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Zero(t, m.job.triggered)
	})

	t.Run("administrador executa", func(t *testing.T) {
		h, m := newTestHandler(t, nil)

		rec := do(h, http.MethodPost, "/v1/cron/monthly-revenue/run", adminToken, "")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, m.job.triggered)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		h, _ := newTestHandler(t, nil)

		rec := do(h, http.MethodPost, "/v1/cron/meta/run", adminToken, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("status", func(t *testing.T) {
		h, _ := newTestHandler(t, nil)

		rec := do(h, http.MethodGet, "/v1/cron/status", adminToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"monthly-revenue":{"sync_running":false}}`, rec.Body.String())
	})
}

func TestUnknownRoute(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rec := do(h, http.MethodGet, "/v1/unknown", userToken, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrResourceNotFound, decodeError(t, rec).Code)
}

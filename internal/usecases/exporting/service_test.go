package exporting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/integrator/fortnox"
	fortnoxdomain "github.com/vfg2006/consultant-dashboard-api/infrastructure/integrator/fortnox/domain"
	fortnoxmocks "github.com/vfg2006/consultant-dashboard-api/infrastructure/integrator/fortnox/mocks"
	kvmocks "github.com/vfg2006/consultant-dashboard-api/infrastructure/kvstore/mocks"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/consultant-dashboard-api/internal/config"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	exportmocks "github.com/vfg2006/consultant-dashboard-api/internal/usecases/exporting/mocks"
	reportmocks "github.com/vfg2006/consultant-dashboard-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

type exportMocks struct {
	store    *kvmocks.MockCredentialStore
	locker   *exportmocks.MockExportLocker
	items    *mocks.MockInvoiceItemRepository
	users    *mocks.MockUserRepository
	reporter *reportmocks.MockReporter
	adapter  *fortnoxmocks.MockIntegrator
}

func newTestExportService(t *testing.T) (*Service, exportMocks) {
	ctrl := gomock.NewController(t)

	m := exportMocks{
		store:    kvmocks.NewMockCredentialStore(ctrl),
		locker:   exportmocks.NewMockExportLocker(ctrl),
		items:    mocks.NewMockInvoiceItemRepository(ctrl),
		users:    mocks.NewMockUserRepository(ctrl),
		reporter: reportmocks.NewMockReporter(ctrl),
		adapter:  fortnoxmocks.NewMockIntegrator(ctrl),
	}

	s := NewService(&config.Config{}, m.store, m.locker, m.items, m.users, m.reporter).(*Service)
	s.newAdapter = func() fortnox.Integrator { return m.adapter }
	s.now = func() time.Time { return time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC) }

	return s, m
}

func floatPtr(f float64) *float64 { return &f }

func TestService_ExportToFortnox(t *testing.T) {
	creds := &fortnoxdomain.Credentials{AccessToken: "token", ClientSecret: "secret"}
	req := domain.FortnoxExportRequest{ItemIDs: []string{"i1"}, CustomerName: "Acme AB"}
	items := []domain.InvoiceItem{{ID: "i1", Description: "Utveckling", TotalAmount: 1000}}

	tests := []struct {
		name           string
		req            domain.FortnoxExportRequest
		setup          func(t *testing.T, m exportMocks)
		expectedResult fortnoxdomain.ExportResult
	}{
		{
			name: "exporta com credenciais do usuário e libera o lock",
			req:  req,
			setup: func(t *testing.T, m exportMocks) {
				released := false
				gomock.InOrder(
					m.store.EXPECT().LoadFortnox(gomock.Any(), 7).Return(creds, nil),
					m.locker.EXPECT().Acquire(gomock.Any(), 7).Return(func() { released = true }, nil),
				)
				m.adapter.EXPECT().Configure(*creds)
				m.items.EXPECT().List(7, domain.InvoiceItemFilters{ItemIDs: []string{"i1"}}).Return(items, nil)
				m.adapter.EXPECT().
					ExportInvoiceItems(gomock.Any(), items, "Acme AB").
					DoAndReturn(func(ctx context.Context, items []domain.InvoiceItem, customerName string) fortnoxdomain.ExportResult {
						assert.False(t, released)
						return fortnoxdomain.ExportResult{Success: true, DocumentNumber: "100", CustomerNumber: "5", ItemCount: 1}
					})
				t.Cleanup(func() { assert.True(t, released) })
			},
			expectedResult: fortnoxdomain.ExportResult{Success: true, DocumentNumber: "100", CustomerNumber: "5", ItemCount: 1},
		},
		{
			name: "sem credenciais responde não configurado sem pedir o lock",
			req:  req,
			setup: func(t *testing.T, m exportMocks) {
				m.store.EXPECT().LoadFortnox(gomock.Any(), 7).Return(nil, nil)
			},
			expectedResult: fortnoxdomain.ExportResult{Success: false, Error: fortnox.ErrNotConfigured},
		},
		{
			name: "credenciais incompletas também não pedem o lock",
			req:  req,
			setup: func(t *testing.T, m exportMocks) {
				m.store.EXPECT().LoadFortnox(gomock.Any(), 7).Return(&fortnoxdomain.Credentials{AccessToken: "token"}, nil)
			},
			expectedResult: fortnoxdomain.ExportResult{Success: false, Error: fortnox.ErrNotConfigured},
		},
		{
			name: "exportação em andamento para o mesmo usuário",
			req:  req,
			setup: func(t *testing.T, m exportMocks) {
				m.store.EXPECT().LoadFortnox(gomock.Any(), 7).Return(creds, nil)
				m.locker.EXPECT().Acquire(gomock.Any(), 7).Return(nil, ErrExportInProgress)
			},
			expectedResult: fortnoxdomain.ExportResult{Success: false, Error: "export already in progress"},
		},
		{
			name: "falha ao carregar credenciais",
			req:  req,
			setup: func(t *testing.T, m exportMocks) {
				m.store.EXPECT().LoadFortnox(gomock.Any(), 7).Return(nil, errors.New("redis fora do ar"))
			},
			expectedResult: fortnoxdomain.ExportResult{Success: false, Error: "could not load Fortnox configuration"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestExportService(t)
			tt.setup(t, m)

			assert.Equal(t, tt.expectedResult, s.ExportToFortnox(context.Background(), 7, tt.req))
		})
	}
}

func TestService_ExportToFortnox_InvalidRequest(t *testing.T) {
	s, _ := newTestExportService(t)

	result := s.ExportToFortnox(context.Background(), 7, domain.FortnoxExportRequest{CustomerName: "Acme"})

	assert.False(t, result.Success)
	assert.True(t, strings.HasPrefix(result.Error, ErrInvalidInput.Error()))
}

func TestService_TextInvoice(t *testing.T) {
	s, m := newTestExportService(t)
	company := "Konsult AB"
	items := []domain.InvoiceItem{
		{ID: "i1", Description: "Utveckling", Hours: floatPtr(10), HourlyRate: floatPtr(950), TotalAmount: 9500},
	}

	m.items.EXPECT().
		List(7, gomock.Any()).
		DoAndReturn(func(userID int, filters domain.InvoiceItemFilters) ([]domain.InvoiceItem, error) {
			require.NotNil(t, filters.Range)
			assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), filters.Range.From)
			return items, nil
		})
	m.users.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, Name: "Anna", CompanyName: &company}, nil)
	m.adapter.EXPECT().
		ConvertItems(items, "", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)).
		Return(fortnoxdomain.Invoice{
			InvoiceDate: "2024-01-15",
			DueDate:     "2024-02-14",
			InvoiceRows: []fortnoxdomain.InvoiceRow{{Description: "Utveckling", DeliveredQuantity: 10, Price: 950, VAT: 25}},
		})

	file, err := s.TextInvoice(context.Background(), 7, domain.TextInvoiceRequest{
		From:         "2024-01-01",
		To:           "2024-01-31",
		CustomerName: "Acme AB",
	})

	require.NoError(t, err)
	assert.Regexp(t, `^faktura-\d{8}\.txt$`, file.Filename)
	assert.Contains(t, file.Content, "Konsult AB")
	assert.Contains(t, file.Content, "Kund:           Acme AB")
	assert.Contains(t, stripSpaces(file.Content), "Attbetala:11875,00kr")
}

func TestService_TextInvoice_Errors(t *testing.T) {
	t.Run("sem seleção de itens", func(t *testing.T) {
		s, _ := newTestExportService(t)

		_, err := s.TextInvoice(context.Background(), 7, domain.TextInvoiceRequest{ItemIDs: []string{}, CustomerName: "Acme"})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("nenhum item encontrado", func(t *testing.T) {
		s, m := newTestExportService(t)
		m.items.EXPECT().List(7, gomock.Any()).Return([]domain.InvoiceItem{}, nil)

		_, err := s.TextInvoice(context.Background(), 7, domain.TextInvoiceRequest{ItemIDs: []string{"x"}, CustomerName: "Acme"})

		assert.ErrorIs(t, err, ErrNoItems)
	})
}

func TestService_FortnoxStatus(t *testing.T) {
	s, m := newTestExportService(t)

	m.store.EXPECT().LoadFortnox(gomock.Any(), 7).Return(nil, nil)
	status, err := s.FortnoxStatus(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, status.Configured)

	m.store.EXPECT().LoadFortnox(gomock.Any(), 7).Return(&fortnoxdomain.Credentials{
		AccessToken:  "abcdef123456",
		ClientSecret: "secret",
		BaseURL:      "https://api.fortnox.se/3",
	}, nil)
	status, err = s.FortnoxStatus(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, &domain.FortnoxStatus{Configured: true, BaseURL: "https://api.fortnox.se/3", AccessTokenHint: "****3456"}, status)
}

func TestService_SaveFortnoxConfig(t *testing.T) {
	s, m := newTestExportService(t)

	err := s.SaveFortnoxConfig(context.Background(), 7, domain.FortnoxConfigRequest{AccessToken: "a"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	m.store.EXPECT().SaveFortnox(gomock.Any(), 7, fortnoxdomain.Credentials{AccessToken: "a", ClientSecret: "b"}).Return(nil)
	assert.NoError(t, s.SaveFortnoxConfig(context.Background(), 7, domain.FortnoxConfigRequest{AccessToken: "a", ClientSecret: "b"}))
}

func TestService_TestFortnoxConnection(t *testing.T) {
	s, m := newTestExportService(t)
	creds := &fortnoxdomain.Credentials{AccessToken: "a", ClientSecret: "b"}

	m.store.EXPECT().LoadFortnox(gomock.Any(), 7).Return(creds, nil)
	m.adapter.EXPECT().Configure(*creds)
	m.adapter.EXPECT().TestConnection(gomock.Any()).Return(fortnoxdomain.ConnectionResult{Success: true, CompanyName: "Konsult AB"})

	result, err := s.TestFortnoxConnection(context.Background(), 7)

	require.NoError(t, err)
	assert.True(t, result.Success)
}

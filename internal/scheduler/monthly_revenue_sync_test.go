package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/consultant-dashboard-api/internal/config"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	reportingmocks "github.com/vfg2006/consultant-dashboard-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

var syncNow = time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC)

func newTestSyncService(t *testing.T, lookBack int) (*MonthlyRevenueSyncService, *mocks.MockUserRepository, *reportingmocks.MockReporter) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	reporter := reportingmocks.NewMockReporter(ctrl)

	cfg := &config.Config{MonthlyRevenueSync: config.MonthlyRevenueSync{
		CronSchedule:      "0 5 1 * *",
		MaxConcurrentJobs: 2,
		MonthLookBack:     lookBack,
	}}

	s := NewMonthlyRevenueSyncService(userRepo, reporter, cfg)
	s.now = func() time.Time { return syncNow }
	return s, userRepo, reporter
}

func monthStart(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyRevenueSyncService_syncMonthlyRevenue(t *testing.T) {
	tests := []struct {
		name         string
		lookBack     int
		setup        func(users *mocks.MockUserRepository, reporter *reportingmocks.MockReporter)
		wantFailures int
		wantComplete bool
	}{
		{
			name:     "calcula o mês anterior para cada usuário ativo",
			lookBack: 1,
			setup: func(users *mocks.MockUserRepository, reporter *reportingmocks.MockReporter) {
				users.EXPECT().ListActiveUsers().Return([]*domain.User{{ID: 1}, {ID: 2}}, nil)
				reporter.EXPECT().ComputeMonthlyRevenue(gomock.Any(), 1, monthStart(2024, time.February)).
					Return(&domain.MonthlyRevenueReport{UserID: 1, Period: "02-2024"}, nil)
				reporter.EXPECT().ComputeMonthlyRevenue(gomock.Any(), 2, monthStart(2024, time.February)).
					Return(&domain.MonthlyRevenueReport{UserID: 2, Period: "02-2024"}, nil)
			},
			wantComplete: true,
		},
		{
			name:     "percorre os meses configurados atravessando o ano",
			lookBack: 3,
			setup: func(users *mocks.MockUserRepository, reporter *reportingmocks.MockReporter) {
				users.EXPECT().ListActiveUsers().Return([]*domain.User{{ID: 1}}, nil)
				for _, m := range []time.Time{monthStart(2024, time.February), monthStart(2024, time.January), monthStart(2023, time.December)} {
					reporter.EXPECT().ComputeMonthlyRevenue(gomock.Any(), 1, m).
						Return(&domain.MonthlyRevenueReport{UserID: 1}, nil)
				}
			},
			wantComplete: true,
		},
		{
			name:     "falha de um usuário não interrompe os demais",
			lookBack: 1,
			setup: func(users *mocks.MockUserRepository, reporter *reportingmocks.MockReporter) {
				users.EXPECT().ListActiveUsers().Return([]*domain.User{{ID: 1}, {ID: 2}}, nil)
				reporter.EXPECT().ComputeMonthlyRevenue(gomock.Any(), 1, gomock.Any()).
					Return(nil, errors.New("banco indisponível"))
				reporter.EXPECT().ComputeMonthlyRevenue(gomock.Any(), 2, gomock.Any()).
					Return(&domain.MonthlyRevenueReport{UserID: 2}, nil)
			},
			wantFailures: 1,
			wantComplete: true,
		},
		{
			name:     "sem usuários ativos",
			lookBack: 1,
			setup: func(users *mocks.MockUserRepository, _ *reportingmocks.MockReporter) {
				users.EXPECT().ListActiveUsers().Return(nil, nil)
			},
			wantComplete: true,
		},
		{
			name:     "erro ao listar usuários",
			lookBack: 1,
			setup: func(users *mocks.MockUserRepository, _ *reportingmocks.MockReporter) {
				users.EXPECT().ListActiveUsers().Return(nil, errors.New("timeout"))
			},
			wantComplete: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, users, reporter := newTestSyncService(t, tt.lookBack)
			tt.setup(users, reporter)

			s.syncMonthlyRevenue(context.Background())

			status := s.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, syncNow, status["last_sync_started_at"])
			if tt.wantComplete {
				assert.Equal(t, syncNow, status["last_sync_completed_at"])
				assert.Equal(t, tt.wantFailures, status["last_sync_failures"])
			} else {
				assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
			}
		})
	}
}

func TestMonthlyRevenueSyncService_SkipsWhileRunning(t *testing.T) {
	s, _, _ := newTestSyncService(t, 1)
	s.syncRunning = true

	s.syncMonthlyRevenue(context.Background())
	s.TriggerManualSync()

	assert.True(t, s.GetStatus()["sync_running"].(bool))
}

func TestMonthlyRevenueSyncService_StartDisabled(t *testing.T) {
	s, _, _ := newTestSyncService(t, 1)

	assert.NoError(t, s.Start(context.Background()))
	assert.Equal(t, false, s.GetStatus()["sync_enabled"])
}

func TestNewMonthlyRevenueSyncService_Defaults(t *testing.T) {
	s := NewMonthlyRevenueSyncService(nil, nil, &config.Config{})

	assert.Equal(t, 1, s.config.MaxConcurrentJobs)
	assert.Equal(t, 1, s.config.MonthLookBack)
}

package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/consultant-dashboard-api/internal/config"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/consultant-dashboard-api/pkg/utils"
)

// MonthlyRevenueSyncConfig representa a configuração do agendador de receita mensal
type MonthlyRevenueSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
	MonthLookBack     int
}

// MonthlyRevenueSyncService grava o snapshot de receita dos meses fechados de cada usuário ativo
type MonthlyRevenueSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyRevenueSyncConfig
	userRepo            repository.UserRepository
	reporter            reporting.Reporter
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncFailures    int
}

func NewMonthlyRevenueSyncService(
	userRepo repository.UserRepository,
	reporter reporting.Reporter,
	appConfig *config.Config,
) *MonthlyRevenueSyncService {
	syncConfig := MonthlyRevenueSyncConfig{
		CronSchedule:      appConfig.MonthlyRevenueSync.CronSchedule,
		MaxConcurrentJobs: appConfig.MonthlyRevenueSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.MonthlyRevenueSync.Enabled,
		MonthLookBack:     appConfig.MonthlyRevenueSync.MonthLookBack,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}
	if syncConfig.MonthLookBack <= 0 {
		syncConfig.MonthLookBack = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"month_look_back":     syncConfig.MonthLookBack,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de receita mensal carregada")

	return &MonthlyRevenueSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		userRepo:  userRepo,
		reporter:  reporter,
		now:       time.Now,
	}
}

// Start agenda a sincronização e para o agendador quando ctx for cancelado
func (s *MonthlyRevenueSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de receita mensal desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de receita mensal")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlyRevenue(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de receita mensal: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de receita mensal")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMonthlyRevenue processa os meses anteriores ao atual para todos os usuários ativos
func (s *MonthlyRevenueSyncService) syncMonthlyRevenue(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de receita mensal já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	users, err := s.userRepo.ListActiveUsers()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar usuários para sincronização de receita mensal")
		return
	}

	if len(users) == 0 {
		logrus.Info("Nenhum usuário ativo encontrado para sincronização de receita mensal")
		s.markCompleted(0)
		return
	}

	failures := 0
	for i := 1; i <= s.config.MonthLookBack; i++ {
		month := startTime.AddDate(0, -i, 0)
		month = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
		failures += s.processMonth(ctx, users, month)
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"users":    len(users),
		"failures": failures,
	}).Info("Sincronização de receita mensal concluída")

	s.markCompleted(failures)
}

// processMonth calcula o mês para cada usuário e devolve a quantidade de falhas
func (s *MonthlyRevenueSyncService) processMonth(ctx context.Context, users []*domain.User, month time.Time) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures int
	)

	period := utils.FormatPeriod(month)

	for _, user := range users {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(u *domain.User) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			fields := logrus.Fields{"user_id": u.ID, "period": period}

			report, err := s.reporter.ComputeMonthlyRevenue(ctx, u.ID, month)
			if err != nil {
				logrus.WithError(err).WithFields(fields).Error("Erro ao calcular receita mensal")
				mu.Lock()
				failures++
				mu.Unlock()
				return
			}

			logrus.WithFields(fields).
				WithField("total_revenue", report.Metrics.TotalRevenue).
				Info("Receita mensal salva com sucesso")
		}(user)
	}

	wg.Wait()
	return failures
}

func (s *MonthlyRevenueSyncService) markCompleted(failures int) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.lastSyncCompletedAt = s.now()
	s.lastSyncFailures = failures
}

// TriggerManualSync inicia manualmente uma sincronização de receita mensal
func (s *MonthlyRevenueSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de receita mensal já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de receita mensal")
	go s.syncMonthlyRevenue(context.Background())
}

// GetStatus retorna o status atual da sincronização
func (s *MonthlyRevenueSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_failures":     s.lastSyncFailures,
	}
}

package app

import (
	"context"
	"fmt"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/kvstore"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/consultant-dashboard-api/internal/api"
	"github.com/vfg2006/consultant-dashboard-api/internal/api/handler"
	"github.com/vfg2006/consultant-dashboard-api/internal/config"
	"github.com/vfg2006/consultant-dashboard-api/internal/scheduler"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/profiling"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/consultant-dashboard-api/pkg/log"
)

// Container guarda as conexões e os serviços montados, usado pela API e pela CLI
type Container struct {
	Config *config.Config
	DB     *postgres.Connection
	Redis  *redis.Client

	Authenticator authenticating.Authenticator
	Recorder      recording.Recorder
	Reporter      reporting.Reporter
	Exporter      exporting.Exporter
	Profiler      profiling.Profiler

	MonthlyRevenueSync *scheduler.MonthlyRevenueSyncService
}

// Build conecta ao postgres e ao redis e monta todos os serviços
func Build(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg.Database.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.Database.DSN); err != nil {
			return nil, err
		}
		log.L.Info("Migrações aplicadas")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}
	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")

	rdb, err := kvstore.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	userRepo := repository.NewUserRepository(conn)
	clientRepo := repository.NewClientRepository(conn)
	projectRepo := repository.NewProjectRepository(conn)
	entryRepo := repository.NewTimeEntryRepository(conn)
	itemRepo := repository.NewInvoiceItemRepository(conn)
	expenseRepo := repository.NewExpenseRepository(conn)
	monthlyRepo := repository.NewMonthlyRevenueReportRepository(conn)
	cvRepo := repository.NewCVProfileRepository(conn)

	reporter := reporting.NewService(
		clientRepo,
		projectRepo,
		itemRepo,
		entryRepo,
		expenseRepo,
		monthlyRepo,
		reporting.HealthPolicyFromConfig(cfg.Health),
	)

	exporter := exporting.NewService(
		cfg,
		kvstore.NewCredentialStore(rdb),
		exporting.NewRedisExportLocker(redislock.New(rdb), cfg.Fortnox.ExportLockTTL),
		itemRepo,
		userRepo,
		reporter,
	)

	return &Container{
		Config:             cfg,
		DB:                 conn,
		Redis:              rdb,
		Authenticator:      authenticating.NewService(userRepo, cfg),
		Recorder:           recording.NewService(cfg, clientRepo, projectRepo, entryRepo, itemRepo, expenseRepo),
		Reporter:           reporter,
		Exporter:           exporter,
		Profiler:           profiling.NewService(cvRepo),
		MonthlyRevenueSync: scheduler.NewMonthlyRevenueSyncService(userRepo, reporter, cfg),
	}, nil
}

// APIServices expõe os serviços no formato esperado pelo servidor HTTP
func (c *Container) APIServices() api.Services {
	return api.Services{
		Authenticator: c.Authenticator,
		Recorder:      c.Recorder,
		Reporter:      c.Reporter,
		Exporter:      c.Exporter,
		Profiler:      c.Profiler,
		CronJobs:      handler.CronJobServices{MonthlyRevenueSync: c.MonthlyRevenueSync},
		Dependencies: map[string]handler.Pinger{
			"postgres": c.DB,
			"redis": handler.PingFunc(func(ctx context.Context) error {
				return c.Redis.Ping(ctx).Err()
			}),
		},
	}
}

func (c *Container) Close() {
	if err := c.Redis.Close(); err != nil {
		log.L.WithError(err).Warn("Erro ao fechar conexão com o redis")
	}
	if err := c.DB.Close(); err != nil {
		log.L.WithError(err).Warn("Erro ao fechar conexão com o PostgreSQL")
	}
}

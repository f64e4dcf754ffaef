package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultant-dashboard-api/internal/api"
	"github.com/vfg2006/consultant-dashboard-api/internal/app"
	"github.com/vfg2006/consultant-dashboard-api/internal/config"
	"github.com/vfg2006/consultant-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	container, err := app.Build(ctx, cfg)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao inicializar a aplicação")
	}
	defer container.Close()

	if err := container.MonthlyRevenueSync.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de receita mensal")
	} else {
		log.L.Info("Agendador de receita mensal iniciado")
	}

	server := api.New(cfg, container.APIServices())
	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

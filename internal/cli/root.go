package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/consultant-dashboard-api/internal/app"
	"github.com/vfg2006/consultant-dashboard-api/internal/config"
	"github.com/vfg2006/consultant-dashboard-api/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "dashctl",
	Short: "Ferramentas de manutenção do consultant-dashboard-api",
	Long: `dashctl executa tarefas operacionais fora da API: migrações do banco,
geração de faturas em texto, teste da integração com o Fortnox e
recálculo dos snapshots mensais de receita.

A configuração é lida das mesmas variáveis de ambiente (ou .env) da API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}
		log.Setup(cfg.App.LogLevel)
		cmd.SetContext(withConfig(cmd.Context(), cfg))
		return nil
	},
}

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFrom(cmd *cobra.Command) (*config.Config, error) {
	cfg, ok := cmd.Context().Value(configKey{}).(*config.Config)
	if !ok || cfg == nil {
		return nil, fmt.Errorf("configuração não carregada")
	}
	return cfg, nil
}

// buildContainer monta os serviços sem aplicar migrações automaticamente
func buildContainer(cmd *cobra.Command) (*app.Container, error) {
	cfg, err := configFrom(cmd)
	if err != nil {
		return nil, err
	}
	cfg.Database.MigrateOnStart = false

	return app.Build(cmd.Context(), cfg)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.L.WithError(err).Error("Falha ao executar comando")
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(migrateCmd, invoiceTextCmd, fortnoxTestCmd, revenueSnapshotCmd)
}

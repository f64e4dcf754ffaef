package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/consultant-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/consultant-dashboard-api/pkg/log"
	"github.com/vfg2006/consultant-dashboard-api/pkg/utils"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Aplica, desfaz ou mostra o estado das migrações do banco",
	Example:   "  dashctl migrate up\n  dashctl migrate status",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFrom(cmd)
		if err != nil {
			return err
		}

		switch args[0] {
		case "up":
			if err := postgres.RunMigrations(cfg.Database.DSN); err != nil {
				return err
			}
			log.L.Info("Migrações aplicadas")
		case "down":
			if err := postgres.RollbackMigration(cfg.Database.DSN); err != nil {
				return err
			}
			log.L.Info("Última migração desfeita")
		case "status":
			status, err := postgres.GetMigrationStatus(cfg.Database.DSN)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJSON(status))
		}

		return nil
	},
}

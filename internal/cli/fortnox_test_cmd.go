package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/consultant-dashboard-api/pkg/utils"
)

var fortnoxTestCmd = &cobra.Command{
	Use:   "fortnox-test",
	Short: "Testa a conexão com o Fortnox usando as credenciais salvas do usuário",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		userID, _ := cmd.Flags().GetInt("user")

		container, err := buildContainer(cmd)
		if err != nil {
			return err
		}
		defer container.Close()

		result, err := container.Exporter.TestFortnoxConnection(cmd.Context(), userID)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJSON(result))
		if !result.Success {
			return fmt.Errorf("conexão com o Fortnox falhou: %s", result.Error)
		}
		return nil
	},
}

func init() {
	fortnoxTestCmd.Flags().Int("user", 0, "ID do usuário")
	_ = fortnoxTestCmd.MarkFlagRequired("user")
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/consultant-dashboard-api/pkg/utils"
)

var revenueSnapshotCmd = &cobra.Command{
	Use:     "revenue-snapshot",
	Short:   "Recalcula e grava o snapshot de receita de um mês",
	Example: "  dashctl revenue-snapshot --user 3 --period 01-2024",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		userID, _ := cmd.Flags().GetInt("user")
		period, _ := cmd.Flags().GetString("period")

		month, err := utils.ParsePeriod(period)
		if err != nil {
			return err
		}

		container, err := buildContainer(cmd)
		if err != nil {
			return err
		}
		defer container.Close()

		report, err := container.Reporter.ComputeMonthlyRevenue(cmd.Context(), userID, month)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJSON(report))
		return nil
	},
}

func init() {
	revenueSnapshotCmd.Flags().Int("user", 0, "ID do usuário")
	revenueSnapshotCmd.Flags().String("period", "", "mês no formato mm-yyyy")
	_ = revenueSnapshotCmd.MarkFlagRequired("user")
	_ = revenueSnapshotCmd.MarkFlagRequired("period")
}

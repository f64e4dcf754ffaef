package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
	"github.com/vfg2006/consultant-dashboard-api/pkg/log"
)

var invoiceTextCmd = &cobra.Command{
	Use:   "invoice-text",
	Short: "Gera a fatura em texto das linhas de um usuário",
	Example: `  dashctl invoice-text --user 3 --from 2024-01-01 --to 2024-01-31 --customer "Acme AB"
  dashctl invoice-text --user 3 --item a1b2c3 --item d4e5f6 --customer "Acme AB" -o faktura.txt`,
	Args: cobra.NoArgs,
	RunE: runInvoiceText,
}

func init() {
	invoiceTextCmd.Flags().Int("user", 0, "ID do usuário dono das linhas")
	invoiceTextCmd.Flags().String("from", "", "início do período (YYYY-MM-DD)")
	invoiceTextCmd.Flags().String("to", "", "fim do período (YYYY-MM-DD)")
	invoiceTextCmd.Flags().StringSlice("item", nil, "IDs das linhas de fatura")
	invoiceTextCmd.Flags().String("customer", "", "nome do cliente na fatura")
	invoiceTextCmd.Flags().StringP("output", "o", "", "arquivo de saída (padrão: stdout)")
	_ = invoiceTextCmd.MarkFlagRequired("user")
	_ = invoiceTextCmd.MarkFlagRequired("customer")
	invoiceTextCmd.MarkFlagsRequiredTogether("from", "to")
	invoiceTextCmd.MarkFlagsOneRequired("item", "from")
}

func runInvoiceText(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	userID, _ := flags.GetInt("user")
	from, _ := flags.GetString("from")
	to, _ := flags.GetString("to")
	items, _ := flags.GetStringSlice("item")
	customer, _ := flags.GetString("customer")
	output, _ := flags.GetString("output")

	container, err := buildContainer(cmd)
	if err != nil {
		return err
	}
	defer container.Close()

	file, err := container.Exporter.TextInvoice(cmd.Context(), userID, domain.TextInvoiceRequest{
		ItemIDs:      items,
		From:         from,
		To:           to,
		CustomerName: customer,
	})
	if err != nil {
		return err
	}

	if output == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), file.Content)
		return err
	}

	if err := os.WriteFile(output, []byte(file.Content), 0o644); err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", output, err)
	}

	log.L.WithFields(log.Fields{"user_id": userID, "file": output}).Info("Fatura em texto gerada")
	return nil
}

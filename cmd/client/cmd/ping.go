package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"recordbook/internal/app/client"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Проверить соединение с сервером",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.CheckConnection(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Соединение с сервером %s установлено\n", app.Config().ServerAddress)
		return nil
	},
}

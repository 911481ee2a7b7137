package record

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"recordbook/internal/app/client"
)

func newDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete N|ID",
		Short: "Удалить запись",
		Long: `Удаляет запись после подтверждения. Флаг --yes пропускает вопрос.
Запись задается идентификатором или номером в списке.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}

			if err := loadRecords(cmd, app); err != nil {
				return finish(app, err)
			}

			ctrl := app.Controller()
			id, err := ctrl.Resolve(args[0])
			if err != nil {
				return err
			}
			prompt, err := ctrl.RequestDelete(id)
			if err != nil {
				return err
			}

			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", prompt)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if !client.Confirmed(answer) {
					ctrl.CancelDelete()
					fmt.Fprintln(cmd.OutOrStdout(), "Отменено.")
					return nil
				}
			}

			return finish(app, ctrl.ConfirmDelete(cmd.Context()))
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "удалить без подтверждения")
	return cmd
}

package record

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"recordbook/internal/app/client"
)

func newAddCmd(jsonOutput func() bool) *cobra.Command {
	return &cobra.Command{
		Use:   "add TEXT...",
		Short: "Добавить запись",
		Long: `Добавляет новую запись с указанным текстом. Время создания назначается
клиентом, идентификатор назначает сервер.`,
		Example: `  recordbook add купить молоко`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}

			ctrl := app.Controller()
			ctrl.SetInput(joinText(args))
			if err := ctrl.Submit(cmd.Context()); err != nil {
				if errors.Is(err, client.ErrEmptyInput) {
					return fmt.Errorf("текст записи не может быть пустым")
				}
				return finish(app, err)
			}

			added := ctrl.State().Records[0]
			if jsonOutput() {
				app.Toaster().Drain()
				return printJSON(cmd.OutOrStdout(), added)
			}

			if err := finish(app, nil); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\n", added.ID)
			return nil
		},
	}
}

package record

import (
	"github.com/spf13/cobra"
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update N|ID TEXT...",
		Short: "Изменить текст записи",
		Long: `Заменяет текст записи. Запись задается идентификатором или номером
в списке (как в выводе list). Время создания не меняется.`,
		Example: `  recordbook update 1 новый текст`,
		Args:    cobra.MinimumNArgs(2),
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
			if err := ctrl.StartEdit(id); err != nil {
				return err
			}
			if err := ctrl.SetEditText(joinText(args[1:])); err != nil {
				return err
			}

			return finish(app, ctrl.SaveEdit(cmd.Context()))
		},
	}
}

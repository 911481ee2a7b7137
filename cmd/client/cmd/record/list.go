package record

import (
	"github.com/spf13/cobra"

	domain "recordbook/internal/domain/record"
)

func newListCmd(jsonOutput func() bool) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"view", "ls"},
		Short:   "Показать все записи",
		Long:    `Загружает всю коллекцию и выводит записи, новые первыми.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}

			if err := loadRecords(cmd, app); err != nil {
				return finish(app, err)
			}

			records := app.Controller().State().Records
			if jsonOutput() {
				return printJSON(cmd.OutOrStdout(), domain.ListResponse{Records: records, Total: len(records)})
			}

			app.Presenter().RenderList(app.Controller().State())
			return nil
		},
	}
}

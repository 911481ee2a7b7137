// Package record содержит одноразовые команды над записями коллекции.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"recordbook/internal/app/client"
	domain "recordbook/internal/domain/record"
)

// Commands returns add, list, update and delete. jsonOutput reports the
// persistent --json flag at run time.
func Commands(jsonOutput func() bool) []*cobra.Command {
	return []*cobra.Command{
		newAddCmd(jsonOutput),
		newListCmd(jsonOutput),
		newUpdateCmd(),
		newDeleteCmd(),
	}
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	return client.FromContext(cmd.Context())
}

// loadRecords fills the local list so that rows can be referenced.
// The "loaded" toast is dropped: it is noise for a one-shot command.
func loadRecords(cmd *cobra.Command, app *client.App) error {
	if err := app.Controller().ViewRecords(cmd.Context()); err != nil {
		app.FlushToasts()
		return err
	}
	app.Toaster().Drain()
	return nil
}

func joinText(args []string) string {
	return strings.Join(args, " ")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// finish prints pending toasts and turns a store failure into a short error.
func finish(app *client.App, err error) error {
	app.FlushToasts()
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("запись не найдена на сервере: %w", err)
	}
	return err
}

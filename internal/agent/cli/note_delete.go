package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NoteDelete создаёт CLI-команду для удаления заметки по ID.
//
// Команда удаляет заметку на сервере безвозвратно.
// Удалить можно только собственную заметку: для чужой сервер ответит 403.
//
// Пример использования:
//
//	noteskeeper delete <uuid>
//
// В случае успешного выполнения команда выводит сообщение вида:
// "deleted note <id>".
func NoteDelete(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить заметку по ID",
		Long: `Удаляет заметку по ID на сервере. Удаление безвозвратно.

Пример:
  noteskeeper delete <uuid>
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: noteskeeper login")
			}

			id := args[0]

			c := NewAPIClient(app.ServerURL)
			if _, err := c.DeleteNote(app.Creds.AccessToken, id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted note %s\n", id)
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NoteList создаёт CLI-команду для просмотра всех заметок пользователя.
//
// Команда запрашивает у сервера список заметок текущего пользователя.
// Сервер возвращает заметки от новых к старым, порядок сохраняется при выводе.
//
// Пример использования:
//
//	noteskeeper list
func NoteList(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Список заметок (от новых к старым)",
		Long: `Показывает все заметки текущего пользователя.

Пример:
  noteskeeper list
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: noteskeeper login")
			}

			c := NewAPIClient(app.ServerURL)
			notes, err := c.ListNotes(app.Creds.AccessToken)
			if err != nil {
				return err
			}

			if len(notes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no notes (run: noteskeeper create)")
				return nil
			}

			for _, n := range notes {
				fmt.Fprintf(cmd.OutOrStdout(),
					"%s\t%s\t%s\n",
					n.ID, n.Title, n.UpdatedAt.Format("2006-01-02 15:04:05"),
				)
			}
			return nil
		},
	}
}

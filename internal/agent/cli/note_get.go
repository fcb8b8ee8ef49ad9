package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NoteGet создаёт CLI-команду для просмотра одной заметки по ID.
//
// Команда запрашивает заметку у сервера. Если заметка принадлежит другому
// пользователю, сервер ответит 403; если заметки нет — 404.
//
// Пример использования:
//
//	noteskeeper get <uuid>
func NoteGet(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Получить заметку по ID",
		Long: `Показывает одну заметку по ID.

Пример:
  noteskeeper get <uuid>
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: noteskeeper login")
			}

			c := NewAPIClient(app.ServerURL)
			n, err := c.GetNote(app.Creds.AccessToken, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"id=%s\ntitle=%s\ncreated_at=%s\nupdated_at=%s\n\n%s\n",
				n.ID, n.Title,
				n.CreatedAt.Format("2006-01-02 15:04:05"),
				n.UpdatedAt.Format("2006-01-02 15:04:05"),
				n.Content,
			)
			return nil
		},
	}
}

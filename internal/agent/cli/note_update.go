package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NoteUpdate создаёт CLI-команду для обновления заметки по ID.
//
// Команда полностью заменяет заголовок и текст заметки на сервере.
// Обновить можно только собственную заметку: для чужой сервер ответит 403.
//
// Обязательные флаги:
//
//	--title    — новый заголовок заметки
//	--content  — новый текст заметки
//
// Пример использования:
//
//	noteskeeper update <uuid> --title "Список покупок" --content "хлеб, молоко, сыр"
//
// В случае успешного выполнения команда выводит сообщение вида:
// "updated note <id>".
func NoteUpdate(app *App) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Обновить заметку по ID",
		Long: `Обновляет заголовок и текст заметки по ID.

Пример:
  noteskeeper update <uuid> --title "Список покупок" --content "хлеб, молоко, сыр"
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: noteskeeper login")
			}
			if title == "" || content == "" {
				return fmt.Errorf("--title and --content are required")
			}

			c := NewAPIClient(app.ServerURL)
			updated, err := c.UpdateNote(app.Creds.AccessToken, args[0], title, content)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated note %s\n", updated.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new note title")
	cmd.Flags().StringVar(&content, "content", "", "new note content")

	return cmd
}

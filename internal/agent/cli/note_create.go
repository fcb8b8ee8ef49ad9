package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NoteCreate создаёт CLI-команду для создания новой заметки на сервере.
//
// Команда отправляет на сервер заголовок и текст заметки.
// Владельцем заметки становится пользователь, которому принадлежит
// сохранённый access токен.
//
// Обязательные флаги:
//
//	--title    — заголовок заметки
//	--content  — текст заметки
//
// Примеры использования:
//
//	noteskeeper create --title "Список покупок" --content "хлеб, молоко"
//
// В случае успешного выполнения команда выводит сообщение вида:
// "created note <id>".
func NoteCreate(app *App) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать новую заметку на сервере",
		Long: `Создаёт новую заметку на сервере.

Пример:
  noteskeeper create --title "Список покупок" --content "хлеб, молоко"
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: noteskeeper login")
			}
			if title == "" || content == "" {
				return fmt.Errorf("--title and --content are required")
			}

			c := NewAPIClient(app.ServerURL)
			created, err := c.CreateNote(app.Creds.AccessToken, title, content)
			if err != nil {
				return err
			}
			if created.ID == "" {
				return fmt.Errorf("server returned empty id on create")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created note %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "note title")
	cmd.Flags().StringVar(&content, "content", "", "note content")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewProfileCmd создаёт CLI-команду для просмотра профиля текущего пользователя.
//
// Команда запрашивает у сервера профиль, ассоциированный с сохранённым
// access токеном, и выводит username, email и дату регистрации.
// Удобна для проверки, что токен ещё действителен.
//
// Пример использования:
//
//	noteskeeper profile
func NewProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Профиль текущего пользователя",
		Long: `Показывает профиль пользователя, которому принадлежит сохранённый токен.

Пример:
  noteskeeper profile
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: noteskeeper login")
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.Profile(app.Creds.AccessToken)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"id=%s\nusername=%s\nemail=%s\ncreated_at=%s\n",
				resp.User.ID, resp.User.Username, resp.User.Email,
				resp.User.CreatedAt.Format("2006-01-02 15:04:05"),
			)
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-notes-keeper/internal/agent/config"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда выполняет регистрацию пользователя на сервере notes-keeper
// с использованием username, email и пароля. Пароль не передаётся флагом
// (чтобы не утекать в shell history): по умолчанию он запрашивается
// интерактивно, для скриптов доступен флаг --password-stdin.
//
// Сервер при успешной регистрации сразу возвращает access токен,
// команда сохраняет его локально — отдельный login не нужен.
//
// Примеры использования:
//
//	noteskeeper register --username ivan --email test@example.com
//	echo "StrongPass123" | noteskeeper register --username ivan --email test@example.com --password-stdin
func NewRegisterCmd(app *App) *cobra.Command {
	var username, email string
	var passwordFromStdin bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пароль запрашивается интерактивно (скрытый ввод).
Для скриптов: --password-stdin читает пароль из STDIN.

Примеры:
  noteskeeper register --username ivan --email test@example.com
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := ReadPassword(cmd, passwordFromStdin)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			// выполняет добавление нового пользователя в бд
			resp, err := c.Register(username, email, password, password)
			if err != nil {
				return err
			}

			// сервер возвращает токен сразу — сохраняем, чтобы не логиниться отдельно
			app.Creds.AccessToken = resp.Token
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "registered %s (token saved)\n", resp.User.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username for registration")
	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN (for scripts)")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")

	return cmd
}

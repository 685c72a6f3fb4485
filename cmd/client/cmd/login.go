// cmd/client/cmd/login.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"talkerbase/cmd/client/cmd/types"
	"talkerbase/internal/app/client"
)

var rememberMe bool

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Entrar no serviço Talkerbase",
	Long: `Autenticação no servidor Talkerbase.

O token emitido é usado nas operações de escrita. Com --remember
o token fica salvo localmente para as próximas execuções.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("cliente não inicializado")
		}

		fmt.Println("=== Login ===")
		fmt.Println()

		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Senha: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("erro ao ler a senha: %w", err)
		}
		fmt.Println()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		token, err := app.Login(ctx, email, string(password))
		if err != nil {
			return fmt.Errorf("erro de autenticação: %w", err)
		}

		if rememberMe {
			if err := app.SaveToken(token); err != nil {
				return fmt.Errorf("erro ao salvar o token: %w", err)
			}
		}

		fmt.Println()
		color.Green("Login realizado com sucesso!")
		fmt.Printf("Token: %s\n", token)

		return nil
	},
}

func init() {
	loginCmd.Flags().BoolVarP(&rememberMe, "remember", "r", false, "salvar o token localmente")
}

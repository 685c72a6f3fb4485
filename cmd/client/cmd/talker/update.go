// cmd/client/cmd/talker/update.go
package talker

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"talkerbase/cmd/client/cmd/types"
	"talkerbase/internal/app/client"
)

var (
	updateName      string
	updateAge       int
	updateWatchedAt string
	updateRate      int
)

var UpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Atualizar um palestrante",
	Long: `Substitui todos os campos de uma pessoa palestrante existente.

A atualização é integral, todos os campos são enviados de novo.
Exige um token válido.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("cliente não inicializado")
		}

		if !app.HasToken() {
			return fmt.Errorf("faça login primeiro: talkerbase login --remember")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("id inválido: %w", err)
		}

		req, err := promptWriteRequest(cmd, updateName, updateAge, updateWatchedAt, updateRate)
		if err != nil {
			return err
		}

		t, err := app.UpdateTalker(cmd.Context(), id, req)
		if err != nil {
			return fmt.Errorf("erro ao atualizar o palestrante: %w", err)
		}

		fmt.Println()
		color.Green("Palestrante %d atualizado", t.ID)
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVarP(&updateName, "name", "n", "", "nome da pessoa palestrante")
	UpdateCmd.Flags().IntVar(&updateAge, "age", 0, "idade")
	UpdateCmd.Flags().StringVar(&updateWatchedAt, "watched-at", "", "data da palestra (DD/MM/AAAA)")
	UpdateCmd.Flags().IntVar(&updateRate, "rate", 0, "nota da palestra (1 a 5)")
}

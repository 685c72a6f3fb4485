// cmd/client/cmd/talker/delete.go
package talker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"talkerbase/cmd/client/cmd/types"
	"talkerbase/internal/app/client"
)

var deleteForce bool

var DeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Remover um palestrante",
	Long:  `Remove uma pessoa palestrante pelo id. Exige um token válido.`,
	Args:  cobra.ExactArgs(1),
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

		if !deleteForce {
			fmt.Printf("Remover o palestrante %d? [s/N]: ", id)
			var answer string
			_, _ = fmt.Scanln(&answer)
			if strings.ToLower(answer) != "s" {
				fmt.Println("Operação cancelada")
				return nil
			}
		}

		if err := app.DeleteTalker(cmd.Context(), id); err != nil {
			return fmt.Errorf("erro ao remover o palestrante: %w", err)
		}

		color.Green("Palestrante %d removido", id)
		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "remover sem confirmação")
}

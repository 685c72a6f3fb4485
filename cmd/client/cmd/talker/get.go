// cmd/client/cmd/talker/get.go
package talker

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"talkerbase/cmd/client/cmd/types"
	"talkerbase/internal/app/client"
	"talkerbase/internal/domain/talker"
)

var getFormat string

var GetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Consultar um palestrante",
	Long:  `Consulta uma pessoa palestrante pelo id.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("cliente não inicializado")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("id inválido: %w", err)
		}

		t, err := app.GetTalker(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("erro ao consultar o palestrante: %w", err)
		}

		switch getFormat {
		case "json":
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(t)
		default:
			return printTalkerHuman(t)
		}
	},
}

func printTalkerHuman(t *talker.Talker) error {
	fmt.Printf("ID:           %d\n", t.ID)
	fmt.Printf("Nome:         %s\n", t.Name)
	fmt.Printf("Idade:        %d\n", t.Age)
	fmt.Printf("Assistida em: %s\n", t.Talk.WatchedAt)
	fmt.Printf("Nota:         %d\n", t.Talk.Rate)
	return nil
}

func init() {
	GetCmd.Flags().StringVarP(&getFormat, "output", "o", "text", "formato de saída (text, json)")
}

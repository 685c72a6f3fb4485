// cmd/client/cmd/talker/list.go
package talker

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"talkerbase/cmd/client/cmd/types"
	"talkerbase/internal/app/client"
	"talkerbase/internal/domain/talker"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar palestrantes",
	Long:  `Lista todas as pessoas palestrantes cadastradas no servidor.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("cliente não inicializado")
		}

		talkers, err := app.ListTalkers(cmd.Context())
		if err != nil {
			return fmt.Errorf("erro ao listar palestrantes: %w", err)
		}

		switch listFormat {
		case "json":
			return printTalkersJSON(talkers)
		default:
			return printTalkersTable(talkers)
		}
	},
}

func printTalkersTable(talkers []talker.Talker) error {
	if len(talkers) == 0 {
		fmt.Println("Nenhuma pessoa palestrante cadastrada")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tNome\tIdade\tAssistida em\tNota\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t\n")

	for _, t := range talkers {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%d\t\n",
			t.ID,
			truncate(t.Name, 30),
			t.Age,
			t.Talk.WatchedAt,
			t.Talk.Rate,
		)
	}

	w.Flush()
	fmt.Printf("\nTotal: %d\n", len(talkers))
	return nil
}

func printTalkersJSON(talkers []talker.Talker) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(talkers)
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "formato de saída (table, json)")
}

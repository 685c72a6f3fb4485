// cmd/client/cmd/talker/create.go
package talker

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"talkerbase/cmd/client/cmd/types"
	"talkerbase/internal/app/client"
)

var (
	createName      string
	createAge       int
	createWatchedAt string
	createRate      int
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Cadastrar um palestrante",
	Long: `Cadastra uma nova pessoa palestrante.

Os campos podem ser passados por flags, os que faltarem são
perguntados interativamente. Exige um token válido.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("cliente não inicializado")
		}

		if !app.HasToken() {
			return fmt.Errorf("faça login primeiro: talkerbase login --remember")
		}

		req, err := promptWriteRequest(cmd, createName, createAge, createWatchedAt, createRate)
		if err != nil {
			return err
		}

		t, err := app.CreateTalker(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("erro ao cadastrar o palestrante: %w", err)
		}

		fmt.Println()
		color.Green("Palestrante '%s' cadastrado com id %d", t.Name, t.ID)
		return nil
	},
}

// promptWriteRequest monta o corpo de escrita completando os campos
// ausentes de forma interativa
func promptWriteRequest(cmd *cobra.Command, name string, age int, watchedAt string, rate int) (client.WriteRequest, error) {
	var req client.WriteRequest
	scanner := bufio.NewScanner(os.Stdin)

	if name == "" {
		fmt.Print("Nome: ")
		if scanner.Scan() {
			name = scanner.Text()
		}
	}

	if !cmd.Flags().Changed("age") {
		fmt.Print("Idade: ")
		var raw string
		_, _ = fmt.Scanln(&raw)
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("idade inválida: %w", err)
		}
		age = parsed
	}

	if watchedAt == "" {
		fmt.Print("Palestra assistida em (DD/MM/AAAA): ")
		_, _ = fmt.Scanln(&watchedAt)
	}

	if !cmd.Flags().Changed("rate") {
		fmt.Print("Nota (1 a 5): ")
		var raw string
		_, _ = fmt.Scanln(&raw)
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("nota inválida: %w", err)
		}
		rate = parsed
	}

	req.Name = name
	req.Age = age
	req.Talk.WatchedAt = watchedAt
	req.Talk.Rate = rate
	return req, nil
}

func init() {
	CreateCmd.Flags().StringVarP(&createName, "name", "n", "", "nome da pessoa palestrante")
	CreateCmd.Flags().IntVar(&createAge, "age", 0, "idade")
	CreateCmd.Flags().StringVar(&createWatchedAt, "watched-at", "", "data da palestra (DD/MM/AAAA)")
	CreateCmd.Flags().IntVar(&createRate, "rate", 0, "nota da palestra (1 a 5)")
}

package talker

import (
	"github.com/spf13/cobra"
)

// TalkerCmd - comando pai para todas as operações com palestrantes
var TalkerCmd = &cobra.Command{
	Use:   "talker",
	Short: "Gerenciar palestrantes",
	Long:  `Listagem, consulta, cadastro, atualização e remoção de pessoas palestrantes.`,
}

// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"talkerbase/cmd/client/cmd/types"
	"talkerbase/internal/app/client"
	"talkerbase/internal/app/client/config"
	"talkerbase/internal/utils/logger"
)

var (
	cfgFile   string
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	debug     bool
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "talkerbase",
	Short: "Talkerbase - cliente para o cadastro de palestrantes",
	Long: `Talkerbase é o cliente de linha de comando para o serviço de
cadastro de pessoas palestrantes.

Permite listar, consultar, cadastrar, atualizar e remover palestrantes.
As operações de escrita exigem um token obtido com o comando login.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("erro ao carregar a configuração: %w", err)
	}

	// Flags da linha de comando sobrepõem a configuração
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if debug {
		cfg.Env = "dev"
	}

	log = logger.New(cfg.Env)

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("erro ao inicializar o cliente: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))

	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		configDir := filepath.Join(home, ".talkerbase")
		viper.AddConfigPath(configDir)
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Sem arquivo de configuração, seguimos com os padrões
	}

	return config.MustLoad(), nil
}

func init() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "arquivo de configuração")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "habilitar modo de depuração")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "endereço do servidor Talkerbase")
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "localhost:3001"
	defaultLogLevel      = "info"
	defaultEnv           = "local"
	defaultConfigDir     = ".talkerbase"
	defaultTokenFile     = "token"
)

type Config struct {
	Env           string `mapstructure:"app_env"`
	ServerAddress string `mapstructure:"server_address"`
	LogLevel      string `mapstructure:"log_level"`
	ConfigDir     string `mapstructure:"config_dir"`
	TokenPath     string `mapstructure:"token_path"`
	EnableTLS     bool   `mapstructure:"enable_tls"`
}

// MustLoad carrega a configuração do cliente
func MustLoad() *Config {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Erro ao carregar o arquivo .env: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("ENABLE_TLS", false)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("Erro ao criar o diretório de configuração: %v\n", err)
	}

	tokenPath := viper.GetString("TOKEN_PATH")
	if tokenPath == "" {
		tokenPath = filepath.Join(configDir, defaultTokenFile)
	}

	return &Config{
		Env:           viper.GetString("APP_ENV"),
		ServerAddress: viper.GetString("SERVER_ADDRESS"),
		LogLevel:      viper.GetString("LOG_LEVEL"),
		ConfigDir:     configDir,
		TokenPath:     tokenPath,
		EnableTLS:     viper.GetBool("ENABLE_TLS"),
	}
}

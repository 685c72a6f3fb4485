package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DefaultPort = "3001"

	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env    string
	Server server
	Store  store
	Logger logger
}

type defaultConfig struct {
	Port        string
	StoreDriver string
	StorePath   string
	DatabaseURI string
	Migrations  string
	LogLevel    string
	Env         string
}

type server struct {
	RunAddress string `env:"PORT"`
}

type store struct {
	Driver      string `env:"STORE_DRIVER"`
	Path        string `env:"STORE_PATH"`
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	d := defaultConfig{
		Port:        viper.GetString("port"),
		StoreDriver: viper.GetString("store_driver"),
		StorePath:   viper.GetString("store_path"),
		DatabaseURI: viper.GetString("database_uri"),
		Migrations:  viper.GetString("migrations_path"),
		LogLevel:    viper.GetString("log_level"),
		Env:         viper.GetString("app_env"),
	}
	if d.Port == "" {
		d.Port = DefaultPort
	}
	if d.StoreDriver == "" {
		d.StoreDriver = DriverFile
	}
	if d.StorePath == "" {
		d.StorePath = "talker.json"
	}
	if d.Migrations == "" {
		d.Migrations = "migrations"
	}

	config := Config{
		Env: d.Env,
		Server: server{
			RunAddress: ":" + d.Port,
		},
		Store: store{
			Driver:      d.StoreDriver,
			Path:        d.StorePath,
			DatabaseURI: d.DatabaseURI,
			Migrations:  d.Migrations,
		},
		Logger: logger{LogLevel: d.LogLevel},
	}

	return &config
}

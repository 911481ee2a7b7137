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

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"

	defaultRunAddress = ":8080"
	defaultDriver     = DriverSQLite
	defaultSQLitePath = "recordbook.db"
	defaultMigrations = "migrations"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Logger Logger
}

type DB struct {
	Driver      string `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
}

type Server struct {
	RunAddress string `env:"RUN_ADDRESS" envDefault:":8080"`
}

// Logger.LogLevel пустой - уровень выбирается по окружению.
type Logger struct {
	LogLevel string `env:"LOG_LEVEL"`
}

// MustLoad читает конфигурацию сервера из .env и переменных окружения.
func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return Load(viper.New())
}

// Load builds the config from an already prepared viper instance.
func Load(v *viper.Viper) *Config {
	v.AutomaticEnv()
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", defaultRunAddress)
	v.SetDefault("storage_driver", defaultDriver)
	v.SetDefault("migrations_path", defaultMigrations)

	config := Config{
		Env: v.GetString("app_env"),
		DB: DB{
			Driver:      v.GetString("storage_driver"),
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
		},
		Server: Server{RunAddress: v.GetString("run_address")},
		Logger: Logger{LogLevel: v.GetString("log_level")},
	}

	if config.DB.Driver == DriverSQLite && config.DB.DatabaseURI == "" {
		config.DB.DatabaseURI = defaultSQLitePath
	}

	return &config
}

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"recordbook/cmd/client/cmd/record"
	"recordbook/internal/app/client"
	"recordbook/internal/app/client/config"
	"recordbook/internal/utils/logger"
)

var (
	cfgFile    string
	jsonOutput bool
	v          = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "recordbook",
	Short: "Recordbook - клиент для коллекции текстовых записей",
	Long: `Recordbook добавляет, показывает, редактирует и удаляет текстовые записи
в удаленной коллекции. Каждая команда выполняет один запрос к серверу.

Команда shell открывает интерактивный режим.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	log := logger.NewWithWriter(cfg.Env, os.Stderr)
	log.Debug("configuration loaded", "server", cfg.ServerAddress, "collection", cfg.Collection)

	app := client.New(cfg, log, cmd.OutOrStdout())
	cmd.SetContext(client.NewContext(cmd.Context(), app))
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".recordbook"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return config.Load(v)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "конфигурационный файл (по умолчанию ~/.recordbook/config.yaml)")
	flags.BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")
	flags.String("server", "", "адрес сервера, host:port")
	flags.String("collection", "", "имя коллекции")

	// флаги имеют приоритет над окружением и файлом
	_ = v.BindPFlag("SERVER_ADDRESS", flags.Lookup("server"))
	_ = v.BindPFlag("COLLECTION", flags.Lookup("collection"))

	rootCmd.AddCommand(pingCmd, shellCmd)
	rootCmd.AddCommand(record.Commands(func() bool { return jsonOutput })...)
}

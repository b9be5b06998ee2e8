package config

import (
	"fmt"
	"os"

	"go-folder-cleanup/internal/infrastructure/logger"
	"go-folder-cleanup/pkg/constants"

	"github.com/spf13/viper"
)

// Config carries the service-level knobs. The cleanup tuple itself
// (folder, keep list, interval) lives in the JSON settings file, see
// settings.go.
type Config struct {
	TelegramBotToken string
	TelegramChatID   string

	// CronSchedule switches the scheduler to cron mode when set;
	// empty means fixed-interval mode driven by the settings file.
	CronSchedule string

	HTTPPort     string
	SettingsPath string
	DatabasePath string

	// Logger config
	Logger logger.Config
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(constants.ConfigPath)
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("HTTP_PORT", "8080")
	viper.SetDefault("CRON_SCHEDULE", "")
	viper.SetDefault("SETTINGS_PATH", constants.DefaultSettingsPath)
	viper.SetDefault("DATABASE_PATH", constants.DefaultDatabasePath)

	// Logger defaults
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_DIR", constants.DefaultLogPath)
	viper.SetDefault("LOG_MAX_SIZE", 100)  // 100MB
	viper.SetDefault("LOG_MAX_BACKUPS", 5) // 5 files
	viper.SetDefault("LOG_MAX_AGE", 30)    // 30 days
	viper.SetDefault("LOG_COMPRESS", true)
	viper.SetDefault("LOG_CONSOLE", false)

	// The env file is optional; environment variables alone are a
	// complete configuration.
	if _, err := os.Stat(constants.ConfigPath); err == nil {
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{
		TelegramBotToken: viper.GetString("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   viper.GetString("TELEGRAM_CHAT_ID"),
		CronSchedule:     viper.GetString("CRON_SCHEDULE"),
		HTTPPort:         viper.GetString("HTTP_PORT"),
		SettingsPath:     viper.GetString("SETTINGS_PATH"),
		DatabasePath:     viper.GetString("DATABASE_PATH"),
		Logger: logger.Config{
			Level:      viper.GetString("LOG_LEVEL"),
			LogDir:     viper.GetString("LOG_DIR"),
			MaxSize:    viper.GetInt("LOG_MAX_SIZE"),
			MaxBackups: viper.GetInt("LOG_MAX_BACKUPS"),
			MaxAge:     viper.GetInt("LOG_MAX_AGE"),
			Compress:   viper.GetBool("LOG_COMPRESS"),
			Console:    viper.GetBool("LOG_CONSOLE"),
		},
	}

	return config, nil
}

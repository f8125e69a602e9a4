package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port         int
	LogLevel     string
	ReportFormat string
	MaxProcesses int // largest batch accepted over HTTP, 0 for no limit
}

const envPrefix = "CPU_SCHEDULER"

// Load reads configuration from path, or from ./config.yaml when path is empty.
// A missing config file is not an error; defaults and environment variables
// (CPU_SCHEDULER_PORT, CPU_SCHEDULER_LOG_LEVEL, CPU_SCHEDULER_REPORT_FORMAT,
// CPU_SCHEDULER_MAX_PROCESSES,
// optionally from a .env file) still apply.
func Load(path string) (*SchedulerConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "error")
	v.SetDefault("report.format", "text")
	v.SetDefault("max_processes", 10000)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		logrus.Debug("no config file found, using defaults")
	}

	config := &SchedulerConfig{
		Port:         v.GetInt("port"),
		LogLevel:     v.GetString("log_level"),
		ReportFormat: v.GetString("report.format"),
		MaxProcesses: v.GetInt("max_processes"),
	}
	if config.Port <= 0 || config.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", config.Port)
	}
	if config.MaxProcesses < 0 {
		return nil, fmt.Errorf("invalid max_processes %d", config.MaxProcesses)
	}
	return config, nil
}

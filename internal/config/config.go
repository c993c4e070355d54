// Package config предоставляет структуру конфигурации и функции её загрузки.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек.
// Настройки влияют только на логирование и не меняют протокол stdin/stdout.
type Config struct {
	Env       string `yaml:"env" env:"ENV" env-default:"local" validate:"oneof=local dev prod"`
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	LogOutput string `yaml:"log_output" env:"LOG_OUTPUT" env-default:"stderr" validate:"oneof=stderr discard"`
}

// Load читает конфиг из файла CONFIG_PATH, а если переменная не задана —
// из переменных окружения. Результат проверяется валидатором.
func Load() (*Config, error) {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("file: %s - does not exist", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// MustLoad загружает конфиг и завершает процесс при ошибке.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"LogLevel: %s\n"+
			"LogOutput: %s\n",
		c.Env,
		c.LogLevel,
		c.LogOutput,
	)
}

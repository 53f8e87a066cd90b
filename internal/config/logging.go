package config

import "notemark/pkg/logger"

// LoggingConfig - уровень и режим logger.
type LoggingConfig struct {
	Level string `env:"NOTEMARK_LOG_LEVEL" env-default:"info"`
	Mode  string `env:"NOTEMARK_LOG_MODE" env-default:"production"`
}

// GetEnvironment возвращает режим logger.
func (c *LoggingConfig) GetEnvironment() logger.Environment {
	return logger.ParseEnvironment(c.Mode)
}

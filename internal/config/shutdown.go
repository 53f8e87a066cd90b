package config

import "time"

// ShutdownConfig - время на корректное завершение.
type ShutdownConfig struct {
	Timeout time.Duration `env:"NOTEMARK_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

package config

import (
	"fmt"
	"time"
)

// HTTPConfig - настройки HTTP сервера.
type HTTPConfig struct {
	Host         string        `env:"NOTEMARK_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `env:"NOTEMARK_HTTP_PORT" env-default:"5000" env-description:"listen port"`
	ReadTimeout  time.Duration `env:"NOTEMARK_HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"NOTEMARK_HTTP_WRITE_TIMEOUT" env-default:"30s"`
	IdleTimeout  time.Duration `env:"NOTEMARK_HTTP_IDLE_TIMEOUT" env-default:"60s"`
	BodyLimit    int           `env:"NOTEMARK_HTTP_BODY_LIMIT" env-default:"1048576"`
	CORSOrigins  []string      `env:"NOTEMARK_HTTP_CORS_ORIGINS" env-default:"*" env-separator:","`
}

// GetAddress возвращает адрес для Listen.
func (c *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

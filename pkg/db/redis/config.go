// Package redis создает клиент go-redis и проверяет соединение.
package redis

import "time"

// Значения по умолчанию, совпадающие с env-default в конфигурации сервиса.
const (
	DefaultAddr     = "localhost:6379"
	DefaultPoolSize = 10
	DefaultTimeout  = 3 * time.Second
)

// Config описывает подключение к Redis.
type Config struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig возвращает конфигурацию по умолчанию.
func DefaultConfig() Config {
	return Config{
		Addr:         DefaultAddr,
		PoolSize:     DefaultPoolSize,
		DialTimeout:  DefaultTimeout,
		ReadTimeout:  DefaultTimeout,
		WriteTimeout: DefaultTimeout,
	}
}

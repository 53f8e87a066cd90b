package config

import (
	"net"
	"strconv"
	"time"
)

// RedisConfig - кэш принципалов. При Enabled=false сервис работает без кэша.
type RedisConfig struct {
	Enabled      bool          `env:"NOTEMARK_REDIS_ENABLED" env-default:"true"`
	Host         string        `env:"NOTEMARK_REDIS_HOST" env-default:"localhost"`
	Port         int           `env:"NOTEMARK_REDIS_PORT" env-default:"6379"`
	Password     string        `env:"NOTEMARK_REDIS_PASSWORD"`
	DB           int           `env:"NOTEMARK_REDIS_DB" env-default:"0"`
	PoolSize     int           `env:"NOTEMARK_REDIS_POOL_SIZE" env-default:"10"`
	DialTimeout  time.Duration `env:"NOTEMARK_REDIS_DIAL_TIMEOUT" env-default:"3s"`
	ReadTimeout  time.Duration `env:"NOTEMARK_REDIS_READ_TIMEOUT" env-default:"1s"`
	WriteTimeout time.Duration `env:"NOTEMARK_REDIS_WRITE_TIMEOUT" env-default:"1s"`
	PrincipalTTL time.Duration `env:"NOTEMARK_REDIS_PRINCIPAL_TTL" env-default:"5m"`
}

// GetAddress возвращает host:port.
func (c *RedisConfig) GetAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

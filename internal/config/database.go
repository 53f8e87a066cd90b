package config

import (
	"fmt"
	"net/url"
	"time"
)

// PostgresConfig - подключение к PostgreSQL. DSN, если задан, имеет приоритет над частями.
type PostgresConfig struct {
	DSN             string        `env:"NOTEMARK_POSTGRES_DSN" env-description:"full connection URL, overrides host/port/user/password/db"`
	Host            string        `env:"NOTEMARK_POSTGRES_HOST" env-default:"localhost"`
	Port            int           `env:"NOTEMARK_POSTGRES_PORT" env-default:"5432"`
	User            string        `env:"NOTEMARK_POSTGRES_USER" env-default:"postgres"`
	Password        string        `env:"NOTEMARK_POSTGRES_PASSWORD" env-default:"postgres"`
	Database        string        `env:"NOTEMARK_POSTGRES_DB" env-default:"notemark"`
	SSLMode         string        `env:"NOTEMARK_POSTGRES_SSLMODE" env-default:"disable"`
	MinConn         int32         `env:"NOTEMARK_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn         int32         `env:"NOTEMARK_POSTGRES_MAX_CONN" env-default:"10"`
	MaxConnLifetime time.Duration `env:"NOTEMARK_POSTGRES_MAX_CONN_LIFETIME" env-default:"1h"`
	ConnectTimeout  time.Duration `env:"NOTEMARK_POSTGRES_CONNECT_TIMEOUT" env-default:"5s"`
	MigrationsPath  string        `env:"NOTEMARK_POSTGRES_MIGRATIONS_PATH" env-default:"migrations"`
	MigrateOnStart  bool          `env:"NOTEMARK_POSTGRES_MIGRATE" env-default:"true"`
}

// GetConnectionURL возвращает URL подключения, общий для pgx и golang-migrate.
func (p *PostgresConfig) GetConnectionURL() string {
	if p.DSN != "" {
		return p.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     "/" + p.Database,
		RawQuery: url.Values{"sslmode": []string{p.SSLMode}}.Encode(),
	}
	return u.String()
}

// GetMigrationsSource возвращает источник миграций в формате golang-migrate.
func (p *PostgresConfig) GetMigrationsSource() string {
	return "file://" + p.MigrationsPath
}

package config

import "time"

// JWTConfig - подпись токенов сессии и стоимость bcrypt.
type JWTConfig struct {
	SecretKey  string        `env:"NOTEMARK_JWT_SECRET" env-required:"true" env-description:"HMAC signing secret"`
	TokenTTL   time.Duration `env:"NOTEMARK_JWT_TTL" env-default:"168h"`
	BCryptCost int           `env:"NOTEMARK_BCRYPT_COST" env-default:"10"`
}

package config

import "time"

// EnrichmentConfig - получение заголовков страниц и генерация описаний закладок.
type EnrichmentConfig struct {
	FetchTimeout        time.Duration `env:"NOTEMARK_FETCH_TIMEOUT" env-default:"5s"`
	UserAgent           string        `env:"NOTEMARK_FETCH_USER_AGENT" env-default:"Mozilla/5.0 (compatible; notemark/1.0)"`
	MaxBodyBytes        int64         `env:"NOTEMARK_FETCH_MAX_BODY_BYTES" env-default:"1048576"`
	BreakerFailures     int           `env:"NOTEMARK_FETCH_BREAKER_FAILURES" env-default:"5"`
	BreakerOpenDuration time.Duration `env:"NOTEMARK_FETCH_BREAKER_OPEN" env-default:"30s"`
	AllowPrivate        bool          `env:"NOTEMARK_FETCH_ALLOW_PRIVATE" env-default:"false" env-description:"allow fetching loopback and private addresses"`

	OpenAIKey      string        `env:"OPENAI_API_KEY" env-description:"enables bookmark summaries when set"`
	OpenAIModel    string        `env:"NOTEMARK_OPENAI_MODEL" env-default:"gpt-4o-mini"`
	OpenAIBaseURL  string        `env:"NOTEMARK_OPENAI_BASE_URL"`
	SummaryTimeout time.Duration `env:"NOTEMARK_SUMMARY_TIMEOUT" env-default:"8s"`
}

// SummarizerEnabled сообщает, задан ли ключ OpenAI.
func (c *EnrichmentConfig) SummarizerEnabled() bool {
	return c.OpenAIKey != ""
}

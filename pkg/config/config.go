package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	OpenAI        OpenAIConfig
	FeatureFlags  FeatureFlagsConfig
}

// Load reads the whole configuration from the environment. Any missing
// required value fails here, at process start, rather than per request.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"VRIKSH_APP_ENV" default:"dev"`
	Port         string `envconfig:"VRIKSH_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"VRIKSH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VRIKSH_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"VRIKSH_DB_DSN" required:"true"`
	Driver string `envconfig:"VRIKSH_DB_DRIVER" default:"postgres"`

	MaxOpenConns    int           `envconfig:"VRIKSH_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"VRIKSH_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"VRIKSH_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"VRIKSH_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"VRIKSH_REDIS_URL"`
	Address      string        `envconfig:"VRIKSH_REDIS_ADDR"`
	Password     string        `envconfig:"VRIKSH_REDIS_PASSWORD"`
	DB           int           `envconfig:"VRIKSH_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"VRIKSH_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"VRIKSH_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"VRIKSH_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"VRIKSH_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"VRIKSH_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured at all. Rate
// limiting degrades to a no-op when it is absent.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret         string `envconfig:"VRIKSH_JWT_SECRET" required:"true"`
	Issuer         string `envconfig:"VRIKSH_JWT_ISSUER" default:"vrikshai"`
	ExpirationDays int    `envconfig:"VRIKSH_JWT_EXPIRATION_DAYS" default:"7"`
}

// TokenTTL returns the access token lifetime.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationDays <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationDays) * 24 * time.Hour
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"VRIKSH_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"VRIKSH_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"VRIKSH_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"VRIKSH_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"VRIKSH_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow      time.Duration `envconfig:"VRIKSH_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit  int           `envconfig:"VRIKSH_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit     int           `envconfig:"VRIKSH_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	SignupWindow     time.Duration `envconfig:"VRIKSH_AUTH_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupEmailLimit int           `envconfig:"VRIKSH_AUTH_RATE_LIMIT_SIGNUP_EMAIL_LIMIT" default:"3"`
	SignupIPLimit    int           `envconfig:"VRIKSH_AUTH_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"20"`
}

type OpenAIConfig struct {
	APIKey  string        `envconfig:"VRIKSH_OPENAI_API_KEY" required:"true"`
	BaseURL string        `envconfig:"VRIKSH_OPENAI_BASE_URL"`
	Model   string        `envconfig:"VRIKSH_OPENAI_MODEL" default:"gpt-4o"`
	Timeout time.Duration `envconfig:"VRIKSH_OPENAI_TIMEOUT" default:"60s"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"VRIKSH_AUTO_MIGRATE" default:"false"`
}

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// EmailProviderHTTP sends mail through a Postmark-compatible REST API.
	EmailProviderHTTP = "http"
	// EmailProviderSES sends mail through Amazon SES.
	EmailProviderSES = "ses"

	minHMACSecretLength = 32
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database and redis
// connections, authentication, email delivery and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`
	// BaseURL is the public URL of the service, used to build confirmation links
	BaseURL string `env:"BASE_URL" env-default:"http://127.0.0.1:8080" yaml:"baseURL"`
	// HMACSecret signs flash message cookies. At least 32 bytes.
	HMACSecret string `env:"HMAC_SECRET" env-required:"true" yaml:"hmacSecret"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// Publishing a newsletter is exempt and waits for the whole dispatch.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"1m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed by CORS
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" yaml:"allowedOrigins"`
		// LoginRateLimit is the sustained number of login attempts per second allowed per client IP
		LoginRateLimit float64 `env:"HTTP_LOGIN_RATE_LIMIT" env-default:"0.2" yaml:"loginRateLimit"`
		// LoginRateBurst is the number of login attempts a client IP may make at once
		LoginRateBurst int `env:"HTTP_LOGIN_RATE_BURST" env-default:"5" yaml:"loginRateBurst"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"postgres" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"password" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"newsletter" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis holds the session store connection
	Redis struct {
		Addr        string        `env:"REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
		Username    string        `env:"REDIS_USERNAME" yaml:"username"`
		Password    string        `env:"REDIS_PASSWORD" yaml:"password"`
		DB          int           `env:"REDIS_DB" env-default:"0" yaml:"db"`
		DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" env-default:"5s" yaml:"dialTimeout"`
		Timeout     time.Duration `env:"REDIS_TIMEOUT" env-default:"3s" yaml:"timeout"`
		MaxRetries  int           `env:"REDIS_MAX_RETRIES" env-default:"3" yaml:"maxRetries"`
	} `yaml:"redis"`

	Session struct {
		// TTL is how long an idle session stays valid; every authenticated request extends it
		TTL time.Duration `env:"SESSION_TTL" env-default:"24h" yaml:"ttl"`
		// CookieName is the name of the cookie carrying the session id
		CookieName string `env:"SESSION_COOKIE_NAME" env-default:"id" yaml:"cookieName"`
		// Secure marks session and flash cookies as HTTPS only
		Secure bool `env:"SESSION_SECURE" env-default:"false" yaml:"secure"`
	} `yaml:"session"`

	// Auth configures password hashing and verification
	Auth struct {
		Memory      uint32 `env:"AUTH_ARGON2_MEMORY" env-default:"15000" yaml:"memory"`
		Iterations  uint32 `env:"AUTH_ARGON2_ITERATIONS" env-default:"2" yaml:"iterations"`
		Parallelism uint8  `env:"AUTH_ARGON2_PARALLELISM" env-default:"1" yaml:"parallelism"`
		SaltLength  uint32 `env:"AUTH_ARGON2_SALT_LENGTH" env-default:"16" yaml:"saltLength"`
		KeyLength   uint32 `env:"AUTH_ARGON2_KEY_LENGTH" env-default:"32" yaml:"keyLength"`
		// DummyPasswordHash is verified against when a username does not exist.
		// Computed at startup from the parameters above when empty.
		DummyPasswordHash string `env:"AUTH_DUMMY_PASSWORD_HASH" yaml:"dummyPasswordHash"`
		// VerifyWorkers is the number of goroutines hashing passwords. Zero means GOMAXPROCS.
		VerifyWorkers int `env:"AUTH_VERIFY_WORKERS" env-default:"0" yaml:"verifyWorkers"`
	} `yaml:"auth"`

	Newsletter struct {
		// Concurrency caps the number of emails sent at the same time while publishing
		Concurrency int `env:"NEWSLETTER_CONCURRENCY" env-default:"8" yaml:"concurrency"`
	} `yaml:"newsletter"`

	// Email configures the outbound mail transport
	Email struct {
		// Provider is either "http" or "ses"
		Provider string `env:"EMAIL_PROVIDER" env-default:"http" yaml:"provider"`
		// SenderEmail is the From address of every email
		SenderEmail string `env:"EMAIL_SENDER" env-required:"true" yaml:"senderEmail"`
		// BaseURL is the REST API root of the http provider
		BaseURL string `env:"EMAIL_BASE_URL" env-default:"https://api.postmarkapp.com" yaml:"baseURL"`
		// AuthorizationToken authenticates against the http provider
		AuthorizationToken string `env:"EMAIL_AUTHORIZATION_TOKEN" yaml:"authorizationToken"`
		// Timeout bounds a single send with the http provider
		Timeout time.Duration `env:"EMAIL_TIMEOUT" env-default:"10s" yaml:"timeout"`
		SES     struct {
			Region          string `env:"EMAIL_SES_REGION" env-default:"us-east-1" yaml:"region"`
			AccessKeyID     string `env:"EMAIL_SES_ACCESS_KEY_ID" yaml:"accessKeyID"`
			SecretAccessKey string `env:"EMAIL_SES_SECRET_ACCESS_KEY" yaml:"secretAccessKey"`
		} `yaml:"ses"`
	} `yaml:"email"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.HMACSecret) < minHMACSecretLength {
		return fmt.Errorf("hmacSecret must be at least %d bytes", minHMACSecretLength)
	}

	switch c.Email.Provider {
	case EmailProviderHTTP:
		if c.Email.AuthorizationToken == "" {
			return errors.New("email.authorizationToken is required by the http provider")
		}
	case EmailProviderSES:
	default:
		return fmt.Errorf("unknown email provider %q", c.Email.Provider)
	}

	if c.Newsletter.Concurrency < 1 {
		return errors.New("newsletter.concurrency must be positive")
	}

	return nil
}

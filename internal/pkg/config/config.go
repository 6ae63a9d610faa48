package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Cookie       CookieConfig
	Matching     MatchingConfig
	Notification NotificationConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,Idempotent-Replayed,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	// json or text; empty picks json in release mode
	Format         string `envconfig:"LOG_FORMAT"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tehran"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"12600"` // 3.5*60*60
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// MatchingConfig holds the policy switches of the matching engine.
type MatchingConfig struct {
	VisitorCapacity     int           `envconfig:"MATCHING_VISITOR_CAPACITY" default:"5"`
	EnforceCapacity     bool          `envconfig:"MATCHING_ENFORCE_CAPACITY" default:"false"`
	AllowResubmission   bool          `envconfig:"MATCHING_ALLOW_RESUBMISSION" default:"false"`
	ExpirySweepInterval time.Duration `envconfig:"MATCHING_EXPIRY_SWEEP_INTERVAL" default:"1m"`
	ExpirySweepBatch    int           `envconfig:"MATCHING_EXPIRY_SWEEP_BATCH" default:"100"`
	IdempotencyTTL      time.Duration `envconfig:"MATCHING_IDEMPOTENCY_TTL" default:"24h"`
}

type NotificationConfig struct {
	PollInterval time.Duration `envconfig:"NOTIFICATION_POLL_INTERVAL" default:"5s"`
	BatchSize    int           `envconfig:"NOTIFICATION_BATCH_SIZE" default:"50"`
	MaxAttempts  int           `envconfig:"NOTIFICATION_MAX_ATTEMPTS" default:"5"`
	RetryBase    time.Duration `envconfig:"NOTIFICATION_RETRY_BASE" default:"30s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, errs.Wrap(err, "process env config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// minSecretLength keeps HS256 keys at least as long as the hash output.
const minSecretLength = 32

// Validate checks what struct tags cannot express. A zero worker interval
// is allowed and disables that worker.
func (c Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(c.JWT.Secret) < minSecretLength {
		add("JWT_SECRET must be at least %d characters", minSecretLength)
	}
	for name, raw := range map[string]string{
		"JWT_ACCESS_TOKEN_DURATION":  c.JWT.AccessTokenDuration,
		"JWT_REFRESH_TOKEN_DURATION": c.JWT.RefreshTokenDuration,
	} {
		if d, err := time.ParseDuration(raw); err != nil || d <= 0 {
			add("%s must be a positive duration, got %q", name, raw)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		add("LOG_LEVEL %q is not one of debug, info, warn, error", c.Log.Level)
	}
	if f := c.Log.Format; f != "" && f != "json" && f != "text" {
		add("LOG_FORMAT must be json or text, got %q", f)
	}

	if c.Matching.VisitorCapacity < 1 {
		add("MATCHING_VISITOR_CAPACITY must be positive")
	}
	if c.Matching.ExpirySweepInterval < 0 || c.Notification.PollInterval < 0 {
		add("worker intervals cannot be negative")
	}
	if c.Matching.IdempotencyTTL <= 0 {
		add("MATCHING_IDEMPOTENCY_TTL must be positive")
	}
	if c.Notification.MaxAttempts < 1 {
		add("NOTIFICATION_MAX_ATTEMPTS must be positive")
	}
	if c.Notification.RetryBase <= 0 {
		add("NOTIFICATION_RETRY_BASE must be positive")
	}

	if len(problems) > 0 {
		slices.Sort(problems)
		return errs.Newf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:              "8889", // Test port
			ReadHeaderTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tehran",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 12600,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-matching-engine",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "168h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Matching: MatchingConfig{
			VisitorCapacity:   5,
			EnforceCapacity:   false,
			AllowResubmission: false,
			// Workers are started explicitly by the tests that need them
			ExpirySweepInterval: 0,
			ExpirySweepBatch:    100,
			IdempotencyTTL:      24 * time.Hour,
		},
		Notification: NotificationConfig{
			PollInterval: 0,
			BatchSize:    50,
			MaxAttempts:  5,
			RetryBase:    time.Second,
		},
	}
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Redis   RedisConfig
	Stripe  StripeConfig
	Booking BookingConfig
	Pricing PricingConfig
	Notify  NotifyConfig
	Admin   AdminConfig
}

type ServerConfig struct {
	Port          string `envconfig:"PORT" required:"true"`
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:3000"`
}

type DBConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName          string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone        string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	ConnectTimeout  time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Admin-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Chicago"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

// Redis backs the short-lived (asset, date) hold lock. An empty address
// disables the lock and leaves the pending-row hold as the only guard.
type RedisConfig struct {
	Address      string        `envconfig:"REDIS_ADDRESS" default:""`
	Password     string        `envconfig:"REDIS_PASSWORD" default:""`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"2s"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"1s"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"1s"`
}

func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Address) != ""
}

type StripeConfig struct {
	SecretKey     string        `envconfig:"STRIPE_SECRET_KEY" default:""`
	WebhookSecret string        `envconfig:"STRIPE_WEBHOOK_SECRET" default:""`
	Currency      string        `envconfig:"STRIPE_CURRENCY" default:"usd"`
	Timeout       time.Duration `envconfig:"STRIPE_TIMEOUT" default:"10s"`
}

func (c StripeConfig) Configured() bool {
	return c.SecretKey != ""
}

// Stripe rejects checkout sessions expiring less than 30 minutes or more
// than 24 hours after creation. The lower bound keeps a minute of slack.
const (
	MinSessionTTL = 31 * time.Minute
	MaxSessionTTL = 24 * time.Hour
)

type BookingConfig struct {
	HoldWindow       time.Duration `envconfig:"BOOKING_HOLD_WINDOW" default:"35m"`
	SessionTTL       time.Duration `envconfig:"BOOKING_SESSION_TTL" default:"31m"`
	DepositPercent   int           `envconfig:"BOOKING_DEPOSIT_PERCENT" default:"50"`
	TimeZone         string        `envconfig:"BOOKING_TIMEZONE" default:"America/Chicago"`
	DefaultAssetID   string        `envconfig:"BOOKING_DEFAULT_ASSET_ID" default:"castle-classic"`
	BlackoutDates    []string      `envconfig:"AVAILABILITY_BLACKOUT_DATES" default:""`
	SweepInterval    time.Duration `envconfig:"BOOKING_SWEEP_INTERVAL" default:"15m"`
	OperationTimeout time.Duration `envconfig:"BOOKING_OPERATION_TIMEOUT" default:"15s"`
}

// validateWindows keeps a pending booking holding its date for as long as its
// payment session can still be completed.
func (c BookingConfig) validateWindows() error {
	if c.SessionTTL < MinSessionTTL || c.SessionTTL > MaxSessionTTL {
		return fmt.Errorf("BOOKING_SESSION_TTL must be within %s..%s, got %s", MinSessionTTL, MaxSessionTTL, c.SessionTTL)
	}
	if c.HoldWindow < c.SessionTTL {
		return fmt.Errorf("BOOKING_HOLD_WINDOW (%s) must not be shorter than BOOKING_SESSION_TTL (%s)", c.HoldWindow, c.SessionTTL)
	}
	return nil
}

func (c BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Amounts are in cents.
type PricingConfig struct {
	DailyRate   int64    `envconfig:"PRICING_DAILY_RATE" default:"15000"`
	WeekendRate int64    `envconfig:"PRICING_WEEKEND_RATE" default:"25000"`
	WeeklyRate  int64    `envconfig:"PRICING_WEEKLY_RATE" default:"60000"`
	LocalFee    int64    `envconfig:"PRICING_LOCAL_FEE" default:"2000"`
	OutsideFee  int64    `envconfig:"PRICING_OUTSIDE_FEE" default:"4000"`
	LocalZips   []string `envconfig:"PRICING_LOCAL_ZIPS" default:"75001,75002,75006,75007,75010"`
}

type NotifyConfig struct {
	Timeout         time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"5s"`
	AdminPhone      string        `envconfig:"NOTIFY_ADMIN_PHONE" default:""`
	BusinessName    string        `envconfig:"NOTIFY_BUSINESS_NAME" default:"Bounce House Rentals"`
	SMTPHost        string        `envconfig:"SMTP_HOST" default:""`
	SMTPPort        int           `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername    string        `envconfig:"SMTP_USERNAME" default:""`
	SMTPPassword    string        `envconfig:"SMTP_PASSWORD" default:""`
	MailFrom        string        `envconfig:"MAIL_FROM" default:""`
	SMSEnabled      bool          `envconfig:"SMS_ENABLED" default:"false"`
	SMSSenderID     string        `envconfig:"SMS_SENDER_ID" default:""`
	CalendarID      string        `envconfig:"CALENDAR_ID" default:""`
	CalendarKeyFile string        `envconfig:"CALENDAR_CREDENTIALS_FILE" default:""`
}

type AdminConfig struct {
	Token string `envconfig:"ADMIN_API_TOKEN" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Booking.DepositPercent <= 0 || cfg.Booking.DepositPercent > 100 {
		return Config{}, fmt.Errorf("BOOKING_DEPOSIT_PERCENT must be within 1..100, got %d", cfg.Booking.DepositPercent)
	}
	if _, err := time.LoadLocation(cfg.Booking.TimeZone); err != nil {
		return Config{}, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", cfg.Booking.TimeZone, err)
	}
	if err := cfg.Booking.validateWindows(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:          "8889", // Test port
			PublicBaseURL: "http://localhost:3000",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Stripe: StripeConfig{
			Currency: "usd",
			Timeout:  time.Second,
		},
		Booking: BookingConfig{
			HoldWindow:       MinSessionTTL,
			SessionTTL:       MinSessionTTL,
			DepositPercent:   50,
			TimeZone:         "UTC",
			DefaultAssetID:   "castle-classic",
			SweepInterval:    15 * time.Minute,
			OperationTimeout: 5 * time.Second,
		},
		Pricing: PricingConfig{
			DailyRate:   15000,
			WeekendRate: 25000,
			WeeklyRate:  60000,
			LocalFee:    2000,
			OutsideFee:  4000,
			LocalZips:   []string{"75001", "75002"},
		},
		Notify: NotifyConfig{
			Timeout:      time.Second,
			BusinessName: "Bounce House Rentals",
		},
		Admin: AdminConfig{
			Token: "test-admin-token",
		},
	}
}

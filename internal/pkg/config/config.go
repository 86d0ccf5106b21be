package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, limits)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Auth     AuthConfig
	Stripe   StripeConfig
	Rates    RatesConfig
	Checkout CheckoutConfig
	Cart     CartConfig
	Tracing  TracingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host          string `envconfig:"DB_HOST" default:"localhost"`
	Port          string `envconfig:"DB_PORT" default:"5432"`
	User          string `envconfig:"DB_USER" required:"true"`
	Password      string `envconfig:"DB_PASSWORD" required:"true"`
	DBName        string `envconfig:"DB_NAME" required:"true"`
	SSLMode       string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone      string `envconfig:"DB_TIMEZONE" default:"Europe/Bucharest"`
	MaxConns      int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	RunMigrations bool   `envconfig:"DB_RUN_MIGRATIONS" default:"true"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Cart-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Cart-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Bucharest"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
}

type JWTConfig struct {
	Secret              string `envconfig:"JWT_SECRET" required:"true"`
	Issuer              string `envconfig:"JWT_ISSUER" default:"storefront"`
	AccessTokenDuration string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"8h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// AuthConfig holds the admin account lockout policy.
type AuthConfig struct {
	MaxFailedAttempts int           `envconfig:"AUTH_MAX_FAILED_ATTEMPTS" default:"5"`
	LockoutDuration   time.Duration `envconfig:"AUTH_LOCKOUT_DURATION" default:"15m"`
	BcryptCost        int           `envconfig:"AUTH_BCRYPT_COST" default:"12"`
}

type StripeConfig struct {
	SecretKey     string        `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	WebhookSecret string        `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
	SuccessURL    string        `envconfig:"STRIPE_SUCCESS_URL" default:"http://localhost:3000/checkout/success?session_id={CHECKOUT_SESSION_ID}"`
	CancelURL     string        `envconfig:"STRIPE_CANCEL_URL" default:"http://localhost:3000/cart"`
	SessionTTL    time.Duration `envconfig:"STRIPE_SESSION_TTL" default:"30m"`
	// Circuit breaker around provider calls
	BreakerMaxFailures uint32        `envconfig:"STRIPE_BREAKER_MAX_FAILURES" default:"5"`
	BreakerOpenTimeout time.Duration `envconfig:"STRIPE_BREAKER_OPEN_TIMEOUT" default:"30s"`
}

// RatesConfig controls the exchange rate feed. An empty FeedURL switches to the static rates.
type RatesConfig struct {
	FeedURL       string        `envconfig:"RATES_FEED_URL" default:"https://www.bnr.ro/nbrfxrates.xml"`
	FeePercent    string        `envconfig:"RATES_FEE_PERCENT" default:"2"`
	TTL           time.Duration `envconfig:"RATES_TTL" default:"1h"`
	FetchTimeout  time.Duration `envconfig:"RATES_FETCH_TIMEOUT" default:"10s"`
	StaticEUR     string        `envconfig:"RATES_STATIC_EUR" default:"4.97"`
	StaticGBP     string        `envconfig:"RATES_STATIC_GBP" default:"5.88"`
	RefreshOnBoot bool          `envconfig:"RATES_REFRESH_ON_BOOT" default:"true"`

	BreakerMaxFailures uint32        `envconfig:"RATES_BREAKER_MAX_FAILURES" default:"3"`
	BreakerOpenTimeout time.Duration `envconfig:"RATES_BREAKER_OPEN_TIMEOUT" default:"5m"`
}

type CheckoutConfig struct {
	SupportedLocales []string `envconfig:"CHECKOUT_SUPPORTED_LOCALES" default:"ro,en"`
	// locale:currency pairs, e.g. "ro:RON,en:EUR"
	SettlementCurrencies map[string]string `envconfig:"CHECKOUT_SETTLEMENT_CURRENCIES" default:"ro:RON,en:EUR"`
}

type CartConfig struct {
	TTL       time.Duration `envconfig:"CART_TTL" default:"720h"`
	KeyPrefix string        `envconfig:"CART_KEY_PREFIX" default:"storefront"`
}

type TracingConfig struct {
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"storefront"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// SettlementCurrency returns the currency a locale settles in, falling back to RON.
func (c CheckoutConfig) SettlementCurrency(locale string) string {
	if cur, ok := c.SettlementCurrencies[strings.ToLower(locale)]; ok && cur != "" {
		return strings.ToUpper(cur)
	}
	return "RON"
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Bucharest",
			MaxConns: 10,
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Bucharest",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 7200,
		},
		JWT: JWTConfig{
			Secret:              "test-secret-key-for-storefront-tests",
			Issuer:              "storefront-test",
			AccessTokenDuration: "1h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Auth: AuthConfig{
			MaxFailedAttempts: 5,
			LockoutDuration:   15 * time.Minute,
			BcryptCost:        4,
		},
		Stripe: StripeConfig{
			SecretKey:          "sk_test_dummy",
			WebhookSecret:      "whsec_test_secret",
			SuccessURL:         "http://localhost:3000/checkout/success?session_id={CHECKOUT_SESSION_ID}",
			CancelURL:          "http://localhost:3000/cart",
			SessionTTL:         30 * time.Minute,
			BreakerMaxFailures: 5,
			BreakerOpenTimeout: 30 * time.Second,
		},
		Rates: RatesConfig{
			FeePercent:   "2",
			TTL:          time.Hour,
			FetchTimeout: 5 * time.Second,
			StaticEUR:    "4.97",
			StaticGBP:    "5.88",

			BreakerMaxFailures: 3,
			BreakerOpenTimeout: time.Minute,
		},
		Checkout: CheckoutConfig{
			SupportedLocales:     []string{"ro", "en"},
			SettlementCurrencies: map[string]string{"ro": "RON", "en": "EUR"},
		},
		Cart: CartConfig{
			TTL:       24 * time.Hour,
			KeyPrefix: "storefront-test",
		},
		Tracing: TracingConfig{
			ServiceName: "storefront-test",
		},
	}
}

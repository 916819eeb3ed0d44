package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`

	// PublicBaseURL is the externally reachable base for the accept,
	// cancel and callback URLs handed to DIBS.
	PublicBaseURL string `yaml:"public_base_url" env:"PUBLIC_BASE_URL" env-required:"true"`

	// FrontendBaseURL is where payers land after the return page.
	FrontendBaseURL string `yaml:"frontend_base_url" env:"FRONTEND_BASE_URL" env-required:"true"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"PG_MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"PG_MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"25"`
	ConnMaxLifetime time.Duration `yaml:"PG_CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"5m"`
	ConnMaxIdleTime time.Duration `yaml:"PG_CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost:6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"DEFAULT_TTL" env:"CACHE_DEFAULT_TTL" env-default:"15m"`

	// How long a signed checkout form stays valid. The payment window
	// itself expires sessions, so this only needs to outlive the redirect.
	CheckoutTTL time.Duration `yaml:"CHECKOUT_TTL" env:"CACHE_CHECKOUT_TTL" env-default:"1h"`
}

type Security struct {
	JWTKey string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
}

type SendGrid struct {
	APIKey    string `yaml:"SENDGRID_API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail string `yaml:"SENDGRID_FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"tickets@example.com"`
	FromName  string `yaml:"SENDGRID_FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Tixbase"`
}

type DIBS struct {
	PaymentWindowURL string `yaml:"payment_window_url" env:"DIBS_PAYMENT_WINDOW_URL" env-default:""`
	APIBaseURL       string `yaml:"api_base_url" env:"DIBS_API_BASE_URL" env-default:""`
	Language         string `yaml:"language" env:"DIBS_LANGUAGE" env-default:"en"`

	// APIAuth maps merchant id to "username:password" for the cgi-adm
	// endpoints; a host-wide fallback when an event carries no API user of
	// its own.
	APIAuth map[string]string `yaml:"api_auth"`
}

type Telemetry struct {
	Enabled      bool   `yaml:"enabled" env:"OTEL_ENABLED" env-default:"false"`
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"localhost:4318"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	Cache        CacheConfig  `yaml:"cache"`
	Security     Security     `yaml:"security"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	DIBS         DIBS         `yaml:"dibs"`
	Telemetry    Telemetry    `yaml:"telemetry"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	if r.Password != "" {
		return fmt.Sprintf("redis://%s:%s@%s/%d", r.Username, r.Password, r.Host, r.DB)
	}

	return fmt.Sprintf("redis://%s/%d", r.Host, r.DB)
}

// APIAuthFor resolves the host-wide API credentials for a merchant. The
// config value is "username:password"; passwords may contain colons, so only
// the first one splits.
func (d *DIBS) APIAuthFor(merchantID string) (username, password string, ok bool) {
	raw, ok := d.APIAuth[merchantID]
	if !ok {
		return "", "", false
	}

	username, password, found := strings.Cut(raw, ":")
	if !found || username == "" || password == "" {
		return "", "", false
	}

	return username, password, true
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	DB      PostgresConfig
	Kafka   KafkaConfig
	Listing ListingConfig
	Store   StoreConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type ServerConfig struct {
	Host string
	Port int
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
}

type KafkaConfig struct {
	Brokers       []string
	OrderTopic    string
	ConsumerGroup string
}

// ListingConfig points at the remote seller listing and bounds how long
// a page-ready wait may block.
type ListingConfig struct {
	BaseURL     string
	OrdersPath  string
	PageTimeout time.Duration
	Headless    bool
}

// StoreConfig describes the per-operator data directory holding the
// catalog workbook, checkpoint file, run snapshots and sales history.
type StoreConfig struct {
	DataDir        string
	Operator       string
	CatalogFile    string
	CheckpointFile string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "goshopsync"),
			Env:  getEnv("APP_ENV", "local"),
		},
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvAsInt("HTTP_PORT", 8030),
		},
		DB: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvAsInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			DBName:   getEnv("POSTGRES_DB", "postgres"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
		},
		Kafka: KafkaConfig{
			Brokers:       splitAndTrim(getEnv("KAFKA_BOOTSTRAP_SERVERS", "")),
			OrderTopic:    getEnv("KAFKA_ORDER_TOPIC", "seller_raw_orders"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "goshopsync"),
		},
		Listing: ListingConfig{
			BaseURL:     getEnv("LISTING_BASE_URL", "https://goshophsn.com"),
			OrdersPath:  getEnv("LISTING_ORDERS_PATH", "/seller/orders"),
			PageTimeout: time.Duration(getEnvAsInt("LISTING_PAGE_TIMEOUT_MS", 10000)) * time.Millisecond,
			Headless:    getEnvAsBool("LISTING_HEADLESS", false),
		},
		Store: StoreConfig{
			DataDir:        getEnv("STORE_DATA_DIR", "data"),
			Operator:       getEnv("STORE_OPERATOR", ""),
			CatalogFile:    getEnv("STORE_CATALOG_FILE", "products_list.xlsx"),
			CheckpointFile: getEnv("STORE_CHECKPOINT_FILE", "lastorder.txt"),
		},
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// OrdersURL is the full URL of the paginated seller-orders listing.
func (l ListingConfig) OrdersURL() string {
	return strings.TrimRight(l.BaseURL, "/") + l.OrdersPath
}

// Enabled reports whether publishing to Kafka is configured at all.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// CatalogPath is the absolute location of the product catalog workbook.
func (s StoreConfig) CatalogPath() string {
	return filepath.Join(s.DataDir, s.CatalogFile)
}

// CheckpointPath is the absolute location of the high-water-mark file.
func (s StoreConfig) CheckpointPath() string {
	return filepath.Join(s.DataDir, s.CheckpointFile)
}

/* ================= helpers ================= */

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	if c.Listing.BaseURL == "" {
		return fmt.Errorf("LISTING_BASE_URL is empty")
	}
	if c.Listing.PageTimeout <= 0 {
		return fmt.Errorf("LISTING_PAGE_TIMEOUT_MS is invalid")
	}
	if c.Store.DataDir == "" {
		return fmt.Errorf("STORE_DATA_DIR is empty")
	}
	// Kafka and Postgres are optional for the ingest CLI; the API entry
	// point validates them itself.
	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if val := strings.TrimSpace(p); val != "" {
			out = append(out, val)
		}
	}
	return out
}

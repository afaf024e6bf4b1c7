package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	HTTP     HTTPConfig     `yaml:"http"`
	Shopify  ShopifyConfig  `yaml:"shopify"`
	Security SecurityConfig `yaml:"security"`
	Sync     SyncConfig     `yaml:"sync"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Archive  ArchiveConfig  `yaml:"archive"`
	LogLevel string         `yaml:"log_level" validate:"oneof=debug info warn error"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required,min=1"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname" validate:"required"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// URL is the DSN in the form golang-migrate expects.
func (d DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.DBName,
		RawQuery: "sslmode=" + d.SSLMode,
	}
	return u.String()
}

type HTTPConfig struct {
	Addr         string        `yaml:"addr"`
	MaxBodyBytes int           `yaml:"max_body_bytes"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type ShopifyConfig struct {
	APIVersion           string        `yaml:"api_version"`
	BaseURL              string        `yaml:"base_url"`
	WebhookSecret        string        `yaml:"webhook_secret" validate:"required"`
	AppBaseURL           string        `yaml:"app_base_url"`
	PageSize             int           `yaml:"page_size" validate:"min=1,max=250"`
	CollectionsBatchSize int           `yaml:"collections_batch_size" validate:"min=1,max=250"`
	RequestsPerSecond    float64       `yaml:"requests_per_second"`
	Timeout              time.Duration `yaml:"timeout"`
	Retry                RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type SecurityConfig struct {
	AdminKey  string `yaml:"admin_key" validate:"required"`
	ExportKey string `yaml:"export_key" validate:"required"`
}

type SyncConfig struct {
	Interval          time.Duration `yaml:"interval"`
	BatchLimit        int           `yaml:"batch_limit" validate:"min=1"`
	// Concurrency caps in-flight runs across every batch and admin call.
	Concurrency       int           `yaml:"concurrency" validate:"min=1"`
	LeaseTTL          time.Duration `yaml:"lease_ttl"`
	ReapInterval      time.Duration `yaml:"reap_interval"`
	RunTimeout        time.Duration `yaml:"run_timeout"`
	RunRetention      time.Duration `yaml:"run_retention"`
	FailureBackoff    time.Duration `yaml:"failure_backoff"`
	MaxFailureBackoff time.Duration `yaml:"max_failure_backoff"`
}

// RabbitMQConfig is optional; an empty URL disables snapshot notifications.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

// ArchiveConfig is optional; an empty bucket disables S3 snapshot copies.
type ArchiveConfig struct {
	Bucket          string `yaml:"bucket"`
	Prefix          string `yaml:"prefix"`
	Region          string `yaml:"region"`
	EndpointURL     string `yaml:"endpoint_url"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

func (a ArchiveConfig) Enabled() bool {
	return a.Bucket != ""
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return Parse(data)
}

// Parse expands ${VAR} references in data and decodes it.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":3000"
	}
	if c.HTTP.MaxBodyBytes == 0 {
		c.HTTP.MaxBodyBytes = 1 << 20
	}
	if c.HTTP.ReadTimeout == 0 {
		c.HTTP.ReadTimeout = 10 * time.Second
	}
	if c.HTTP.WriteTimeout == 0 {
		c.HTTP.WriteTimeout = 10 * time.Minute
	}
	if c.Shopify.APIVersion == "" {
		c.Shopify.APIVersion = "2025-10"
	}
	if c.Shopify.PageSize == 0 {
		c.Shopify.PageSize = 250
	}
	if c.Shopify.CollectionsBatchSize == 0 {
		c.Shopify.CollectionsBatchSize = 50
	}
	if c.Shopify.RequestsPerSecond == 0 {
		c.Shopify.RequestsPerSecond = 2
	}
	if c.Shopify.Timeout == 0 {
		c.Shopify.Timeout = 30 * time.Second
	}
	if c.Shopify.Retry.MaxAttempts == 0 {
		c.Shopify.Retry.MaxAttempts = 3
	}
	if c.Shopify.Retry.InitialBackoff == 0 {
		c.Shopify.Retry.InitialBackoff = 1 * time.Second
	}
	if c.Shopify.Retry.MaxBackoff == 0 {
		c.Shopify.Retry.MaxBackoff = 30 * time.Second
	}
	if c.Sync.Interval == 0 {
		c.Sync.Interval = 5 * time.Minute
	}
	if c.Sync.BatchLimit == 0 {
		c.Sync.BatchLimit = 20
	}
	if c.Sync.Concurrency == 0 {
		c.Sync.Concurrency = 4
	}
	if c.Sync.LeaseTTL == 0 {
		c.Sync.LeaseTTL = 10 * time.Minute
	}
	if c.Sync.ReapInterval == 0 {
		c.Sync.ReapInterval = time.Minute
	}
	if c.Sync.RunTimeout == 0 {
		c.Sync.RunTimeout = 5 * time.Minute
	}
	if c.Sync.FailureBackoff == 0 {
		c.Sync.FailureBackoff = time.Minute
	}
	if c.Sync.MaxFailureBackoff == 0 {
		c.Sync.MaxFailureBackoff = time.Hour
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "catalog_sync"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "snapshots"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "goodbarber_snapshots"
	}
	if c.Archive.Prefix == "" {
		c.Archive.Prefix = "snapshots"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServiceName  string       `mapstructure:"service_name"`
	Env          string       `mapstructure:"env"`
	Port         string       `mapstructure:"port"`
	Braintree    Braintree    `mapstructure:"braintree"`
	VisaCheckout VisaCheckout `mapstructure:"visa_checkout"`
	Database     Database     `mapstructure:"database"`
	Redis        Redis        `mapstructure:"redis"`
	AWS          AWS          `mapstructure:"aws"`
	Analytics    Analytics    `mapstructure:"analytics"`
	Telemetry    Telemetry    `mapstructure:"telemetry"`
	Log          Log          `mapstructure:"log"`
}

type Braintree struct {
	ClientAPIURL             string        `mapstructure:"client_api_url"`
	ConfigurationURL         string        `mapstructure:"configuration_url"`
	AuthorizationFingerprint string        `mapstructure:"authorization_fingerprint"`
	HTTPTimeout              time.Duration `mapstructure:"http_timeout"`
}

type VisaCheckout struct {
	SDKAvailable bool `mapstructure:"sdk_available"`
}

type Database struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

type Redis struct {
	Addr               string        `mapstructure:"addr"`
	Password           string        `mapstructure:"password"`
	DB                 int           `mapstructure:"db"`
	ConfigurationTTL   time.Duration `mapstructure:"configuration_ttl"`
	TokenizeOutcomeTTL time.Duration `mapstructure:"tokenize_outcome_ttl"`
}

type AWS struct {
	Region      string `mapstructure:"region"`
	EndpointSNS string `mapstructure:"endpoint_sns"`
	EndpointSQS string `mapstructure:"endpoint_sqs"`
	SNSTopicArn string `mapstructure:"sns_topic_arn"`
	SQSQueueURL string `mapstructure:"sqs_queue_url"`
	SQSWorkers  int32  `mapstructure:"sqs_workers"`
}

type Analytics struct {
	FlushInterval time.Duration `mapstructure:"flush_interval"`
	BatchSize     int           `mapstructure:"batch_size"`
}

type Telemetry struct {
	Enabled      bool   `mapstructure:"enabled"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func ReadConfig() (*Config, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("unable to get current file")
	}

	v := viper.New()
	v.SetConfigName(getConfigName())
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Dir(filename))

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	// Allow environment variables to override config, e.g. VISACHECKOUT_REDIS_ADDR
	v.SetEnvPrefix("VISACHECKOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func getConfigName() string {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		return "local"
	}
	return env
}

func setDefaults(v *viper.Viper) {
	// Service defaults
	v.SetDefault("service_name", "visa-checkout-service")
	v.SetDefault("env", getEnv("ENV", "local"))
	v.SetDefault("port", getEnv("PORT", "8080"))

	// Braintree defaults
	v.SetDefault("braintree.client_api_url", "https://api.sandbox.braintreegateway.com/merchants/integration_merchant_id/client_api")
	v.SetDefault("braintree.configuration_url", "https://api.sandbox.braintreegateway.com/merchants/integration_merchant_id/client_api/v1/configuration")
	v.SetDefault("braintree.authorization_fingerprint", "")
	v.SetDefault("braintree.http_timeout", 30*time.Second)

	v.SetDefault("visa_checkout.sdk_available", true)

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5433)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "visa_checkout")
	v.SetDefault("database.ssl_mode", "disable")

	v.SetDefault("database.url", os.Getenv("DATABASE_URL"))

	// Redis defaults
	v.SetDefault("redis.addr", getEnv("REDIS_ADDR", "localhost:6379"))
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.configuration_ttl", 5*time.Minute)
	v.SetDefault("redis.tokenize_outcome_ttl", 24*time.Hour)

	// AWS defaults
	v.SetDefault("aws.region", getEnv("AWS_DEFAULT_REGION", "us-east-1"))
	v.SetDefault("aws.endpoint_sns", getEnv("AWS_ENDPOINT_URL_SNS", "http://localhost:4566"))
	v.SetDefault("aws.endpoint_sqs", getEnv("AWS_ENDPOINT_URL_SQS", "http://localhost:4566"))
	v.SetDefault("aws.sns_topic_arn", getEnv("SNS_TOPIC_ARN", "arn:aws:sns:us-east-1:000000000000:visa-checkout-events"))
	v.SetDefault("aws.sqs_queue_url", getEnv("SQS_QUEUE_URL", "http://localhost:4566/000000000000/visa-checkout-events"))
	v.SetDefault("aws.sqs_workers", 8)

	v.SetDefault("analytics.flush_interval", 30*time.Second)
	v.SetDefault("analytics.batch_size", 100)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.otlp_endpoint", "localhost:4318")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetDatabaseURL constructs database URL from config
func (c *Config) GetDatabaseURL() string {
	// Check if full URL is provided via DATABASE_URL
	if c.Database.URL != "" {
		return c.Database.URL
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// Package config loads the storefront settings from config.yaml with environment overrides.
package config

import (
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

// Config is shared by the API server and the catalog command.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`

		// Origins allowed by CORS; empty allows any origin.
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`

		// CIDRs of reverse proxies whose X-Forwarded-For entries are trusted.
		// Empty means the client IP is always the peer address.
		TrustedProxies []string `json:"trustedProxies" yaml:"trustedProxies"`
		Timeouts     struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access       string `json:"access" yaml:"access"`
		Verification string `json:"verification" yaml:"verification"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Mail *MailConfig `json:"mail" yaml:"mail"`

	Cart CartConfig `json:"cart" yaml:"cart"`

	Order OrderConfig `json:"order" yaml:"order"`

	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// QRCode configuration for order receipt QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Catalog configuration for the catalog import command
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig controls schema management at startup
type DatabaseConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL  time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	OtpTTL          time.Duration `json:"otpTTL" yaml:"otpTTL"`
	VerificationTTL time.Duration `json:"verificationTTL" yaml:"verificationTTL"`
}

// MailConfig defines how one-time codes are delivered
type MailConfig struct {
	// Provider type: "smtp" to send through an SMTP relay or "log" to only log the message
	Provider string        `json:"provider" yaml:"provider"`
	Host     string        `json:"host" yaml:"host"`
	Port     int           `json:"port" yaml:"port"`
	Username string        `json:"username" yaml:"username"`
	Password string        `json:"password" yaml:"password"`
	From     string        `json:"from" yaml:"from"`
	SSL      bool          `json:"ssl" yaml:"ssl"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// CartConfig defines cart mutation behaviour
type CartConfig struct {
	// Attempts made when a concurrent cart write wins the version race
	MaxRetries int `json:"maxRetries" yaml:"maxRetries"`
}

// OrderConfig defines order placement behaviour
type OrderConfig struct {
	// Largest accepted difference between client and server totals
	TotalTolerance float64 `json:"totalTolerance" yaml:"totalTolerance"`
}

// RateLimitConfig limits the OTP endpoints per client IP
type RateLimitConfig struct {
	OtpPerMinute float64       `json:"otpPerMinute" yaml:"otpPerMinute"`
	OtpBurst     int           `json:"otpBurst" yaml:"otpBurst"`
	IdleTTL      time.Duration `json:"idleTTL" yaml:"idleTTL"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// CatalogConfig points at the product document used for seeding
type CatalogConfig struct {
	// Bucket URL understood by gocloud.dev/blob, e.g. file:///srv/seed or gs://bucket
	BucketURL string `json:"bucketURL" yaml:"bucketURL"`
	Key       string `json:"key" yaml:"key"`
}

// New loads config.yaml from the working directory or a nearby config/ directory,
// overlays environment variables, fills defaults and validates the result.
func New() (*Config, error) {
	cfg, err := load(fileName, ".", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	// POSTGRES_REPLICAS_{n}_{HOST,PORT,USERNAME,PASSWORD}
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv()
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

package config

import (
	"net"
	"slices"
	"strings"
	"time"

	"storefront/internal/domain/constants"

	"github.com/pkg/errors"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultBcryptCost         = 10
	defaultAccessTokenTTL     = 7 * 24 * time.Hour
	defaultOtpTTL             = 10 * time.Minute
	defaultVerificationTTL    = 15 * time.Minute
	defaultCartMaxRetries     = 3
	defaultTotalTolerance     = 0.01
)

// applyDefaults fills values the storefront cannot run without.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.OtpTTL <= 0 {
		cfg.Auth.OtpTTL = defaultOtpTTL
	}
	if cfg.Auth.VerificationTTL <= 0 {
		cfg.Auth.VerificationTTL = defaultVerificationTTL
	}
	if cfg.Cart.MaxRetries <= 0 {
		cfg.Cart.MaxRetries = defaultCartMaxRetries
	}
	if cfg.Order.TotalTolerance <= 0 {
		cfg.Order.TotalTolerance = defaultTotalTolerance
	}
	if cfg.SecretKey.Verification == "" {
		cfg.SecretKey.Verification = cfg.SecretKey.Access
	}
}

// Validate rejects settings that would only fail later, at the first request.
func (cfg *Config) Validate() error {
	if cfg.SecretKey.Access == "" {
		return errors.New("secretKey.access must be set")
	}
	if cfg.HTTP.Port < 0 || cfg.HTTP.Port > 65535 {
		return errors.Errorf("http.port %d is out of range", cfg.HTTP.Port)
	}
	for _, cidr := range cfg.HTTP.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return errors.Wrapf(err, "http.trustedProxies entry %q", cidr)
		}
	}
	if cfg.Mail != nil && !slices.Contains([]string{"", constants.MailProviderLog, constants.MailProviderSMTP}, cfg.Mail.Provider) {
		return errors.Errorf("mail.provider %q is not supported", cfg.Mail.Provider)
	}
	if cfg.PubSub != nil && !slices.Contains([]string{"", constants.PubSubProviderLocal, constants.PubSubProviderGoogle}, cfg.PubSub.Provider) {
		return errors.Errorf("pubsub.provider %q is not supported", cfg.PubSub.Provider)
	}

	return nil
}

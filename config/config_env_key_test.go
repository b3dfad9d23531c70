package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"otpTTL":          "10m",
			"verificationTTL": "15m",
		},
		"rateLimit": map[string]any{
			"otpPerMinute": 5,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_OTPTTL", want: "auth.otpTTL"},
		{envKey: "AUTH_VERIFICATIONTTL", want: "auth.verificationTTL"},
		{envKey: "RATELIMIT_OTPPERMINUTE", want: "rateLimit.otpPerMinute"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingValues(t *testing.T) {
	cfg := &Config{}
	cfg.SecretKey.Access = "access-secret"

	applyDefaults(cfg)

	if cfg.Auth.AccessTokenTTL != 7*24*time.Hour {
		t.Fatalf("AccessTokenTTL = %v", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Auth.OtpTTL != 10*time.Minute {
		t.Fatalf("OtpTTL = %v", cfg.Auth.OtpTTL)
	}
	if cfg.Auth.VerificationTTL != 15*time.Minute {
		t.Fatalf("VerificationTTL = %v", cfg.Auth.VerificationTTL)
	}
	if cfg.Cart.MaxRetries != 3 {
		t.Fatalf("MaxRetries = %d", cfg.Cart.MaxRetries)
	}
	if cfg.Order.TotalTolerance != 0.01 {
		t.Fatalf("TotalTolerance = %v", cfg.Order.TotalTolerance)
	}
	if cfg.SecretKey.Verification != "access-secret" {
		t.Fatalf("Verification secret = %q", cfg.SecretKey.Verification)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{BcryptCost: 12, OtpTTL: time.Minute}}
	cfg.Cart.MaxRetries = 5
	cfg.SecretKey.Verification = "ticket-secret"

	applyDefaults(cfg)

	if cfg.Auth.BcryptCost != 12 || cfg.Auth.OtpTTL != time.Minute {
		t.Fatalf("auth config overwritten: %+v", cfg.Auth)
	}
	if cfg.Cart.MaxRetries != 5 {
		t.Fatalf("MaxRetries = %d", cfg.Cart.MaxRetries)
	}
	if cfg.SecretKey.Verification != "ticket-secret" {
		t.Fatalf("Verification secret = %q", cfg.SecretKey.Verification)
	}
}

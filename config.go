package goAuthClient

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

// Config defines a public type used by goAuthClient APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	API     APIConfig
	Guard   GuardConfig
	Notice  NoticeConfig
	Metrics MetricsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig defines a public type used by goAuthClient APIs.
//
// APIConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type APIConfig struct {
	// BaseURL is the remote auth service base path, e.g.
	// "http://localhost:8080/api/auth". Operation paths (/register, /login,
	// /validate) are appended to it.
	BaseURL        string
	RequestTimeout time.Duration
	UserAgent      string
}

/*
====================================
GUARD CONFIG
====================================
*/

// GuardConfig defines a public type used by goAuthClient APIs.
//
// GuardConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type GuardConfig struct {
	// OfflineExpiryCheck skips the /validate round trip when the stored
	// token parses as a JWT whose exp claim has already passed. Off by
	// default: the server stays authoritative unless the integrator opts in.
	OfflineExpiryCheck bool
	// ClockSkew is the grace applied to the offline expiry comparison.
	ClockSkew time.Duration
}

/*
====================================
NOTICE CONFIG
====================================
*/

// NoticeConfig defines a public type used by goAuthClient APIs.
//
// NoticeConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type NoticeConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by goAuthClient APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled bool
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8080/api/auth",
			RequestTimeout: 10 * time.Second,
			UserAgent:      "goAuthClient",
		},
		Guard: GuardConfig{
			OfflineExpiryCheck: false,
			ClockSkew:          30 * time.Second,
		},
		Notice: NoticeConfig{
			Enabled:    true,
			BufferSize: 64,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// DefaultConfig describes the defaultconfig operation and its observable behavior.
//
// DefaultConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func DefaultConfig() Config {
	return defaultConfig()
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
func (c *Config) Validate() error {
	base := strings.TrimSpace(c.API.BaseURL)
	if base == "" {
		return errors.New("api base url required")
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("api base url must be absolute")
	}
	if c.API.RequestTimeout < 0 {
		return errors.New("request timeout must not be negative")
	}
	if c.Notice.Enabled && c.Notice.BufferSize <= 0 {
		return errors.New("notice buffer size must be positive")
	}
	if c.Guard.ClockSkew < 0 {
		return errors.New("guard clock skew must not be negative")
	}
	return nil
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.API.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.API.BaseURL), "/")
	return out
}

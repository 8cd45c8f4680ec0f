package goAuthClient

import (
	"context"
	"errors"
	"net/http"

	"github.com/MrEthical07/goAuthClient/session"
	"go.uber.org/zap"
)

// Builder defines a public type used by goAuthClient APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config

	httpClient *http.Client
	tokens     session.TokenStore
	sink       NoticeSink
	logger     *zap.Logger

	built bool
}

// New describes the new operation and its observable behavior.
//
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBaseURL describes the withbaseurl operation and its observable behavior.
//
// WithBaseURL does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithBaseURL(base string) *Builder {
	b.config.API.BaseURL = base
	b.config = cloneConfig(b.config)
	return b
}

// WithHTTPClient describes the withhttpclient operation and its observable behavior.
//
// WithHTTPClient does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithTokenStore describes the withtokenstore operation and its observable behavior.
//
// WithTokenStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithTokenStore(tokens session.TokenStore) *Builder {
	b.tokens = tokens
	return b
}

// WithNoticeSink describes the withnoticesink operation and its observable behavior.
//
// WithNoticeSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithNoticeSink(sink NoticeSink) *Builder {
	b.sink = sink
	return b
}

// WithLogger describes the withlogger operation and its observable behavior.
//
// WithLogger does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build hydrates the session from the durable token store exactly once.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}
	b.built = true

	if err := b.config.Validate(); err != nil {
		return nil, err
	}

	tokens := b.tokens
	if tokens == nil {
		tokens = session.NewMemoryTokenStore()
	}

	ctx := context.Background()
	if b.config.API.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.config.API.RequestTimeout)
		defer cancel()
	}
	sess, err := session.NewStore(ctx, tokens)
	if err != nil {
		return nil, err
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: b.config.API.RequestTimeout}
	}

	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		config:  b.config,
		http:    httpClient,
		session: sess,
		notices: newNoticeDispatcher(b.config.Notice, b.sink),
		metrics: NewMetrics(b.config.Metrics),
		logger:  logger,
	}, nil
}

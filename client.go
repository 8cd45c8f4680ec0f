package goAuthClient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/MrEthical07/goAuthClient/session"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxErrorBody caps how much of a failure response is read for the "error"
// field. Anything larger is a misbehaving server.
const maxErrorBody = 4 << 10

const (
	registerFallback = "Registration failed"
	loginFallback    = "Login failed"
)

// Client defines a public type used by goAuthClient APIs.
//
// Client instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Client struct {
	config  Config
	http    *http.Client
	session *session.Store
	notices *noticeDispatcher
	metrics *Metrics
	logger  *zap.Logger
}

// Session returns the process-wide session store. Readers observe the
// current state synchronously.
func (c *Client) Session() *session.Store {
	if c == nil {
		return nil
	}
	return c.session
}

// Close describes the close operation and its observable behavior.
//
// Close drains and stops the notice dispatcher. It is safe to call more than once.
func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.notices != nil {
		c.notices.Close()
	}
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	if c == nil || c.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return c.metrics.Snapshot()
}

// NoticesDropped describes the noticesdropped operation and its observable behavior.
//
// NoticesDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) NoticesDropped() uint64 {
	if c == nil || c.notices == nil {
		return 0
	}
	return c.notices.Dropped()
}

func (c *Client) notify(ctx context.Context, level NoticeLevel, message string) {
	c.notices.Emit(ctx, Notice{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
	})
}

// postJSON issues one POST round trip against the configured base URL. The
// caller owns the response body.
func (c *Client) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.API.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	c.decorate(req)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	c.logger.Debug("api request",
		zap.String("path", path),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err),
	)
	return resp, err
}

func (c *Client) decorate(req *http.Request) {
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.config.API.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.API.UserAgent)
	}
}

// decodeErrorMessage pulls the "error" field out of a failure body, falling
// back to the per-operation string when absent or unreadable.
func decodeErrorMessage(r io.Reader, fallback string) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(r, maxErrorBody)).Decode(&body); err == nil && body.Error != "" {
		return body.Error
	}
	return fallback
}

func drainClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
}

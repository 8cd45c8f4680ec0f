package goAuthClient

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate performs one GET /validate round trip with the token attached as
// a bearer credential. Any non-success response, including transport
// failure, is reported as [ErrTokenInvalid]. With
// Config.Guard.OfflineExpiryCheck enabled, a token that parses as a JWT
// whose exp claim already passed is rejected without a round trip.
func (c *Client) Validate(ctx context.Context, token string) error {
	if c == nil {
		return ErrClientNotReady
	}
	if token == "" {
		return ErrNoToken
	}

	if c.config.Guard.OfflineExpiryCheck && tokenExpiredLocally(token, c.config.Guard.ClockSkew) {
		c.metrics.Inc(MetricValidateSkippedExpired)
		return ErrTokenInvalid
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.API.BaseURL+"/validate", nil)
	if err != nil {
		return ErrTokenInvalid
	}
	c.decorate(req)
	req.Header.Set("Authorization", "Bearer "+token)

	c.metrics.Inc(MetricValidateIssued)
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.Inc(MetricValidateInvalid)
		return ErrTokenInvalid
	}
	defer drainClose(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.Inc(MetricValidateInvalid)
		return ErrTokenInvalid
	}
	return nil
}

// tokenExpiredLocally reports whether token is a readable JWT with an exp
// claim more than skew in the past. The signature is not checked here;
// a token that is not a JWT at all is left for the server to judge.
func tokenExpiredLocally(token string, skew time.Duration) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().After(exp.Add(skew))
}

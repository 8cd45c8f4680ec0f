package goAuthClient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// Login describes the login operation and its observable behavior.
//
// Login may return an error when input validation, dependency calls, or security checks fail.
// Login performs one POST /login round trip and returns the bearer token on
// success. Committing the token to the session store is the caller's job;
// [Client.SubmitLogin] does both.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	if c == nil {
		return "", ErrClientNotReady
	}

	resp, err := c.postJSON(ctx, "/login", creds)
	if err != nil {
		return "", &RequestError{Op: "login", Message: loginFallback}
	}
	defer drainClose(resp)

	if resp.StatusCode != http.StatusOK {
		return "", &RequestError{
			Op:         "login",
			StatusCode: resp.StatusCode,
			Message:    decodeErrorMessage(resp.Body, loginFallback),
		}
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body); err != nil || body.Token == "" {
		return "", &RequestError{Op: "login", StatusCode: resp.StatusCode, Message: loginFallback}
	}

	return body.Token, nil
}

// SubmitLogin describes the submitlogin operation and its observable behavior.
//
// SubmitLogin may return an error when input validation, dependency calls, or security checks fail.
// SubmitLogin runs the full form protocol: the loading gate, the login round
// trip, token commit to the session store, notices, and the navigation
// decision. A second submission while one is in flight returns
// [ErrRequestInFlight] without issuing a request.
func (c *Client) SubmitLogin(ctx context.Context, creds Credentials) (SubmitResult, error) {
	if c == nil {
		return SubmitResult{}, ErrClientNotReady
	}

	if !c.session.TryBeginRequest() {
		return SubmitResult{}, ErrRequestInFlight
	}
	defer c.session.EndRequest()

	token, err := c.Login(ctx, creds)
	if err != nil {
		msg := requestMessage(err, loginFallback)
		c.session.SetError(msg)
		c.metrics.Inc(MetricLoginFailure)
		c.notify(ctx, NoticeError, msg)
		c.logger.Warn("login failed", zap.String("message", msg))
		return SubmitResult{Message: msg}, err
	}

	if err := c.session.SetToken(ctx, token); err != nil {
		// Memory state is committed; only durable persistence failed. The
		// session stays usable for this process.
		c.logger.Warn("token persistence failed", zap.Error(err))
	}
	c.session.ClearError()
	c.metrics.Inc(MetricLoginSuccess)
	c.notify(ctx, NoticeSuccess, "Login successful!")
	return SubmitResult{Navigate: RouteDashboard}, nil
}

// Logout describes the logout operation and its observable behavior.
//
// Logout may return an error when input validation, dependency calls, or security checks fail.
// Logout clears the session token from memory and durable storage, emits a
// success notice, and returns the login route. It is idempotent.
func (c *Client) Logout(ctx context.Context) (SubmitResult, error) {
	if c == nil {
		return SubmitResult{}, ErrClientNotReady
	}

	if err := c.session.ClearToken(ctx); err != nil {
		c.logger.Warn("token clear failed", zap.Error(err))
	}
	c.metrics.Inc(MetricLogout)
	c.notify(ctx, NoticeSuccess, "Logged out successfully!")
	return SubmitResult{Navigate: RouteLogin}, nil
}

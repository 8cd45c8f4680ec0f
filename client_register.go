package goAuthClient

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// Register describes the register operation and its observable behavior.
//
// Register may return an error when input validation, dependency calls, or security checks fail.
// Register performs one POST /register round trip and has no local side effects; account creation happens on the server.
func (c *Client) Register(ctx context.Context, profile RegistrationProfile) error {
	if c == nil {
		return ErrClientNotReady
	}

	resp, err := c.postJSON(ctx, "/register", profile)
	if err != nil {
		return &RequestError{Op: "register", Message: registerFallback}
	}
	defer drainClose(resp)

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		return nil
	}

	return &RequestError{
		Op:         "register",
		StatusCode: resp.StatusCode,
		Message:    decodeErrorMessage(resp.Body, registerFallback),
	}
}

// SubmitRegistration describes the submitregistration operation and its observable behavior.
//
// SubmitRegistration may return an error when input validation, dependency calls, or security checks fail.
// SubmitRegistration runs the full form protocol: field validation (aborting
// with per-field messages and no request when any rule fails), the loading
// gate, the register round trip, notices, and the navigation decision.
func (c *Client) SubmitRegistration(ctx context.Context, profile RegistrationProfile) (SubmitResult, error) {
	if c == nil {
		return SubmitResult{}, ErrClientNotReady
	}

	outcome := ValidateForm(profile)
	if !outcome.IsValid {
		c.metrics.Inc(MetricRegisterValidationRejected)
		return SubmitResult{Fields: outcome.Errors}, ErrValidationFailed
	}

	if !c.session.TryBeginRequest() {
		return SubmitResult{}, ErrRequestInFlight
	}
	defer c.session.EndRequest()

	if err := c.Register(ctx, profile); err != nil {
		msg := requestMessage(err, registerFallback)
		c.session.SetError(msg)
		c.metrics.Inc(MetricRegisterFailure)
		c.notify(ctx, NoticeError, msg)
		c.logger.Warn("registration failed", zap.String("message", msg))
		return SubmitResult{Message: msg}, err
	}

	c.session.ClearError()
	c.metrics.Inc(MetricRegisterSuccess)
	c.notify(ctx, NoticeSuccess, "Registration successful!")
	return SubmitResult{Navigate: RouteLogin}, nil
}

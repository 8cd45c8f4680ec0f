// Package goAuthClient provides a client for bearer-token authentication
// services: registration, login, token validation, durable token storage,
// and the flows that gate protected views behind validation.
//
// The package is the client-side counterpart to a goAuth-style server. A
// [Client] is configured once through [Builder.Build] and is then safe for
// concurrent use. Session state (token, loading flag, last error) lives in
// a single [session.Store]; durable persistence goes through the
// session.TokenStore port with file-backed and Redis-backed
// implementations.
//
// # Architecture boundaries
//
// goAuthClient is the public surface. It exposes [Client], [Builder],
// [Config], the validation rules, and value types (Notice, SubmitResult,
// MetricsSnapshot). The route-guard state machine lives in guard/ and the
// session state in session/; both consume the root package only through
// narrow interfaces. The terminal UI under tui/ is a consumer of the
// library, never a dependency of it.
//
// # What this package must NOT do
//
//   - Hash or otherwise process passwords locally. Credentials transit to
//     the server verbatim over the configured transport.
//   - Retry failed requests. Every failure resolves to a message or a
//     redirect decision exactly once.
//   - Interpret token contents beyond the optional offline expiry check.
//     The token is opaque; the server's /validate endpoint is authoritative.
//
// # Submission contract
//
// SubmitRegistration and SubmitLogin implement the shared form protocol:
// local validation first (registration only, no request on failure), a
// single in-flight request enforced by the session loading flag, notices on
// both outcomes, and a navigation decision returned to the caller. Duplicate
// submissions while a request is in flight are rejected with
// [ErrRequestInFlight] and observably do nothing.
package goAuthClient

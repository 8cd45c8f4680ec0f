// Package guard implements the route-guard state machine that gates
// protected views behind asynchronous token validation.
//
// # State machine
//
// Each navigation runs one check: CHECKING, then exactly one of AUTHORIZED
// or UNAUTHORIZED. No token resolves to UNAUTHORIZED immediately, with no
// network call. A present token costs one validate round trip; any failure
// clears the session token before resolving UNAUTHORIZED, so recovery is a
// redirect, never a user-visible error. The machine is re-entrant: callers
// restart it from CHECKING whenever the observed token changes.
//
// # Supersession
//
// A validation in flight races only against token changes. The guard
// snapshots the session generation before the round trip and refuses to
// commit a result taken against a stale token: the resolution comes back
// with Superseded set and must be discarded by the caller, who restarts
// the check.
//
// # Architecture boundaries
//
// This package translates session state into an access decision. It does
// NOT issue HTTP itself (delegated to the Validator), mutate session state
// beyond clearing a rejected token, or know about routes and rendering.
package guard

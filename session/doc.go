// Package session provides the process-wide authentication session state:
// the current bearer token, the loading flag, and the last error message.
//
// # State and persistence
//
// The [Store] is the single source of truth. Readers observe the current
// state synchronously; writers go through defined mutators (SetToken,
// ClearToken, SetLoading, SetError). Durable persistence is a port, the
// [TokenStore] interface, invoked by the mutators after the in-memory
// transition commits, with file-backed, Redis-backed, and in-memory
// implementations. Storage holds exactly one value: the raw token string,
// last-write-wins.
//
// # Supersession
//
// Every token transition bumps a monotonically increasing generation
// counter. Asynchronous consumers (the route guard) snapshot the generation
// before a validation round trip and discard the result if the generation
// moved while the request was in flight.
//
// # Architecture boundaries
//
// This package owns session state and its persistence port. It does NOT
// issue network requests, interpret tokens, or decide navigation; those
// responsibilities belong to the client and the guard.
//
// # What this package must NOT do
//
//   - Import goAuthClient or guard (no upward imports).
//   - Persist anything beyond the single token value.
//   - Block readers on durable storage I/O.
package session

package guard

import "context"

// State is the resolution state of one guarded navigation.
type State uint8

const (
	// Checking is an exported constant or variable used by the route guard.
	Checking State = iota
	// Authorized is an exported constant or variable used by the route guard.
	Authorized
	// Unauthorized is an exported constant or variable used by the route guard.
	Unauthorized
)

func (s State) String() string {
	switch s {
	case Authorized:
		return "authorized"
	case Unauthorized:
		return "unauthorized"
	default:
		return "checking"
	}
}

// Validator is the slice of the API client the guard needs: one bearer
// validation round trip where any error means "invalid".
type Validator interface {
	Validate(ctx context.Context, token string) error
}

// Session is the slice of the session store the guard needs.
type Session interface {
	Token() (string, bool)
	Generation() uint64
	ClearToken(ctx context.Context) error
}

// Resolution is the outcome of one check. When Superseded is set the token
// changed while the validation was in flight; State is Checking and the
// caller must discard the result and restart.
type Resolution struct {
	State      State
	Superseded bool
}

// Guard defines a public type used by goAuthClient APIs.
//
// Guard instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Guard struct {
	validator Validator
	session   Session
}

// New describes the new operation and its observable behavior.
//
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New(validator Validator, session Session) *Guard {
	return &Guard{validator: validator, session: session}
}

// Resolve runs one navigation's check to completion. Single validation
// call, no retries, no timeout beyond the transport's own.
func (g *Guard) Resolve(ctx context.Context) Resolution {
	token, ok := g.session.Token()
	if !ok {
		return Resolution{State: Unauthorized}
	}

	gen := g.session.Generation()
	err := g.validator.Validate(ctx, token)

	if g.session.Generation() != gen {
		// The token changed under us; this result belongs to a session
		// that no longer exists.
		return Resolution{State: Checking, Superseded: true}
	}

	if err != nil {
		_ = g.session.ClearToken(ctx)
		return Resolution{State: Unauthorized}
	}
	return Resolution{State: Authorized}
}

// Start runs Resolve on its own goroutine for event-loop callers. The
// channel delivers exactly one resolution and is buffered, so an abandoned
// result never leaks the goroutine.
func (g *Guard) Start(ctx context.Context) <-chan Resolution {
	ch := make(chan Resolution, 1)
	go func() {
		ch <- g.Resolve(ctx)
	}()
	return ch
}

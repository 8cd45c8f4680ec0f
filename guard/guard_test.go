package guard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type fakeSession struct {
	token   string
	gen     atomic.Uint64
	cleared atomic.Int64
}

func (f *fakeSession) Token() (string, bool) { return f.token, f.token != "" }
func (f *fakeSession) Generation() uint64    { return f.gen.Load() }
func (f *fakeSession) ClearToken(context.Context) error {
	f.token = ""
	f.gen.Add(1)
	f.cleared.Add(1)
	return nil
}

type fakeValidator struct {
	calls      atomic.Int64
	err        error
	onValidate func()
}

func (f *fakeValidator) Validate(_ context.Context, _ string) error {
	f.calls.Add(1)
	if f.onValidate != nil {
		f.onValidate()
	}
	return f.err
}

func TestResolveNoTokenIsUnauthorizedWithoutNetwork(t *testing.T) {
	v := &fakeValidator{}
	g := New(v, &fakeSession{})

	res := g.Resolve(context.Background())
	if res.State != Unauthorized || res.Superseded {
		t.Fatalf("resolution = %+v", res)
	}
	if v.calls.Load() != 0 {
		t.Fatalf("validator called %d times", v.calls.Load())
	}
}

func TestResolveValidTokenIsAuthorized(t *testing.T) {
	sess := &fakeSession{token: "tok"}
	g := New(&fakeValidator{}, sess)

	res := g.Resolve(context.Background())
	if res.State != Authorized || res.Superseded {
		t.Fatalf("resolution = %+v", res)
	}
	if sess.cleared.Load() != 0 {
		t.Fatal("valid token was cleared")
	}
}

func TestResolveInvalidTokenClearsSession(t *testing.T) {
	sess := &fakeSession{token: "tok"}
	g := New(&fakeValidator{err: errors.New("401")}, sess)

	res := g.Resolve(context.Background())
	if res.State != Unauthorized || res.Superseded {
		t.Fatalf("resolution = %+v", res)
	}
	if sess.cleared.Load() != 1 {
		t.Fatalf("cleared %d times, want 1", sess.cleared.Load())
	}
}

func TestResolveSupersededByTokenChange(t *testing.T) {
	sess := &fakeSession{token: "tok"}
	v := &fakeValidator{err: errors.New("401")}
	// The session mutates mid-flight: the stale result must not clear it.
	v.onValidate = func() { sess.gen.Add(1) }
	g := New(v, sess)

	res := g.Resolve(context.Background())
	if !res.Superseded || res.State != Checking {
		t.Fatalf("resolution = %+v", res)
	}
	if sess.cleared.Load() != 0 {
		t.Fatalf("superseded result cleared the session %d times", sess.cleared.Load())
	}
}

func TestStartDeliversOneResolution(t *testing.T) {
	g := New(&fakeValidator{}, &fakeSession{token: "tok"})

	select {
	case res := <-g.Start(context.Background()):
		if res.State != Authorized {
			t.Fatalf("resolution = %+v", res)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no resolution delivered")
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		Checking:     "checking",
		Authorized:   "authorized",
		Unauthorized: "unauthorized",
		State(99):    "checking",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Fatalf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}

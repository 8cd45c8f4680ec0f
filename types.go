package goAuthClient

// Credentials carries one login submission. It is transient: held for the
// duration of the request and never persisted anywhere.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegistrationProfile carries one registration submission. Field names match
// the JSON body of POST /register and the keys of [FieldErrors].
type RegistrationProfile struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// FieldErrors maps profile field names to validation messages. An absent or
// empty entry means the field passed its rule.
type FieldErrors map[string]string

// HasErrors reports whether any field carries a non-empty message.
func (f FieldErrors) HasErrors() bool {
	for _, msg := range f {
		if msg != "" {
			return true
		}
	}
	return false
}

// ValidationResult is the derived outcome of running every field rule over a
// profile. It is never persisted.
type ValidationResult struct {
	IsValid bool
	Errors  FieldErrors
}

// Route identifies a client navigation target.
//
// Route instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Route string

const (
	// RouteNone is an exported constant or variable used by the authentication client.
	RouteNone Route = ""
	// RouteRegister is an exported constant or variable used by the authentication client.
	RouteRegister Route = "/"
	// RouteLogin is an exported constant or variable used by the authentication client.
	RouteLogin Route = "/login"
	// RouteDashboard is an exported constant or variable used by the authentication client.
	RouteDashboard Route = "/dashboard"
)

// SubmitResult is returned by the form-flow operations. Navigate is
// RouteNone when the submission failed; Message is the inline error text;
// Fields carries per-field validation messages for registration aborts.
type SubmitResult struct {
	Navigate Route
	Message  string
	Fields   FieldErrors
}

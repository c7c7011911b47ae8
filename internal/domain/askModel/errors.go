package askModel

import "fmt"

// ErrorKind is the stable, user-facing failure taxonomy. Every failure that
// can reach a caller is one of these - raw provider errors never leave the
// adapter layer.
type ErrorKind string

const (
	Unauthenticated     ErrorKind = "UNAUTHENTICATED"
	TenantUnresolved    ErrorKind = "TENANT_UNRESOLVED"
	InvalidInput        ErrorKind = "INVALID_INPUT"
	StoreUnavailable    ErrorKind = "STORE_UNAVAILABLE"
	ServiceUnconfigured ErrorKind = "SERVICE_UNCONFIGURED"
	InvalidCredential   ErrorKind = "INVALID_CREDENTIAL"
	RateLimited         ErrorKind = "RATE_LIMITED"
	ServiceUnavailable  ErrorKind = "SERVICE_UNAVAILABLE"
)

// Retryable reports whether a caller may retry the same request unchanged.
func (k ErrorKind) Retryable() bool {
	return k == RateLimited || k == ServiceUnavailable || k == StoreUnavailable
}

type AskError struct {
	Kind ErrorKind
	Err  error //underlying cause, for logs only
}

func (e *AskError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *AskError) Unwrap() error {
	return e.Err
}

func NewAskError(kind ErrorKind, cause error) *AskError {
	return &AskError{Kind: kind, Err: cause}
}

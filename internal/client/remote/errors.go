package remote

import "errors"

// Sentinel errors forming the collaborator error-code contract.
// Connectivity-class errors mean the tier could not be consulted at all;
// credential-class errors mean the tier answered and rejected the
// credentials. The credential resolver falls through only on the latter.
var (
	// Connectivity class.
	ErrUnavailable  = errors.New("remote service unavailable")
	ErrOriginDenied = errors.New("origin not authorized")

	// Credential class.
	ErrInvalidCredential = errors.New("invalid credential")
	ErrAccountNotFound   = errors.New("account not found")

	// Registration.
	ErrEmailInUse = errors.New("email already registered")
)

// IsConnectivity reports whether err means the remote tier was
// unreachable or rejected the caller outright, as opposed to rejecting
// the supplied credentials.
func IsConnectivity(err error) bool {
	return errors.Is(err, ErrUnavailable) || errors.Is(err, ErrOriginDenied)
}

// IsCredential reports whether err is a credential-class rejection.
func IsCredential(err error) bool {
	return errors.Is(err, ErrInvalidCredential) || errors.Is(err, ErrAccountNotFound)
}

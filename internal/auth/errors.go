package auth

import "errors"

// The error texts below are part of the public API contract: the HTTP boundary
// surfaces them verbatim inside the response envelope. Identity-specific errors
// are wrapped as fmt.Errorf("%s %w", identity, err) so the final message reads
// "<email> is not found" while errors.Is keeps working.
var (
	// Token verification failures, mutually exclusive.
	ErrDifferentSignature = errors.New("signature key is different")
	ErrTokenExpired       = errors.New("expired token")
	ErrTokenMalformed     = errors.New("malformed token")
	ErrIllegalToken       = errors.New("using illegal token like null")

	// Reissue pre-checks.
	ErrInvalidGrantType = errors.New("invalid grant type")
	ErrClaimNotFound    = errors.New("claim not exist in token")

	// Credential and registration failures.
	ErrPasswordMismatch = errors.New("password does not match")
	ErrNotFound         = errors.New("is not found")
	ErrDuplicatedEmail  = errors.New("duplicated email")
)

// IsTokenInvalid reports whether err is any of the token verification failures.
// The authentication pipeline uses it to decide that a request proceeds
// anonymously instead of propagating the error.
func IsTokenInvalid(err error) bool {
	return errors.Is(err, ErrDifferentSignature) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenMalformed) ||
		errors.Is(err, ErrIllegalToken) ||
		errors.Is(err, ErrInvalidGrantType) ||
		errors.Is(err, ErrClaimNotFound)
}

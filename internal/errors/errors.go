package gerr

import "errors"

// Shared error values. The HTTP layer maps these onto status codes; every
// error is terminal for the request.
var (
	// ErrUnauthenticated means the bearer credential is absent or invalid.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrNotFound covers both a missing record and a record owned by another
	// user. The two are deliberately indistinguishable so that the existence
	// of other users' sources and reports does not leak.
	ErrNotFound = errors.New("source or report not found")

	// ErrMissingCredentials means the source exists but carries no usable
	// credential payload.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrMissingSource means no source id is available after resolution.
	ErrMissingSource = errors.New("no source selected")

	// ErrMalformedRequest covers absent or invalid required fields.
	ErrMalformedRequest = errors.New("malformed request")

	// ErrAlreadyExists is returned on unique key conflicts (user email).
	ErrAlreadyExists = errors.New("already exists")

	// ErrUpstream is reserved for failures of the external analytics API.
	ErrUpstream = errors.New("upstream analytics failure")
)

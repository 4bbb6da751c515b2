package errors

import "errors"

// Error taxonomy shared by every endpoint. The sentinel text doubles as the client-facing message.
var (
	// ErrBadRequest covers malformed or ambiguous payloads, missing fields and wrong types.
	ErrBadRequest = errors.New("bad request")
	// ErrNotFound covers unknown ids and pages past the end of the question list.
	ErrNotFound = errors.New("resource not found")
	// ErrUnprocessable covers well-formed requests that name something that does not exist
	// or cannot be changed.
	ErrUnprocessable = errors.New("unprocessable")
)

// MessageInternal replaces the details of every 5xx failure.
const MessageInternal = "internal server error"

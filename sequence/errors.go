package sequence

import "github.com/pkg/errors"

// Errors returned by sequences and stores. Returned errors may wrap these
// values with additional context and should be tested with errors.Is.
var (
	// ErrInvalidArgument is returned when a negative capacity is requested.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is returned when the cursor cannot move because
	// there is no current element.
	ErrInvalidState = errors.New("invalid state")

	// ErrKeyNotFound is returned by a Store when a key does not exist.
	ErrKeyNotFound = errors.New("key does not exist")

	// ErrUnknownStatement is returned by a Store for an unsupported statement type.
	ErrUnknownStatement = errors.New("unknown statement type")
)

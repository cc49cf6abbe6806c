package engine

import (
	"fmt"

	"github.com/mihaianh/wedding_backend/models"
)

// ValidationError reports a missing or malformed request field. The client
// must fix the request; the server never retries.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid field: %s", e.Field)
}

// NotFoundError reports an unresolvable invite code. Malformed, absent and
// retired codes all produce the same error and message.
type NotFoundError struct{}

func (e *NotFoundError) Error() string {
	return "invalid invite code"
}

// ForbiddenError reports a valid code used for a location it is not
// entitled to.
type ForbiddenError struct {
	Location models.Location
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("this code does not grant access to %s", e.Location)
}

// RepositoryError wraps a storage failure. The whole submission is safe to
// retry: the write is an upsert keyed per guest.
type RepositoryError struct {
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("storage failure: %v", e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

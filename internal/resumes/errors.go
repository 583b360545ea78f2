package resumes

import "errors"

var (
	// ErrNotFound indicates the resume id is not in the store.
	ErrNotFound = errors.New("resume not found")

	// ErrStoreFailure wraps durable backend faults.
	ErrStoreFailure = errors.New("store failure")
)

package enhance

import "errors"

var (
	// ErrInvalidInput indicates the request content was empty after trimming.
	ErrInvalidInput = errors.New("content cannot be empty")

	// ErrEnhancementFailed wraps any unexpected fault while enhancing.
	ErrEnhancementFailed = errors.New("enhancement failed")
)

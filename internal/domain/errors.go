package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrInvalidURL indicates an input URL with fewer than two path segments
	ErrInvalidURL = errors.New("invalid URL")

	// ErrNotFound indicates the raw-content endpoint returned 404
	ErrNotFound = errors.New("not found")

	// ErrReadmeMissing indicates a clone succeeded but contained no README
	ErrReadmeMissing = errors.New("README.md not found in the repository")

	// ErrRateLimited indicates rate limiting was encountered
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout indicates a timeout occurred
	ErrTimeout = errors.New("timeout")
)

// FetchError represents an error during the raw-content fetch
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError
func NewFetchError(url string, statusCode int, err error) *FetchError {
	return &FetchError{
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}

// CloneError represents a failed shallow-clone fallback
type CloneError struct {
	URL string
	Err error
}

func (e *CloneError) Error() string {
	return fmt.Sprintf("Error cloning repository: %v", e.Err)
}

func (e *CloneError) Unwrap() error {
	return e.Err
}

// NewCloneError creates a new CloneError
func NewCloneError(url string, err error) *CloneError {
	return &CloneError{URL: url, Err: err}
}

// RetryableError indicates an error that can be retried
type RetryableError struct {
	Err        error
	RetryAfter int // seconds to wait before retry, 0 if unknown
}

func (e *RetryableError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("retryable error (retry after %ds): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("retryable error: %v", e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// IsRetryable checks if an error should be retried
func IsRetryable(err error) bool {
	var retryable *RetryableError
	if errors.As(err, &retryable) {
		return true
	}

	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		switch fetchErr.StatusCode {
		case 429, 502, 503, 504:
			return true
		}
	}

	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrTimeout)
}

// ErrorDetail renders an error the way it appears in the download report
func ErrorDetail(err error) string {
	if err == nil {
		return ""
	}

	var cloneErr *CloneError
	if errors.As(err, &cloneErr) {
		return cloneErr.Error()
	}

	if errors.Is(err, ErrReadmeMissing) {
		return ErrReadmeMissing.Error()
	}

	var fetchErr *FetchError
	if errors.As(err, &fetchErr) && fetchErr.StatusCode > 0 {
		return fmt.Sprintf("HTTP Error: %d", fetchErr.StatusCode)
	}

	return err.Error()
}

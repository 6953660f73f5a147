package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorDetail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "http status error",
			err:  NewFetchError("https://raw.example.com/x", 500, fmt.Errorf("HTTP 500")),
			want: "HTTP Error: 500",
		},
		{
			name: "http status error wrapped in retryable",
			err: &RetryableError{
				Err: NewFetchError("https://raw.example.com/x", 503, fmt.Errorf("HTTP 503")),
			},
			want: "HTTP Error: 503",
		},
		{
			name: "clone failure",
			err:  NewCloneError("https://github.com/acme/widget", errors.New("authentication required")),
			want: "Error cloning repository: authentication required",
		},
		{
			name: "readme missing after clone",
			err:  ErrReadmeMissing,
			want: "README.md not found in the repository",
		},
		{
			name: "invalid URL",
			err:  fmt.Errorf("%w: not-a-url", ErrInvalidURL),
			want: "invalid URL: not-a-url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ErrorDetail(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limited status", NewFetchError("u", 429, errors.New("HTTP 429")), true},
		{"bad gateway", NewFetchError("u", 502, errors.New("HTTP 502")), true},
		{"service unavailable", NewFetchError("u", 503, errors.New("HTTP 503")), true},
		{"gateway timeout", NewFetchError("u", 504, errors.New("HTTP 504")), true},
		{"server error is terminal", NewFetchError("u", 500, errors.New("HTTP 500")), false},
		{"forbidden is terminal", NewFetchError("u", 403, errors.New("HTTP 403")), false},
		{"explicit retryable wrapper", &RetryableError{Err: errors.New("x")}, true},
		{"not found", ErrNotFound, false},
		{"timeout sentinel", ErrTimeout, true},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestOutcomeSuccess(t *testing.T) {
	t.Parallel()

	assert.True(t, Outcome{Status: StatusSuccess}.Success())
	assert.False(t, Outcome{Status: StatusFailed}.Success())
}

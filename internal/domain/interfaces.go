package domain

import "context"

// ReadmeSource retrieves a repository's README content.
// Implementations return ErrNotFound (possibly wrapped) when the source has
// no README for the repository, so callers can fall through to another
// source; any other error is terminal for that source.
type ReadmeSource interface {
	// Name returns the source name ("raw", "clone")
	Name() string
	// FetchReadme retrieves the README content for a repository
	FetchReadme(ctx context.Context, ref RepoRef) ([]byte, error)
}

// Writer persists downloaded README files and the run report
type Writer interface {
	// WriteReadme writes a repository's README verbatim as <name>.md
	WriteReadme(name string, content []byte) error
	// WriteReport writes the run report, overwriting any prior one
	WriteReport(text string) (string, error)
}

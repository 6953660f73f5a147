package utils

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/quantmind-br/readmedl-go/internal/domain"
)

// ParseRepoURL extracts owner and repository name from a repository URL.
// The path is stripped of leading/trailing slashes and split on "/"; the
// last two segments are owner and name, in that order. Fewer than two
// segments is an invalid URL. No further validation is applied.
func ParseRepoURL(rawURL string) (domain.RepoRef, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return domain.RepoRef{}, fmt.Errorf("%w: %s", domain.ErrInvalidURL, rawURL)
	}

	path := strings.Trim(u.Path, "/")
	if path == "" {
		return domain.RepoRef{}, fmt.Errorf("%w: %s", domain.ErrInvalidURL, rawURL)
	}

	segments := strings.Split(path, "/")
	if len(segments) < 2 {
		return domain.RepoRef{}, fmt.Errorf("%w: %s", domain.ErrInvalidURL, rawURL)
	}

	return domain.RepoRef{
		Owner: segments[len(segments)-2],
		Name:  segments[len(segments)-1],
		URL:   rawURL,
	}, nil
}

// RawContentURL builds the direct raw-content address for a repository file
func RawContentURL(baseURL string, ref domain.RepoRef, branch, filename string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s",
		strings.TrimSuffix(baseURL, "/"), ref.Owner, ref.Name, branch, filename)
}

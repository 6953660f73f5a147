package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/quantmind-br/readmedl-go/internal/domain"
	"github.com/quantmind-br/readmedl-go/internal/utils"
)

// Cloner retrieves a README by shallow-cloning the repository into a
// scratch directory under the output folder. It implements
// domain.ReadmeSource and is used as the fallback when the raw-content
// fetch returns not-found.
type Cloner struct {
	outputDir  string
	branch     string
	readmeName string
	depth      int
	token      string
	logger     *utils.Logger
}

// ClonerOptions contains options for creating a Cloner
type ClonerOptions struct {
	OutputDir  string
	Branch     string
	ReadmeName string
	Depth      int
	Token      string
	Logger     *utils.Logger
}

// NewCloner creates a new Cloner
func NewCloner(opts ClonerOptions) *Cloner {
	if opts.ReadmeName == "" {
		opts.ReadmeName = "README.md"
	}

	return &Cloner{
		outputDir:  opts.OutputDir,
		branch:     opts.Branch,
		readmeName: opts.ReadmeName,
		depth:      opts.Depth,
		token:      opts.Token,
		logger:     opts.Logger,
	}
}

// Name returns the source name
func (c *Cloner) Name() string {
	return "clone"
}

// ScratchDir returns the scratch directory used for a repository's clone
func (c *Cloner) ScratchDir(ref domain.RepoRef) string {
	return filepath.Join(c.outputDir, "temp_"+ref.Name)
}

// FetchReadme shallow-clones the repository and extracts the README.
// The scratch directory is removed on every exit path once it has been
// created. One attempt only; the clone itself is never retried.
func (c *Cloner) FetchReadme(ctx context.Context, ref domain.RepoRef) ([]byte, error) {
	scratch := c.ScratchDir(ref)
	if err := os.MkdirAll(scratch, 0755); err != nil {
		return nil, domain.NewCloneError(ref.URL, fmt.Errorf("failed to create scratch directory: %w", err))
	}
	defer os.RemoveAll(scratch)

	if c.logger != nil {
		c.logger.Debug().Str("url", ref.URL).Str("scratch", scratch).Msg("Cloning repository")
	}

	cloneOpts := &gogit.CloneOptions{
		URL:          ref.URL,
		Depth:        c.depth,
		SingleBranch: true,
	}
	if c.branch != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(c.branch)
	}
	if c.token != "" {
		cloneOpts.Auth = &githttp.BasicAuth{
			Username: "token",
			Password: c.token,
		}
	}

	if _, err := gogit.PlainCloneContext(ctx, scratch, false, cloneOpts); err != nil {
		return nil, domain.NewCloneError(ref.URL, err)
	}

	readmePath := filepath.Join(scratch, c.readmeName)
	content, err := os.ReadFile(readmePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrReadmeMissing
		}
		return nil, domain.NewCloneError(ref.URL, err)
	}

	return content, nil
}

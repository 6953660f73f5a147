package app

import (
	"context"
	"errors"
	"strings"

	"github.com/quantmind-br/readmedl-go/internal/domain"
	"github.com/quantmind-br/readmedl-go/internal/utils"
)

// Runner drives the batch: it iterates the input URLs in order, invokes
// the direct source and the clone fallback per entry, writes README files
// on success, and accumulates one Outcome per URL. It is pure with respect
// to configuration: everything it needs arrives resolved through
// RunnerOptions, and it never reads standard input.
type Runner struct {
	direct   domain.ReadmeSource
	fallback domain.ReadmeSource
	writer   domain.Writer
	logger   *utils.Logger
	progress bool
}

// RunnerOptions contains options for creating a Runner
type RunnerOptions struct {
	Direct   domain.ReadmeSource
	Fallback domain.ReadmeSource
	Writer   domain.Writer
	Logger   *utils.Logger
	Progress bool
}

// NewRunner creates a new batch runner
func NewRunner(opts RunnerOptions) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}

	return &Runner{
		direct:   opts.Direct,
		fallback: opts.Fallback,
		writer:   opts.Writer,
		logger:   logger.WithComponent("runner"),
		progress: opts.Progress,
	}
}

// Run processes every URL sequentially and returns one Outcome per input
// URL, in input order. A failing URL never aborts the batch; only context
// cancellation stops processing early, and even then each started entry
// runs to completion.
func (r *Runner) Run(ctx context.Context, urls []string) []domain.Outcome {
	total := len(urls)
	outcomes := make([]domain.Outcome, 0, total)

	var bar interface{ Add(int) error }
	if r.progress {
		bar = utils.NewProgressBar(total, utils.DescDownloading)
	}

	for i, rawURL := range urls {
		if ctx.Err() != nil {
			r.logger.Warn().Int("remaining", total-i).Msg("Batch cancelled")
			break
		}

		url := strings.TrimSpace(rawURL)
		r.logger.Info().Int("index", i+1).Int("total", total).Str("url", url).Msg("Processing URL")

		outcomes = append(outcomes, r.processURL(ctx, url))

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return outcomes
}

// processURL runs the per-URL state machine: parse, direct fetch, then
// clone fallback on not-found only.
func (r *Runner) processURL(ctx context.Context, url string) domain.Outcome {
	ref, err := utils.ParseRepoURL(url)
	if err != nil {
		r.logger.Warn().Str("url", url).Msg("Invalid URL format")
		return domain.Outcome{
			SourceURL:   url,
			Status:      domain.StatusFailed,
			ErrorDetail: err.Error(),
		}
	}

	log := r.logger.WithRepo(ref.Name)
	log.Info().Msg("Processing repository")

	content, err := r.direct.FetchReadme(ctx, ref)
	if err == nil {
		return r.writeReadme(ref, content, log)
	}

	if !errors.Is(err, domain.ErrNotFound) {
		log.Warn().Err(err).Msg("Direct fetch failed")
		return r.failed(ref, err)
	}

	// 404 on the raw endpoint; the repository may be private or use a
	// different default branch
	log.Info().Msg("Public README not found, attempting to clone")

	content, err = r.fallback.FetchReadme(ctx, ref)
	if err != nil {
		log.Warn().Err(err).Msg("Clone fallback failed")
		return r.failed(ref, err)
	}

	outcome := r.writeReadme(ref, content, log)
	if outcome.Success() {
		log.Info().Msg("Cloned and extracted README")
	}
	return outcome
}

// writeReadme persists the README and builds the success outcome
func (r *Runner) writeReadme(ref domain.RepoRef, content []byte, log *utils.Logger) domain.Outcome {
	if err := r.writer.WriteReadme(ref.Name, content); err != nil {
		log.Error().Err(err).Msg("Failed to write README file")
		return r.failed(ref, err)
	}

	log.Info().Str("file", ref.Name+".md").Msg("Downloaded README")
	return domain.Outcome{
		RepoName:  ref.Name,
		SourceURL: ref.URL,
		Status:    domain.StatusSuccess,
	}
}

// failed builds a failed outcome with the report-facing error detail
func (r *Runner) failed(ref domain.RepoRef, err error) domain.Outcome {
	return domain.Outcome{
		RepoName:    ref.Name,
		SourceURL:   ref.URL,
		Status:      domain.StatusFailed,
		ErrorDetail: domain.ErrorDetail(err),
	}
}

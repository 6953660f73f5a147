package app

import (
	"fmt"
	"strings"

	"github.com/quantmind-br/readmedl-go/internal/domain"
)

// Summarize folds the outcome sequence into totals. Everything that is
// not a success counts as failed, invalid URLs included.
func Summarize(outcomes []domain.Outcome) domain.Summary {
	summary := domain.Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		if o.Success() {
			summary.Successful++
		} else {
			summary.Failed++
		}
	}
	return summary
}

// RenderReport renders the run report: a header with totals followed by
// one line per outcome, in input order.
func RenderReport(outcomes []domain.Outcome) string {
	summary := Summarize(outcomes)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Bulk GitHub README Downloader\nURLs: %d\nDownloaded: %d\nFailed: %d\n\n",
		summary.Total, summary.Successful, summary.Failed))

	for _, o := range outcomes {
		if o.RepoName == "" {
			sb.WriteString(fmt.Sprintf("Invalid URL: %s\n", o.SourceURL))
			continue
		}

		sb.WriteString(fmt.Sprintf("%s.md from %s - %s", o.RepoName, o.SourceURL, o.Status))
		if o.ErrorDetail != "" {
			sb.WriteString(fmt.Sprintf(" with Error: %s", o.ErrorDetail))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/readmedl-go/internal/domain"
	"github.com/quantmind-br/readmedl-go/internal/output"
)

// stubSource is a scripted ReadmeSource keyed by repository name
type stubSource struct {
	name    string
	content map[string][]byte
	errs    map[string]error
	calls   []string
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) FetchReadme(_ context.Context, ref domain.RepoRef) ([]byte, error) {
	s.calls = append(s.calls, ref.Name)
	if err, ok := s.errs[ref.Name]; ok {
		return nil, err
	}
	if content, ok := s.content[ref.Name]; ok {
		return content, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, ref.Name)
}

func newTestRunner(t *testing.T, direct, fallback *stubSource) (*Runner, *output.Writer) {
	t.Helper()

	writer := output.NewWriter(output.WriterOptions{BaseDir: t.TempDir()})
	require.NoError(t, writer.EnsureBaseDir())

	runner := NewRunner(RunnerOptions{
		Direct:   direct,
		Fallback: fallback,
		Writer:   writer,
	})
	return runner, writer
}

func TestRunner_Run_DirectSuccess(t *testing.T) {
	direct := &stubSource{name: "raw", content: map[string][]byte{"widget": []byte("# Widget")}}
	fallback := &stubSource{name: "clone"}
	runner, writer := newTestRunner(t, direct, fallback)

	outcomes := runner.Run(context.Background(), []string{"https://github.com/acme/widget"})

	require.Len(t, outcomes, 1)
	assert.Equal(t, domain.StatusSuccess, outcomes[0].Status)
	assert.Equal(t, "widget", outcomes[0].RepoName)
	assert.Empty(t, outcomes[0].ErrorDetail)
	assert.Empty(t, fallback.calls, "no fallback on direct success")

	written, err := os.ReadFile(writer.ReadmePath("widget"))
	require.NoError(t, err)
	assert.Equal(t, "# Widget", string(written))
}

func TestRunner_Run_InvalidURL(t *testing.T) {
	direct := &stubSource{name: "raw"}
	fallback := &stubSource{name: "clone"}
	runner, writer := newTestRunner(t, direct, fallback)

	outcomes := runner.Run(context.Background(), []string{"not-a-url"})

	require.Len(t, outcomes, 1)
	assert.Equal(t, domain.StatusFailed, outcomes[0].Status)
	assert.Empty(t, outcomes[0].RepoName)
	assert.Equal(t, "not-a-url", outcomes[0].SourceURL)
	assert.Contains(t, outcomes[0].ErrorDetail, "not-a-url")

	assert.Empty(t, direct.calls, "fetcher never invoked for unparseable URLs")
	assert.Empty(t, fallback.calls)

	entries, err := os.ReadDir(writer.BaseDir())
	require.NoError(t, err)
	assert.Empty(t, entries, "no file written for invalid URLs")
}

func TestRunner_Run_FallbackSuccess(t *testing.T) {
	direct := &stubSource{name: "raw"} // every repo yields not-found
	fallback := &stubSource{name: "clone", content: map[string][]byte{"widget": []byte("cloned")}}
	runner, writer := newTestRunner(t, direct, fallback)

	outcomes := runner.Run(context.Background(), []string{"https://github.com/acme/widget"})

	require.Len(t, outcomes, 1)
	assert.Equal(t, domain.StatusSuccess, outcomes[0].Status)
	assert.Equal(t, []string{"widget"}, fallback.calls)

	written, err := os.ReadFile(writer.ReadmePath("widget"))
	require.NoError(t, err)
	assert.Equal(t, "cloned", string(written))
}

func TestRunner_Run_FallbackReadmeMissing(t *testing.T) {
	direct := &stubSource{name: "raw"}
	fallback := &stubSource{name: "clone", errs: map[string]error{"widget": domain.ErrReadmeMissing}}
	runner, writer := newTestRunner(t, direct, fallback)

	outcomes := runner.Run(context.Background(), []string{"https://github.com/acme/widget"})

	require.Len(t, outcomes, 1)
	assert.Equal(t, domain.StatusFailed, outcomes[0].Status)
	assert.Equal(t, "README.md not found in the repository", outcomes[0].ErrorDetail)
	assert.NoFileExists(t, writer.ReadmePath("widget"))
}

func TestRunner_Run_FallbackCloneError(t *testing.T) {
	direct := &stubSource{name: "raw"}
	fallback := &stubSource{name: "clone", errs: map[string]error{
		"widget": domain.NewCloneError("https://github.com/acme/widget", errors.New("repository not found")),
	}}
	runner, _ := newTestRunner(t, direct, fallback)

	outcomes := runner.Run(context.Background(), []string{"https://github.com/acme/widget"})

	require.Len(t, outcomes, 1)
	assert.Equal(t, domain.StatusFailed, outcomes[0].Status)
	assert.Equal(t, "Error cloning repository: repository not found", outcomes[0].ErrorDetail)
}

func TestRunner_Run_HTTPErrorSkipsFallback(t *testing.T) {
	direct := &stubSource{name: "raw", errs: map[string]error{
		"widget": domain.NewFetchError("u", 500, errors.New("HTTP 500")),
	}}
	fallback := &stubSource{name: "clone", content: map[string][]byte{"widget": []byte("cloned")}}
	runner, writer := newTestRunner(t, direct, fallback)

	outcomes := runner.Run(context.Background(), []string{"https://github.com/acme/widget"})

	require.Len(t, outcomes, 1)
	assert.Equal(t, domain.StatusFailed, outcomes[0].Status)
	assert.Equal(t, "HTTP Error: 500", outcomes[0].ErrorDetail)
	assert.Empty(t, fallback.calls, "non-404 failures never trigger the clone fallback")
	assert.NoFileExists(t, writer.ReadmePath("widget"))
}

func TestRunner_Run_MixedBatch(t *testing.T) {
	direct := &stubSource{name: "raw", content: map[string][]byte{"widget": []byte("# Widget")}}
	fallback := &stubSource{name: "clone"}
	runner, writer := newTestRunner(t, direct, fallback)

	urls := []string{
		"https://github.com/acme/widget",
		"not-a-url",
		"  https://github.com/acme/gadget  ", // whitespace trimmed, then 404 + failed clone
	}

	outcomes := runner.Run(context.Background(), urls)

	// One outcome per input URL, in input order
	require.Len(t, outcomes, len(urls))
	assert.Equal(t, domain.StatusSuccess, outcomes[0].Status)
	assert.Equal(t, domain.StatusFailed, outcomes[1].Status)
	assert.Equal(t, domain.StatusFailed, outcomes[2].Status)
	assert.Equal(t, "https://github.com/acme/gadget", outcomes[2].SourceURL)

	summary := Summarize(outcomes)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Successful)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, summary.Total, summary.Successful+summary.Failed)

	assert.FileExists(t, writer.ReadmePath("widget"))
	assert.NoFileExists(t, writer.ReadmePath("gadget"))
}

func TestRunner_Run_CancelledContext(t *testing.T) {
	direct := &stubSource{name: "raw", content: map[string][]byte{"widget": []byte("x")}}
	runner, _ := newTestRunner(t, direct, &stubSource{name: "clone"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes := runner.Run(ctx, []string{"https://github.com/acme/widget"})
	assert.Empty(t, outcomes)
	assert.Empty(t, direct.calls)
}

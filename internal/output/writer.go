package output

import (
	"os"
	"path/filepath"

	"github.com/quantmind-br/readmedl-go/internal/config"
	"github.com/quantmind-br/readmedl-go/internal/utils"
)

// Writer persists per-repository README files and the run report.
// It implements domain.Writer.
type Writer struct {
	baseDir    string
	reportName string
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	BaseDir    string
	ReportName string
}

// NewWriter creates a new output writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.BaseDir == "" {
		opts.BaseDir = config.DefaultOutputDir
	}
	if opts.ReportName == "" {
		opts.ReportName = config.DefaultReportName
	}

	return &Writer{
		baseDir:    opts.BaseDir,
		reportName: opts.ReportName,
	}
}

// BaseDir returns the output folder path
func (w *Writer) BaseDir() string {
	return w.baseDir
}

// ReportName returns the report file name
func (w *Writer) ReportName() string {
	return w.reportName
}

// ReportPath returns the full path of the report file
func (w *Writer) ReportPath() string {
	return filepath.Join(w.baseDir, w.reportName)
}

// ReadmePath returns the output path for a repository's README
func (w *Writer) ReadmePath(name string) string {
	return filepath.Join(w.baseDir, name+".md")
}

// EnsureBaseDir creates the output folder, including intermediate
// directories, if absent
func (w *Writer) EnsureBaseDir() error {
	return utils.EnsureDir(w.baseDir)
}

// WriteReadme writes a repository's README content verbatim to <name>.md
func (w *Writer) WriteReadme(name string, content []byte) error {
	return os.WriteFile(w.ReadmePath(name), content, 0644)
}

// WriteReport writes the run report, overwriting any prior one, and
// returns the path written
func (w *Writer) WriteReport(text string) (string, error) {
	path := w.ReportPath()
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", err
	}
	return path, nil
}

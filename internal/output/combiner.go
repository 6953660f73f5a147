package output

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/quantmind-br/readmedl-go/internal/utils"
)

// anchorRegex matches every maximal run of characters outside [a-z0-9]
var anchorRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Anchor derives a table-of-contents fragment identifier from a display
// name: lowercased, with every run of non-alphanumeric characters
// collapsed into a single hyphen.
func Anchor(name string) string {
	return anchorRegex.ReplaceAllString(strings.ToLower(name), "-")
}

// Combiner assembles downloaded README files into a single document with
// a generated table of contents.
type Combiner struct {
	writer *Writer
	logger *utils.Logger
}

// NewCombiner creates a new Combiner over the writer's output folder
func NewCombiner(writer *Writer, logger *utils.Logger) *Combiner {
	return &Combiner{writer: writer, logger: logger}
}

// Combine concatenates every .md file directly in the output folder
// (excluding the report file name) into a single document and returns the
// path written. The combined filename is forced to end in .md, and an
// existing file with that name is overwritten.
func (c *Combiner) Combine(combinedName string) (string, error) {
	if !strings.HasSuffix(combinedName, ".md") {
		combinedName += ".md"
	}

	files, err := c.listReadmeFiles()
	if err != nil {
		return "", err
	}

	if c.logger != nil {
		c.logger.Info().Int("files", len(files)).Str("combined", combinedName).Msg("Combining README files")
	}

	var sb strings.Builder
	sb.WriteString("# Combined README.md files\n\n## Table of Contents\n")

	for _, file := range files {
		name := strings.TrimSuffix(file, ".md")
		sb.WriteString(fmt.Sprintf("- [%s](#%s)\n", name, Anchor(name)))
	}

	sb.WriteString("\n")

	for _, file := range files {
		name := strings.TrimSuffix(file, ".md")
		content, err := os.ReadFile(filepath.Join(c.writer.BaseDir(), file))
		if err != nil {
			return "", err
		}
		sb.WriteString(fmt.Sprintf("## %s\n", name))
		sb.WriteString(fmt.Sprintf("```markdown\n%s\n```\n\n", string(content)))
	}

	combinedPath := filepath.Join(c.writer.BaseDir(), combinedName)
	if err := os.WriteFile(combinedPath, []byte(sb.String()), 0644); err != nil {
		return "", err
	}

	return combinedPath, nil
}

// listReadmeFiles returns the .md entries directly in the output folder,
// in listing order, excluding the report file name
func (c *Combiner) listReadmeFiles() ([]string, error) {
	entries, err := os.ReadDir(c.writer.BaseDir())
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".md") || name == c.writer.ReportName() {
			continue
		}
		files = append(files, name)
	}

	return files, nil
}

// Package output provides formatters that render audit reports in
// different formats.
package output

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ancients-collective/vigil/internal/types"
)

// Formatter writes an audit report to the given writer.
type Formatter interface {
	Write(w io.Writer, report *types.AuditReport) error
}

// New returns the formatter for a format name: "html", "csv", or "json".
func New(format string) (Formatter, error) {
	switch format {
	case "html":
		return &HTMLFormatter{}, nil
	case "csv":
		return &CSVFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (must be html, csv, or json)", format)
	}
}

// WriteFile renders the report and writes it to path, replacing any
// existing file. The report is rendered to memory first so a failed
// write never leaves a partial artifact behind a successful render, and
// the in-memory results stay valid either way.
func WriteFile(path string, f Formatter, report *types.AuditReport) error {
	var buf bytes.Buffer
	if err := f.Write(&buf, report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

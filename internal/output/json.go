package output

import (
	"encoding/json"
	"io"

	"github.com/ancients-collective/vigil/internal/types"
)

// JSONFormatter writes the full audit report as a single JSON object.
type JSONFormatter struct{}

// Write renders the report as pretty-printed JSON.
func (f *JSONFormatter) Write(w io.Writer, report *types.AuditReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(report)
}

package output

import (
	"encoding/csv"
	"io"

	"github.com/ancients-collective/vigil/internal/types"
)

// CSVFormatter writes audit results as UTF-8 CSV: a header row of the
// six field names followed by one row per result, in run order.
type CSVFormatter struct{}

// Write renders the result rows. Quoting and escaping follow RFC 4180
// via encoding/csv.
func (f *CSVFormatter) Write(w io.Writer, report *types.AuditReport) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(types.FieldNames()); err != nil {
		return err
	}
	for _, r := range report.Results {
		if err := cw.Write(r.Fields()); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

package output

import (
	"html/template"
	"io"

	"github.com/ancients-collective/vigil/internal/types"
)

// HTMLFormatter writes a standalone HTML report: a fixed embedded
// stylesheet and one table row per result, color coded by verdict.
type HTMLFormatter struct{}

// rowClass maps a verdict to its CSS class. The match is case sensitive
// against the literal "PASS"; anything else renders as a failure row.
func rowClass(s types.Status) string {
	if s == "PASS" {
		return "pass"
	}
	return "fail"
}

// reportTemplate is the full document. No external resources: the
// stylesheet is inline so the file renders anywhere as-is.
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>CMMC Compliance Report</title>
<style>
body { font-family: "Segoe UI", Arial, sans-serif; margin: 2em; color: #1a1a2e; }
h1 { font-size: 1.4em; }
p.meta { color: #555; font-size: 0.9em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #c8c8d0; padding: 6px 10px; text-align: left; font-size: 0.9em; }
th { background-color: #2d3748; color: #ffffff; }
tr.pass { background-color: #d4edda; }
tr.fail { background-color: #f8d7da; }
td.status { font-weight: bold; }
p.summary { font-size: 0.95em; }
</style>
</head>
<body>
<h1>CMMC 2.0 / NIST SP 800-171 Compliance Report</h1>
<p class="meta">Host: {{.Host.Hostname}} ({{.Host.OS}} {{.Host.OSVersion}}, {{.Host.Arch}}) &middot; Generated: {{.Timestamp.Format "2006-01-02 15:04:05 MST"}} &middot; vigil v{{.Version}}</p>
<table>
<thead>
<tr>
<th>Control Family</th>
<th>Control ID</th>
<th>Description</th>
<th>Current Setting</th>
<th>Compliant Setting</th>
<th>Status</th>
</tr>
</thead>
<tbody>
{{- range .Results}}
<tr class="{{rowClass .Status}}">
<td>{{.Family}}</td>
<td>{{.ControlID}}</td>
<td>{{.Description}}</td>
<td>{{.CurrentSetting}}</td>
<td>{{.CompliantSetting}}</td>
<td class="status">{{.Status}}</td>
</tr>
{{- end}}
</tbody>
</table>
<p class="summary">{{.Summary.Passed}} of {{.Summary.TotalChecks}} checks passed &middot; {{.Summary.Failed}} failed</p>
</body>
</html>
`

var htmlTmpl = template.Must(template.New("report").
	Funcs(template.FuncMap{"rowClass": rowClass}).
	Parse(reportTemplate))

// Write renders the full HTML document.
func (f *HTMLFormatter) Write(w io.Writer, report *types.AuditReport) error {
	return htmlTmpl.Execute(w, report)
}

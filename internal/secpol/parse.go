// Package secpol parses textual security-policy dumps into label/value maps.
//
// Windows exposes account and audit policy through several line-oriented
// text formats: "net accounts" uses "Label:  value" rows, secedit exports
// use "Label = value" rows under INI-style section headers, and wevtutil
// prints "label: value" rows. All of them reduce to the same shape: one
// trimmed label mapped to one trimmed value per line.
package secpol

import (
	"strconv"
	"strings"
)

// Dump is a parsed policy dump: trimmed label → trimmed value.
type Dump map[string]string

// Parse splits a policy dump into lines and builds a label/value map.
// Each line is split at its first ':' or '=', whichever comes first;
// lines without a separator and INI section headers are ignored. A
// trailing '?' on a label (net accounts phrases some labels as
// questions) is kept as-is — lookups use the exact label.
func Parse(text string) Dump {
	d := make(Dump)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "[") {
			continue
		}

		sep := separatorIndex(line)
		if sep < 0 {
			continue
		}

		label := strings.TrimSpace(line[:sep])
		value := strings.TrimSpace(line[sep+1:])
		if label == "" {
			continue
		}
		d[label] = value
	}
	return d
}

// separatorIndex returns the position of the first ':' or '=' in the line,
// or -1 when neither is present.
func separatorIndex(line string) int {
	colon := strings.IndexByte(line, ':')
	equals := strings.IndexByte(line, '=')
	switch {
	case colon < 0:
		return equals
	case equals < 0:
		return colon
	case colon < equals:
		return colon
	default:
		return equals
	}
}

// Value looks up a label by exact match.
func (d Dump) Value(label string) (string, bool) {
	v, ok := d[label]
	return v, ok
}

// Number parses a numeric policy value from the dump. The literal
// sentinels "None" and "Never" map to 0. ok is false when the label is
// missing or the value is neither a number nor a sentinel.
func (d Dump) Number(label string) (n int, ok bool) {
	v, ok := d[label]
	if !ok {
		return 0, false
	}
	if Sentinel(v) {
		return 0, true
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Sentinel reports whether the value is the literal "None" or "Never"
// marker that net accounts prints for disabled numeric policies.
func Sentinel(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "none", "never":
		return true
	}
	return false
}

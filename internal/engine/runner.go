package engine

import (
	"github.com/ancients-collective/vigil/internal/collect"
	"github.com/ancients-collective/vigil/internal/types"
)

// Runner executes the fixed catalog, in order, against a Source.
// Execution is strictly sequential; each check is a single synchronous
// local query, so there is nothing to parallelize.
type Runner struct {
	src collect.Source

	// Progress, when set, is called before each check runs. Used by the
	// CLI for verbose per-check output.
	Progress func(done, total int, c Check)
}

// NewRunner creates a Runner reading from the given source.
func NewRunner(src collect.Source) *Runner {
	return &Runner{src: src}
}

// Run executes every check and returns the fully materialized result
// slice in catalog order. A failed observation never aborts the run: the
// owning check converts it into its documented absent result and the
// sequence continues.
func (r *Runner) Run() []types.ControlResult {
	checks := Catalog()
	results := make([]types.ControlResult, 0, len(checks))

	for i, c := range checks {
		if r.Progress != nil {
			r.Progress(i+1, len(checks), c)
		}
		current, status := c.run(r.src)
		results = append(results, types.ControlResult{
			Family:           c.Family,
			ControlID:        c.ControlID,
			Description:      c.Description,
			CurrentSetting:   current,
			CompliantSetting: c.Compliant,
			Status:           status,
		})
	}

	return results
}

// Package report defines the value objects a run hands back to the CLI:
// what was scanned, what was corrected (or would be, under dry-run), and
// what the post-convergence audit still flags. Pure aggregation, no I/O.
package report

import (
	"fmt"
	"io/fs"

	"github.com/google/uuid"

	"github.com/sambigeara/sshtidy/pkg/classify"
)

// Mode is a permission mode that serializes as the conventional zero-padded
// octal triple.
type Mode fs.FileMode

func (m Mode) String() string { return fmt.Sprintf("%04o", fs.FileMode(m).Perm()) }

// MarshalYAML renders the mode as its octal string.
func (m Mode) MarshalYAML() (any, error) { return m.String(), nil }

// Correction records one mode change the engine decided on. Applied is
// false under dry-run: the decision is identical, only the chmod is held.
type Correction struct {
	Name     string            `yaml:"name"`
	Category classify.Category `yaml:"category"`
	From     Mode              `yaml:"from"`
	To       Mode              `yaml:"to"`
	Applied  bool              `yaml:"applied"`
}

// ModeError records a file whose mode could not be changed. Other files in
// the same run are unaffected.
type ModeError struct {
	Name string `yaml:"name"`
	Err  string `yaml:"error"`
}

// Finding is a residual exposure the audit pass detected on the live
// filesystem after convergence.
type Finding struct {
	Name     string            `yaml:"name"`
	Category classify.Category `yaml:"category,omitempty"`
	Mode     Mode              `yaml:"mode"`
	Target   Mode              `yaml:"target"`
	Excess   Mode              `yaml:"excess"`
	Detail   string            `yaml:"detail"`
}

// Convergence summarizes a single convergence pass.
type Convergence struct {
	Dir               string                    `yaml:"dir"`
	DryRun            bool                      `yaml:"dryRun"`
	DirCreated        bool                      `yaml:"dirCreated,omitempty"`
	FilesScanned      int                       `yaml:"filesScanned"`
	ByCategory        map[classify.Category]int `yaml:"byCategory,omitempty"`
	Corrections       []Correction              `yaml:"corrections,omitempty"`
	ModeErrors        []ModeError               `yaml:"modeErrors,omitempty"`
	OwnershipWarnings []string                  `yaml:"ownershipWarnings,omitempty"`
}

// Corrected returns the number of corrections decided this run.
func (c *Convergence) Corrected() int { return len(c.Corrections) }

// Report is the full result of one run, consumed by the CLI for rendering
// and exit-status decisions. Nothing in it persists across runs.
type Report struct {
	RunID       string      `yaml:"runId"`
	Convergence Convergence `yaml:"convergence"`
	Findings    []Finding   `yaml:"findings,omitempty"`
}

// Compose stamps a fresh run ID onto the combined convergence and audit
// results.
func Compose(conv *Convergence, findings []Finding) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		Convergence: *conv,
		Findings:    findings,
	}
}

// Clean reports whether the run finished with no residual findings.
func (r *Report) Clean() bool { return len(r.Findings) == 0 }

// Package converge brings a credential directory's permission state into
// line with policy in a single pass. The pass is idempotent: the directory
// mode is applied unconditionally every run, file modes only when they
// differ, so re-running against a converged directory is a no-op.
package converge

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/sambigeara/sshtidy/pkg/classify"
	"github.com/sambigeara/sshtidy/pkg/perm"
	"github.com/sambigeara/sshtidy/pkg/platform"
	"github.com/sambigeara/sshtidy/pkg/policy"
	"github.com/sambigeara/sshtidy/pkg/report"
)

// ErrCreateDir marks the one fatal condition: the credential directory is
// absent and could not be established. Everything else is recorded in the
// result and the run continues.
var ErrCreateDir = errors.New("establish credential directory")

// Engine applies the policy table to a directory. All filesystem access
// goes through the injected afero.Fs so tests run against an in-memory
// filesystem and a read-only wrapper can simulate hostile mounts.
type Engine struct {
	fs    afero.Fs
	probe platform.Probe
	owner perm.Owner
}

func New(fsys afero.Fs, probe platform.Probe, owner perm.Owner) *Engine {
	return &Engine{fs: fsys, probe: probe, owner: owner}
}

// Converge walks dir's direct children, classifies each, and applies the
// policy mode where the current mode differs. Under dryRun the same
// decisions are computed but no mutation is issued. The returned error is
// non-nil only when the directory itself could not be established.
func (e *Engine) Converge(dir string, dryRun bool) (*report.Convergence, error) {
	log := zap.S().Named("converge")
	res := &report.Convergence{
		Dir:        dir,
		DryRun:     dryRun,
		ByCategory: map[classify.Category]int{},
	}

	info, err := e.fs.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return nil, fmt.Errorf("%w: %s exists and is not a directory", ErrCreateDir, dir)
	case err != nil && !os.IsNotExist(err):
		return nil, fmt.Errorf("%w: stat %s: %v", ErrCreateDir, dir, err)
	case err != nil:
		res.DirCreated = true
		if dryRun {
			// Nothing to enumerate; the preview is the creation itself.
			return res, nil
		}
		if err := e.fs.MkdirAll(dir, policy.DirMode()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCreateDir, err)
		}
		log.Debugw("created credential directory", "dir", dir, "mode", policy.DirMode())
	}

	// Applied every run regardless of the current mode; this is what makes
	// re-runs converge to the same end state without erroring.
	if !dryRun {
		if err := e.fs.Chmod(dir, policy.DirMode()); err != nil {
			res.ModeErrors = append(res.ModeErrors, report.ModeError{Name: ".", Err: err.Error()})
			log.Warnw("directory mode not applied", "dir", dir, "err", err)
		}
	}

	entries, err := afero.ReadDir(e.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrCreateDir, dir, err)
	}

	for _, fi := range entries {
		name := fi.Name()
		cat := classify.Unclassified
		if !fi.IsDir() {
			cat = classify.Classify(name)
		}
		res.FilesScanned++
		res.ByCategory[cat]++

		target, ok := policy.Mode(cat)
		if !ok {
			// Never touch files the tool does not understand.
			continue
		}
		current := fi.Mode().Perm()
		if current == target {
			continue
		}
		if !dryRun {
			if err := e.fs.Chmod(filepath.Join(dir, name), target); err != nil {
				res.ModeErrors = append(res.ModeErrors, report.ModeError{Name: name, Err: err.Error()})
				log.Warnw("mode not applied", "file", name, "err", err)
				continue
			}
		}
		res.Corrections = append(res.Corrections, report.Correction{
			Name:     name,
			Category: cat,
			From:     report.Mode(current),
			To:       report.Mode(target),
			Applied:  !dryRun,
		})
		log.Debugw("mode corrected", "file", name, "category", cat,
			"from", report.Mode(current), "to", report.Mode(target), "dryRun", dryRun)
	}

	// Ownership runs after all mode corrections so a refused chown can
	// never leave a file both wrong-owner and wrong-mode.
	if e.probe.OwnershipUnreliable() && !dryRun {
		e.normalizeOwnership(dir, entries, res, log)
	}

	return res, nil
}

func (e *Engine) normalizeOwnership(dir string, entries []os.FileInfo, res *report.Convergence, log *zap.SugaredLogger) {
	for _, fi := range entries {
		path := filepath.Join(dir, fi.Name())
		if err := perm.Chown(e.fs, path, e.owner); err != nil {
			res.OwnershipWarnings = append(res.OwnershipWarnings, err.Error())
			if perm.Denied(err) {
				log.Debugw("ownership change denied", "file", fi.Name())
			} else {
				log.Warnw("ownership change failed", "file", fi.Name(), "err", err)
			}
		}
	}
}

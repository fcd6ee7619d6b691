// Package audit re-checks a credential directory after convergence. It
// deliberately re-observes the live filesystem instead of trusting the
// convergence result, so a chmod that silently no-oped (read-only mount,
// insufficient privilege) or an external mutation between the two passes
// still surfaces as a finding.
package audit

import (
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/sambigeara/sshtidy/pkg/classify"
	"github.com/sambigeara/sshtidy/pkg/perm"
	"github.com/sambigeara/sshtidy/pkg/policy"
	"github.com/sambigeara/sshtidy/pkg/report"
)

// Audit scans dir and returns a finding for every classified file whose
// live mode grants group or other access beyond the category target, and
// for the directory itself if its mode is not the directory policy mode.
// An empty slice means no residual exposure.
func Audit(fsys afero.Fs, dir string) ([]report.Finding, error) {
	log := zap.S().Named("audit")
	var findings []report.Finding

	info, err := fsys.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if p := info.Mode().Perm(); p != policy.DirMode() {
		findings = append(findings, report.Finding{
			Name:   ".",
			Mode:   report.Mode(p),
			Target: report.Mode(policy.DirMode()),
			Excess: report.Mode(perm.GroupOther(p)),
			Detail: "credential directory mode differs from policy",
		})
	}

	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	for _, fi := range entries {
		if fi.IsDir() {
			continue
		}
		name := fi.Name()
		cat := classify.Classify(name)
		target, ok := policy.Mode(cat)
		if !ok {
			continue
		}
		excess := perm.Excess(fi.Mode(), target)
		if excess == 0 {
			continue
		}
		detail := "group/other access beyond policy"
		if cat.Private() {
			detail = "private credential readable or writable by group/other"
		}
		findings = append(findings, report.Finding{
			Name:     name,
			Category: cat,
			Mode:     report.Mode(fi.Mode().Perm()),
			Target:   report.Mode(target),
			Excess:   report.Mode(excess),
			Detail:   detail,
		})
		log.Debugw("residual exposure", "file", name, "category", cat,
			"mode", report.Mode(fi.Mode().Perm()), "excess", report.Mode(excess))
	}
	return findings, nil
}

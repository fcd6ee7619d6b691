package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"

	"github.com/sambigeara/sshtidy/pkg/report"
)

type reportSection struct {
	title   string
	headers []string
	rows    [][]string
	footer  string
}

func renderText(w io.Writer, r *report.Report) {
	sections := []reportSection{collectSummarySection(r)}
	if s := collectCorrectionsSection(r); len(s.rows) > 0 {
		sections = append(sections, s)
	}
	if s := collectWarningsSection(r); len(s.rows) > 0 {
		sections = append(sections, s)
	}
	if s := collectFindingsSection(r); len(s.rows) > 0 {
		sections = append(sections, s)
	}
	renderReportSections(w, sections)
}

func renderYAML(w io.Writer, r *report.Report) error {
	out, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// writeReportFile writes the YAML report atomically; a crash mid-write
// never leaves a truncated report behind.
func writeReportFile(path string, r *report.Report) error {
	out, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := renameio.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}
	return nil
}

func collectSummarySection(r *report.Report) reportSection {
	sec := reportSection{
		title:   "RUN",
		headers: []string{"DIR", "MODE", "SCANNED", "CORRECTED", "FINDINGS"},
	}
	mode := "live"
	if r.Convergence.DryRun {
		mode = "dry-run"
	}
	sec.rows = append(sec.rows, []string{
		r.Convergence.Dir,
		mode,
		fmt.Sprintf("%d", r.Convergence.FilesScanned),
		fmt.Sprintf("%d", r.Convergence.Corrected()),
		fmt.Sprintf("%d", len(r.Findings)),
	})
	if r.Convergence.DirCreated {
		verb := "created"
		if r.Convergence.DryRun {
			verb = "would create"
		}
		sec.footer = fmt.Sprintf("%s %s", verb, r.Convergence.Dir)
	}
	return sec
}

func collectCorrectionsSection(r *report.Report) reportSection {
	sec := reportSection{
		title:   "CORRECTIONS",
		headers: []string{"FILE", "CATEGORY", "FROM", "TO"},
	}
	planned := 0
	for _, c := range r.Convergence.Corrections {
		sec.rows = append(sec.rows, []string{c.Name, string(c.Category), c.From.String(), c.To.String()})
		if !c.Applied {
			planned++
		}
	}
	if planned > 0 {
		sec.footer = fmt.Sprintf("planned only, nothing applied: %d (dry run)", planned)
	}
	return sec
}

func collectWarningsSection(r *report.Report) reportSection {
	sec := reportSection{
		title:   "WARNINGS",
		headers: []string{"KIND", "DETAIL"},
	}
	for _, e := range r.Convergence.ModeErrors {
		sec.rows = append(sec.rows, []string{"mode", fmt.Sprintf("%s: %s", e.Name, e.Err)})
	}
	for _, w := range r.Convergence.OwnershipWarnings {
		sec.rows = append(sec.rows, []string{"ownership", w})
	}
	return sec
}

func collectFindingsSection(r *report.Report) reportSection {
	sec := reportSection{
		title:   "FINDINGS",
		headers: []string{"FILE", "CATEGORY", "MODE", "WANT", "DETAIL"},
	}
	for _, f := range r.Findings {
		sec.rows = append(sec.rows, []string{
			f.Name, string(f.Category), f.Mode.String(), f.Target.String(), f.Detail,
		})
	}
	if len(r.Findings) > 0 {
		sec.footer = fmt.Sprintf("residual findings: %d (not auto-corrected)", len(r.Findings))
	}
	return sec
}

const (
	reportRowSection = iota
	reportRowHeader
	reportRowData
	reportRowSpacer
)

func renderReportSections(w io.Writer, sections []reportSection) {
	maxCols := 0
	for _, sec := range sections {
		if len(sec.headers) > maxCols {
			maxCols = len(sec.headers)
		}
		for _, row := range sec.rows {
			if len(row) > maxCols {
				maxCols = len(row)
			}
		}
	}
	if maxCols == 0 {
		return
	}

	var rowKinds []int
	padRow := func(src []string) []string {
		row := make([]string, maxCols)
		copy(row, src)
		return row
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false)

	for i, sec := range sections {
		if i > 0 {
			t.Row(padRow(nil)...)
			rowKinds = append(rowKinds, reportRowSpacer)
		}
		t.Row(padRow([]string{sec.title})...)
		rowKinds = append(rowKinds, reportRowSection)
		t.Row(padRow(sec.headers)...)
		rowKinds = append(rowKinds, reportRowHeader)
		for _, dataRow := range sec.rows {
			t.Row(padRow(dataRow)...)
			rowKinds = append(rowKinds, reportRowData)
		}
	}

	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")).PaddingRight(2)
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingRight(2)
	dataStyle := lipgloss.NewStyle().PaddingRight(2)

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row < 0 || row >= len(rowKinds) {
			return dataStyle
		}
		switch rowKinds[row] {
		case reportRowSection:
			return sectionStyle
		case reportRowHeader:
			return headerStyle
		default:
			return dataStyle
		}
	})

	fmt.Fprintln(w, t)

	for _, sec := range sections {
		if sec.footer != "" {
			fmt.Fprintln(w)
			fmt.Fprintln(w, sec.footer)
		}
	}
	fmt.Fprintln(w)
}

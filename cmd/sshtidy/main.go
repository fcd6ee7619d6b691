package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sambigeara/sshtidy/pkg/audit"
	"github.com/sambigeara/sshtidy/pkg/converge"
	"github.com/sambigeara/sshtidy/pkg/observability/logging"
	"github.com/sambigeara/sshtidy/pkg/perm"
	"github.com/sambigeara/sshtidy/pkg/platform"
	"github.com/sambigeara/sshtidy/pkg/report"
	"github.com/sambigeara/sshtidy/pkg/workspace"
)

const (
	exitClean    = 0
	exitFatal    = 1
	exitFindings = 2
)

type options struct {
	dir        string
	dryRun     bool
	output     string
	reportFile string
	verbose    bool
}

func main() {
	os.Exit(run())
}

func run() int {
	exit := exitClean
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "sshtidy",
		Short: "Normalize and audit SSH credential directory permissions",
		Long: `sshtidy brings an SSH credential directory into a known-safe permission
state in one idempotent pass: private keys and sensitive config to owner-only,
public material to world-readable, the directory itself to owner-only. A
post-fix audit re-checks the live filesystem and reports anything still
exposed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			code, err := tidy(cmd, opts)
			exit = code
			return err
		},
	}
	rootCmd.Flags().StringVar(&opts.dir, "dir", "", "Credential directory (default: the invoking user's ~/.ssh)")
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Preview corrections without modifying anything")
	rootCmd.Flags().StringVar(&opts.output, "output", "text", "Output format: text or yaml")
	rootCmd.Flags().StringVar(&opts.reportFile, "report-file", "", "Also write the full report to this path as YAML")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFatal
	}
	return exit
}

func tidy(cmd *cobra.Command, opts *options) (int, error) {
	logging.Init(opts.verbose)
	defer zap.S().Sync() //nolint:errcheck

	dir := opts.dir
	if dir == "" {
		var err error
		dir, err = workspace.DefaultSSHDir()
		if err != nil {
			return exitFatal, err
		}
	}

	owner, err := perm.InvokingOwner()
	if err != nil {
		return exitFatal, err
	}

	fsys := afero.NewOsFs()
	eng := converge.New(fsys, platform.Detect(), owner)

	conv, err := eng.Converge(dir, opts.dryRun)
	if err != nil {
		return exitFatal, err
	}

	var findings []report.Finding
	if !(opts.dryRun && conv.DirCreated) {
		findings, err = audit.Audit(fsys, dir)
		if err != nil {
			return exitFatal, err
		}
	}

	rep := report.Compose(conv, findings)

	switch opts.output {
	case "text":
		renderText(cmd.OutOrStdout(), rep)
	case "yaml":
		if err := renderYAML(cmd.OutOrStdout(), rep); err != nil {
			return exitFatal, err
		}
	default:
		return exitFatal, fmt.Errorf("unknown output format %q (use: text|yaml)", opts.output)
	}

	if opts.reportFile != "" {
		if err := writeReportFile(opts.reportFile, rep); err != nil {
			return exitFatal, err
		}
	}

	if !rep.Clean() {
		return exitFindings, nil
	}
	return exitClean, nil
}

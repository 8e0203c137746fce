// Command coalcheck is the publish gate: it validates a release's dataset
// files against the schema catalog and fails the build on any defect.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	coalcheck "github.com/coalwatch/coalcheck"
	"github.com/coalwatch/coalcheck/dataset"
	"github.com/coalwatch/coalcheck/report"
)

// manifest maps dataset names to the JSON files of one release.
type manifest struct {
	Datasets map[string]string `yaml:"datasets"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "coalcheck",
		Short:         "validate coal-tracker site datasets before publish",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newValidateCmd(), newDatasetsCmd())
	return root
}

func newDatasetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "list registered dataset schemas",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range dataset.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	var (
		manifestPath string
		failFast     bool
		dupMode      string
		verbose      bool
	)
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "validate every dataset in a release manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)
			dup, err := parseDupMode(dupMode)
			if err != nil {
				return err
			}

			m, err := loadManifest(manifestPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if failFast {
				ctx = coalcheck.WithFailFast(ctx, true)
			}

			summary := validateAll(ctx, logger, m, dup)
			if err := summary.Render(cmd.OutOrStdout()); err != nil {
				return err
			}
			if !summary.Valid() {
				return fmt.Errorf("validation failed: %d issue(s)", summary.IssueCount())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "release.yaml", "YAML manifest mapping dataset names to JSON files")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop each dataset at its first issue")
	cmd.Flags().StringVar(&dupMode, "dup", "error", "duplicate JSON key handling: ignore|warn|error")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func parseDupMode(s string) (coalcheck.DupPolicy, error) {
	switch s {
	case "ignore":
		return coalcheck.DupIgnore, nil
	case "warn":
		return coalcheck.DupWarn, nil
	case "error":
		return coalcheck.DupError, nil
	}
	return 0, fmt.Errorf("invalid --dup mode %q (want ignore|warn|error)", s)
}

func loadManifest(path string) (*manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if len(m.Datasets) == 0 {
		return nil, fmt.Errorf("manifest %s declares no datasets", path)
	}
	return &m, nil
}

// validateAll checks every dataset in the manifest. Datasets are independent
// documents, so they validate concurrently; each produces its own entry.
func validateAll(ctx context.Context, logger *slog.Logger, m *manifest, dup coalcheck.DupPolicy) *report.Summary {
	names := make([]string, 0, len(m.Datasets))
	for name := range m.Datasets {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		mu      sync.Mutex
		summary report.Summary
	)
	g, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		name := name
		path := m.Datasets[name]
		g.Go(func() error {
			entry := validateOne(ctx, logger, name, path, dup)
			mu.Lock()
			summary.Add(entry)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // workers report through the summary, never an error
	return &summary
}

func validateOne(ctx context.Context, logger *slog.Logger, name, path string, dup coalcheck.DupPolicy) report.Entry {
	logger.Debug("validating dataset", "dataset", name, "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return report.New(name, fmt.Errorf("read %s: %w", path, err))
	}

	var iss coalcheck.Issues
	if dupIssues := coalcheck.ScanDuplicateKeys(data, dup); len(dupIssues) > 0 {
		if dup == coalcheck.DupError {
			return report.New(name, dupIssues)
		}
		for _, it := range dupIssues {
			logger.Warn("duplicate JSON key", "dataset", name, "path", it.Path)
		}
	}

	doc, err := coalcheck.DecodeJSON(data)
	if err != nil {
		return report.New(name, err)
	}
	if _, err := dataset.Validate(ctx, name, doc); err != nil {
		iss = coalcheck.AppendIssues(iss, coalcheck.IssuesOf("/", err)...)
	}

	if len(iss) > 0 {
		logger.Info("dataset invalid", "dataset", name, "issues", len(iss))
		return report.Entry{Dataset: name, Issues: iss}
	}
	logger.Info("dataset valid", "dataset", name)
	return report.Entry{Dataset: name}
}

// Package cli implements the negoprep command-line interface. Every command
// works in two modes: against a running API server (--server) or directly on
// the local snapshot file, which is the same storage the server uses by
// default.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zaoqi-icu/negoprep/internal/config"
	"github.com/zaoqi-icu/negoprep/internal/export"
	"github.com/zaoqi-icu/negoprep/internal/logging"
	"github.com/zaoqi-icu/negoprep/internal/planning"
	"github.com/zaoqi-icu/negoprep/internal/reporting"
	"github.com/zaoqi-icu/negoprep/internal/storage/file"
	"github.com/zaoqi-icu/negoprep/pkg/client"
)

type rootOptions struct {
	serverURL  string
	configPath string
}

// NewRootCommand builds the full negoprep command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "negoprep",
		Short:         "Bride-price negotiation preparation tool",
		Long:          "negoprep plans a bride-price negotiation: goals, issues, BATNA analysis, stakeholders, strategy, and an exportable preparation report.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.serverURL, "server", "", "API server base URL; empty operates on local storage")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file path (local mode)")

	root.AddCommand(
		newPlanCommand(opts),
		newIssueCommand(opts),
		newBatnaCommand(opts),
		newStakeholderCommand(opts),
		newStrategyCommand(opts),
		newAnchorCommand(opts),
		newReportCommand(opts),
	)
	return root
}

func (o *rootOptions) remote() bool {
	return o.serverURL != ""
}

func (o *rootOptions) client() *client.Client {
	return client.New(o.serverURL)
}

// localEnv bundles the locally-wired components for one command run.
type localEnv struct {
	cfg      *config.Config
	store    *planning.Store
	gen      *reporting.Generator
	exporter *export.Exporter
}

// local wires the store (and friends) against the configured file backend.
// CLI local mode always uses the file backend so it can share state with a
// default server on the same machine; redis/postgres are server concerns.
func (o *rootOptions) local(ctx context.Context) (*localEnv, error) {
	var cfg *config.Config
	var err error
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	log, err := logging.NewLogger(logging.Config{Level: "warn", Format: "console"})
	if err != nil {
		return nil, err
	}

	snap, err := file.New(cfg.Storage.File.Dir, cfg.Storage.SnapshotName, log)
	if err != nil {
		return nil, err
	}

	gen, err := reporting.NewGenerator(log)
	if err != nil {
		return nil, err
	}

	return &localEnv{
		cfg:      cfg,
		store:    planning.NewStore(ctx, snap, log),
		gen:      gen,
		exporter: export.New(cfg.Export, log),
	}, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// Execute runs the CLI and exits non-zero on error.
func Execute(version string) {
	if err := NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

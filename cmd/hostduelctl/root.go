// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package main

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/hostduel/internal/config"
	"github.com/tomtom215/hostduel/internal/logging"
	"github.com/tomtom215/hostduel/internal/store"
)

// app carries state shared by every subcommand.
type app struct {
	cfg     *config.Config
	dataDir string
	verbose bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "hostduelctl",
		Short:         "HostDuel maintenance tool",
		Long:          "Validate provider data, build the sitemap, list comparisons and submit URLs to IndexNow.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.dataDir, "data", "", "dataset directory (default DATA_DIR or data)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newValidateCmd(a),
		newSitemapCmd(a),
		newPairsCmd(a),
		newClicksCmd(a),
		newIndexNowCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.dataDir != "" {
		cfg.Data.Dir = a.dataDir
	}
	a.cfg = cfg

	level := "warn"
	if a.verbose {
		level = "debug"
	}
	logging.Init(logging.Config{
		Level:  level,
		Format: "console",
		Output: cmd.ErrOrStderr(),
	})
	return nil
}

func (a *app) loadSnapshot(cmd *cobra.Command) (*store.Snapshot, error) {
	return store.Load(cmd.Context(), a.cfg.Data.Dir, logging.WithComponent("store"))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

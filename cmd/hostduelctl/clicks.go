// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/hostduel/internal/clicks"
	"github.com/tomtom215/hostduel/internal/logging"
)

func newClicksCmd(a *app) *cobra.Command {
	var prefix, path string

	cmd := &cobra.Command{
		Use:   "clicks",
		Short: "Print click counters from a stopped server's store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Clicks
			if path != "" {
				cfg.Path = path
			}
			if cfg.InMemory || cfg.Path == "" {
				return errors.New("clicks needs an on-disk store (--path or CLICKS_PATH)")
			}

			st, err := clicks.Open(cfg, logging.WithComponent("clicks"))
			if err != nil {
				return err
			}
			defer st.Close()

			counts, err := st.Counts(cmd.Context(), prefix)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range counts {
				fmt.Fprintf(out, "%s\t%d\n", c.Event, c.Count)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "only print events with this prefix, e.g. visit_")
	cmd.Flags().StringVar(&path, "path", "", "store directory (default CLICKS_PATH)")
	return cmd
}

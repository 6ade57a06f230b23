// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/hostduel/internal/compare"
)

func newPairsCmd(a *app) *cobra.Command {
	var cluster string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "List valid comparison pairs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cluster != "" {
				if _, ok := compare.LookupCluster(cluster); !ok {
					return fmt.Errorf("unknown cluster %q", cluster)
				}
			}

			snap, err := a.loadSnapshot(cmd)
			if err != nil {
				return err
			}

			var pairs []compare.Pair
			for _, p := range compare.GeneratePairs(snap.Rows()) {
				if cluster == "" || p.Cluster == cluster {
					pairs = append(pairs, p)
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if pairs == nil {
					pairs = []compare.Pair{}
				}
				return writeJSON(out, pairs)
			}
			for _, p := range pairs {
				fmt.Fprintf(out, "%s\t%s\n", p.Cluster, p.Slug())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cluster, "cluster", "", "only list pairs of this cluster")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print pairs as JSON")
	return cmd
}

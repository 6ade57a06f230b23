// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/hostduel/internal/logging"
	"github.com/tomtom215/hostduel/internal/seo"
)

func newIndexNowCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "indexnow",
		Short: "Submit every sitemap URL to IndexNow",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := a.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			urls := seo.Locations(a.sitemapURLs(snap))

			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintf(out, "would submit %d URLs to %s\n", len(urls), a.cfg.IndexNow.Endpoint)
				return nil
			}

			client := seo.NewIndexNowClient(a.cfg.IndexNow, a.cfg.KeyLocation(), logging.WithComponent("indexnow"))
			res, err := client.Submit(cmd.Context(), urls)
			fmt.Fprintf(out, "submitted %d URLs in %d batches\n", res.Submitted, res.Batches)
			return err
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "count URLs without submitting")
	return cmd
}

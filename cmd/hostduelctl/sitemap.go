// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/hostduel/internal/compare"
	"github.com/tomtom215/hostduel/internal/seo"
	"github.com/tomtom215/hostduel/internal/store"
)

// sitemapURLs builds the same URL set the server publishes.
func (a *app) sitemapURLs(snap *store.Snapshot) []seo.SitemapURL {
	pairs := compare.GeneratePairs(snap.Rows())
	return seo.BuildSitemap(a.cfg.Site.BaseURL, snap.IDs(), pairs, time.Now())
}

func newSitemapCmd(a *app) *cobra.Command {
	var outPath string
	var listOnly bool

	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Write sitemap.xml for the dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := a.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			urls := a.sitemapURLs(snap)

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outPath, err)
				}
				defer f.Close()
				w = f
			}

			if listOnly {
				for _, loc := range seo.Locations(urls) {
					if _, err := fmt.Fprintln(w, loc); err != nil {
						return err
					}
				}
				return nil
			}
			return seo.WriteSitemap(w, urls)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&listOnly, "list", false, "print one URL per line instead of XML")
	return cmd
}

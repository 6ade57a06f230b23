// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/hostduel/internal/affiliate"
	"github.com/tomtom215/hostduel/internal/compare"
	"github.com/tomtom215/hostduel/internal/logging"
)

var errValidationFailed = errors.New("dataset validation failed")

// validateReport is the summary printed by validate.
type validateReport struct {
	Listed          int      `json:"listed"`
	Loaded          int      `json:"loaded"`
	Skipped         []string `json:"skipped"`
	Pairs           int      `json:"pairs"`
	Affiliates      int      `json:"affiliates"`
	OrphanAffiliate []string `json:"orphanAffiliates"`
}

func newValidateCmd(a *app) *cobra.Command {
	var strict, asJSON bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load the dataset and report unreadable records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := a.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			entries, err := affiliate.LoadEntries(a.cfg.Data.AffiliatesPath, logging.WithComponent("affiliate"))
			if err != nil {
				return err
			}

			report := validateReport{
				Listed:     len(snap.Index().Companies),
				Loaded:     snap.Len(),
				Skipped:    snap.Skipped(),
				Pairs:      len(compare.GeneratePairs(snap.Rows())),
				Affiliates: len(entries),
			}
			for id := range entries {
				if _, ok := snap.GetByID(id); !ok {
					report.OrphanAffiliate = append(report.OrphanAffiliate, id)
				}
			}
			sort.Strings(report.OrphanAffiliate)

			out := cmd.OutOrStdout()
			if asJSON {
				if err := writeJSON(out, report); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(out, "records:    %d loaded of %d listed\n", report.Loaded, report.Listed)
				fmt.Fprintf(out, "pairs:      %d\n", report.Pairs)
				fmt.Fprintf(out, "affiliates: %d\n", report.Affiliates)
				if len(report.Skipped) > 0 {
					fmt.Fprintf(out, "skipped:    %s\n", strings.Join(report.Skipped, ", "))
				}
				if len(report.OrphanAffiliate) > 0 {
					fmt.Fprintf(out, "orphaned affiliate links: %s\n", strings.Join(report.OrphanAffiliate, ", "))
				}
			}

			if strict && (len(report.Skipped) > 0 || len(report.OrphanAffiliate) > 0) {
				return errValidationFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when records are skipped or affiliate links are orphaned")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

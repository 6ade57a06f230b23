// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package models

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// UnlimitedSentinel is the literal used in data files for unbounded quotas.
const UnlimitedSentinel = "Unlimited"

// Quota is a numeric limit that may be unbounded. The zero value is a
// bounded quota of 0; a missing quota is represented by a nil *Quota.
//
// A string other than the sentinel decodes without error but is held as
// unrecognized; Company.DropUnrecognizedQuotas turns those into nil.
type Quota struct {
	Unlimited bool
	Value     float64

	invalid bool
	raw     string
}

// Bounded returns a finite quota.
func Bounded(n float64) *Quota {
	return &Quota{Value: n}
}

// Unbounded returns an unlimited quota.
func Unbounded() *Quota {
	return &Quota{Unlimited: true}
}

// IsUnlimited reports whether q is present and unbounded.
func (q *Quota) IsUnlimited() bool {
	return q != nil && q.Unlimited
}

// Recognized reports whether q is present and decoded to a number or the
// sentinel.
func (q *Quota) Recognized() bool {
	return q != nil && !q.invalid
}

// Raw returns the string an unrecognized quota was decoded from.
func (q *Quota) Raw() string {
	if q == nil {
		return ""
	}
	return q.raw
}

// String renders the quota the way data files spell it.
func (q Quota) String() string {
	if q.Unlimited {
		return UnlimitedSentinel
	}
	return strconv.FormatFloat(q.Value, 'f', -1, 64)
}

// MarshalJSON encodes unbounded quotas as "Unlimited" and others as numbers.
// An unrecognized quota encodes as null.
func (q Quota) MarshalJSON() ([]byte, error) {
	if q.invalid {
		return []byte("null"), nil
	}
	if q.Unlimited {
		return json.Marshal(UnlimitedSentinel)
	}
	return json.Marshal(q.Value)
}

// UnmarshalJSON accepts a JSON number or the "Unlimited" sentinel in any
// case. Any other value is kept as unrecognized rather than failing the
// enclosing record.
func (q *Quota) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("quota: empty value")
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("quota: %w", err)
		}
		if strings.EqualFold(strings.TrimSpace(s), UnlimitedSentinel) {
			*q = Quota{Unlimited: true}
			return nil
		}
		*q = Quota{invalid: true, raw: s}
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		*q = Quota{invalid: true, raw: string(data)}
		return nil
	}
	*q = Quota{Value: n}
	return nil
}

// QuotaIssue names a quota field that held an unrecognized value.
type QuotaIssue struct {
	Field string
	Raw   string
}

// DropUnrecognizedQuotas sets every unrecognized quota in c to nil and
// reports the fields it cleared.
func (c *Company) DropUnrecognizedQuotas() []QuotaIssue {
	fields := []struct {
		name string
		q    **Quota
	}{
		{"technicalSpecs.storageGb", &c.TechnicalSpecs.StorageGB},
		{"technicalSpecs.bandwidthGb", &c.TechnicalSpecs.BandwidthGB},
		{"technicalSpecs.inodeLimit", &c.TechnicalSpecs.InodeLimit},
		{"technicalSpecs.maxWebsitesAllowed", &c.TechnicalSpecs.MaxWebsitesAllowed},
		{"technicalSpecs.maxDatabases", &c.TechnicalSpecs.MaxDatabases},
		{"technicalSpecs.subdomainsLimit", &c.TechnicalSpecs.SubdomainsLimit},
		{"technicalSpecs.ftpAccountsLimit", &c.TechnicalSpecs.FTPAccountsLimit},
		{"managedWordPress.monthlyVisitLimit", &c.ManagedWordPress.MonthlyVisitLimit},
		{"email.emailAccountLimit", &c.Email.EmailAccountLimit},
	}

	var issues []QuotaIssue
	for _, f := range fields {
		if *f.q == nil || (*f.q).Recognized() {
			continue
		}
		issues = append(issues, QuotaIssue{Field: f.name, Raw: (*f.q).Raw()})
		*f.q = nil
	}
	return issues
}

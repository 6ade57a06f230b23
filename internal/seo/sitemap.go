// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package seo

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/hostduel/internal/compare"
)

// DefaultBaseURL is used when no site URL is configured.
const DefaultBaseURL = "https://hostduel.com"

// sitemapNamespace is the sitemaps.org 0.9 schema.
const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq is a sitemap change frequency hint.
type ChangeFreq string

const (
	ChangeWeekly  ChangeFreq = "weekly"
	ChangeMonthly ChangeFreq = "monthly"
	ChangeYearly  ChangeFreq = "yearly"
)

// SitemapURL is one <url> entry.
type SitemapURL struct {
	Loc          string
	LastModified time.Time
	ChangeFreq   ChangeFreq
	Priority     float64
}

type staticPage struct {
	path     string
	freq     ChangeFreq
	priority float64
}

var staticPages = []staticPage{
	{"", ChangeWeekly, 1.0},
	{"/compare", ChangeWeekly, 0.9},
	{"/methodology", ChangeMonthly, 0.5},
	{"/terms", ChangeYearly, 0.3},
}

const (
	hostPriority    = 0.8
	comparePriority = 0.7
)

// BaseURL trims a trailing slash from base and substitutes DefaultBaseURL
// for an empty value.
func BaseURL(base string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return DefaultBaseURL
	}
	return base
}

// BuildSitemap lists the static pages, one page per host id and one page
// per comparison pair. Every entry shares the same modification time.
func BuildSitemap(baseURL string, ids []string, pairs []compare.Pair, now time.Time) []SitemapURL {
	base := BaseURL(baseURL)
	urls := make([]SitemapURL, 0, len(staticPages)+len(ids)+len(pairs))

	for _, p := range staticPages {
		urls = append(urls, SitemapURL{Loc: base + p.path, LastModified: now, ChangeFreq: p.freq, Priority: p.priority})
	}
	for _, id := range ids {
		urls = append(urls, SitemapURL{
			Loc:          base + "/hosting/" + id,
			LastModified: now,
			ChangeFreq:   ChangeWeekly,
			Priority:     hostPriority,
		})
	}
	for _, p := range pairs {
		urls = append(urls, SitemapURL{
			Loc:          base + "/compare/" + p.Slug(),
			LastModified: now,
			ChangeFreq:   ChangeWeekly,
			Priority:     comparePriority,
		})
	}
	return urls
}

// Locations returns the loc of every entry, in order.
func Locations(urls []SitemapURL) []string {
	out := make([]string, len(urls))
	for i := range urls {
		out[i] = urls[i].Loc
	}
	return out
}

type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// WriteSitemap encodes urls as a sitemaps.org urlset document.
func WriteSitemap(w io.Writer, urls []SitemapURL) error {
	set := xmlURLSet{Xmlns: sitemapNamespace, URLs: make([]xmlURL, len(urls))}
	for i, u := range urls {
		set.URLs[i] = xmlURL{
			Loc:        u.Loc,
			LastMod:    u.LastModified.UTC().Format(time.RFC3339),
			ChangeFreq: string(u.ChangeFreq),
			Priority:   strconv.FormatFloat(u.Priority, 'f', 1, 64),
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write sitemap header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("flush sitemap: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

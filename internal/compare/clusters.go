// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package compare

import (
	"sort"
	"strings"

	"github.com/tomtom215/hostduel/internal/models"
)

// SlugSeparator joins the two host ids of a comparison slug.
const SlugSeparator = "-vs-"

// Cluster is a group of hosting types whose providers are compared with
// each other.
type Cluster struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Types       []models.HostingType `json:"types"`
	Description string               `json:"description"`
}

// Clusters lists the comparison clusters in pair-generation order. Types
// not listed here (dedicated, domain-registrar, cdn-security) are never
// paired.
var Clusters = []Cluster{
	{
		ID:          "shared",
		Name:        "Shared Hosting",
		Types:       []models.HostingType{models.HostingShared},
		Description: "Budget-friendly shared hosting providers",
	},
	{
		ID:          "managed-wordpress",
		Name:        "Managed WordPress",
		Types:       []models.HostingType{models.HostingManagedWordPress},
		Description: "Premium managed WordPress hosting",
	},
	{
		ID:          "cloud-vps",
		Name:        "Cloud & VPS",
		Types:       []models.HostingType{models.HostingCloudIaaS, models.HostingVPS},
		Description: "Cloud infrastructure and VPS providers",
	},
	{
		ID:          "website-builders",
		Name:        "Website Builders",
		Types:       []models.HostingType{models.HostingWebsiteBuilder, models.HostingEcommercePlatform},
		Description: "All-in-one website builders and ecommerce platforms",
	},
	{
		ID:          "modern-platforms",
		Name:        "Modern Platforms",
		Types:       []models.HostingType{models.HostingJamstack, models.HostingPaaS},
		Description: "JAMstack and Platform-as-a-Service providers",
	},
}

// ClusterForType returns the id of the cluster containing t.
func ClusterForType(t models.HostingType) (string, bool) {
	for _, c := range Clusters {
		for _, ct := range c.Types {
			if ct == t {
				return c.ID, true
			}
		}
	}
	return "", false
}

// LookupCluster returns the cluster with the given id.
func LookupCluster(id string) (Cluster, bool) {
	for _, c := range Clusters {
		if c.ID == id {
			return c, true
		}
	}
	return Cluster{}, false
}

func clusterForRow(row *models.TableRow) (string, bool) {
	if row.HostingType == nil {
		return "", false
	}
	return ClusterForType(*row.HostingType)
}

// Pair is one valid head-to-head comparison. HostA sorts before HostB.
type Pair struct {
	HostA   string `json:"hostA"`
	HostB   string `json:"hostB"`
	Cluster string `json:"cluster"`
}

// Slug returns the pair's canonical slug.
func (p Pair) Slug() string {
	return Slug(p.HostA, p.HostB)
}

// Includes reports whether id is one side of the pair.
func (p Pair) Includes(id string) bool {
	return p.HostA == id || p.HostB == id
}

// GeneratePairs returns every same-cluster pair. Clusters are visited in
// Clusters order and, within a cluster, ids are sorted so a cluster of n
// hosts yields n(n-1)/2 pairs in a stable order.
func GeneratePairs(rows []models.TableRow) []Pair {
	byCluster := make(map[string][]string)
	seen := make(map[string]bool)
	for i := range rows {
		id := rows[i].ID
		cluster, ok := clusterForRow(&rows[i])
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		byCluster[cluster] = append(byCluster[cluster], id)
	}

	var pairs []Pair
	for _, c := range Clusters {
		ids := byCluster[c.ID]
		sort.Strings(ids)
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				pairs = append(pairs, Pair{HostA: ids[i], HostB: ids[j], Cluster: c.ID})
			}
		}
	}
	return pairs
}

// Slug returns the canonical comparison slug for two ids. The result does
// not depend on argument order.
func Slug(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + SlugSeparator + b
}

// ParseSlug splits a slug into its two ids. It fails unless the slug holds
// exactly one separator with a non-empty id on each side.
func ParseSlug(slug string) (a, b string, ok bool) {
	parts := strings.Split(slug, SlugSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// Related returns up to limit pairs involving hostID, skipping currentSlug
// and duplicate slugs. A non-positive limit selects DefaultRelated.
func Related(pairs []Pair, hostID, currentSlug string, limit int) []Pair {
	if limit <= 0 {
		limit = DefaultRelated
	}

	seen := make(map[string]bool)
	var out []Pair
	for _, p := range pairs {
		if len(out) >= limit {
			break
		}
		if !p.Includes(hostID) {
			continue
		}
		slug := p.Slug()
		if slug == currentSlug || seen[slug] {
			continue
		}
		seen[slug] = true
		out = append(out, p)
	}
	return out
}

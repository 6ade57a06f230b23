// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package filter

import (
	"strings"

	"github.com/tomtom215/hostduel/internal/cache"
	"github.com/tomtom215/hostduel/internal/models"
)

// Keyword maps a search term to the row attribute it stands for. A query
// containing Term matches rows for which Matches returns true.
type Keyword struct {
	Term    string
	Matches func(*models.TableRow) bool
}

func flag(get func(*models.TableRow) *bool) func(*models.TableRow) bool {
	return func(r *models.TableRow) bool { return models.IsTrue(get(r)) }
}

// Keywords is the search dictionary.
var Keywords = []Keyword{
	{"adult", flag(func(r *models.TableRow) *bool { return r.AdultContentAllowed })},
	{"gambling", flag(func(r *models.TableRow) *bool { return r.GamblingSitesAllowed })},
	{"casino", flag(func(r *models.TableRow) *bool { return r.GamblingSitesAllowed })},
	{"crypto", flag(func(r *models.TableRow) *bool { return r.CryptocurrencySitesAllowed })},
	{"bitcoin", flag(func(r *models.TableRow) *bool { return r.CryptocurrencySitesAllowed })},
	{"ssl", flag(func(r *models.TableRow) *bool { return r.FreeSSL })},
	{"free ssl", flag(func(r *models.TableRow) *bool { return r.FreeSSL })},
	{"ssh", flag(func(r *models.TableRow) *bool { return r.SSHAccess })},
	{"wordpress", flag(func(r *models.TableRow) *bool { return r.WordPressOptimized })},
	{"woocommerce", flag(func(r *models.TableRow) *bool { return r.WooCommerceOptimized })},
	{"staging", flag(func(r *models.TableRow) *bool { return r.StagingEnvironment })},
	{"migration", flag(func(r *models.TableRow) *bool { return r.FreeMigration })},
	{"free migration", flag(func(r *models.TableRow) *bool { return r.FreeMigration })},
	{"cpanel", flag(func(r *models.TableRow) *bool { return r.CPanelIncluded })},
	{"litespeed", flag(func(r *models.TableRow) *bool { return r.LiteSpeedCache })},
	{"nodejs", flag(func(r *models.TableRow) *bool { return r.NodejsSupport })},
	{"node", flag(func(r *models.TableRow) *bool { return r.NodejsSupport })},
	{"python", flag(func(r *models.TableRow) *bool { return r.PythonSupport })},
	{"django", flag(func(r *models.TableRow) *bool { return r.DjangoSupport })},
	{"laravel", flag(func(r *models.TableRow) *bool { return r.LaravelSupport })},
	{"reseller", flag(func(r *models.TableRow) *bool { return r.ResellerHostingAvailable })},
	{"api", flag(func(r *models.TableRow) *bool { return r.APIAccess })},
	{"gdpr", flag(func(r *models.TableRow) *bool { return r.GDPRCompliance })},
	{"pci", flag(func(r *models.TableRow) *bool { return r.PCICompliance })},
	{"hipaa", flag(func(r *models.TableRow) *bool { return r.HIPAACompliance })},
	{"cdn", flag(func(r *models.TableRow) *bool { return r.CDNIncluded })},
	{"backup", flag(func(r *models.TableRow) *bool { return r.OnDemandBackup })},
	{"ddos", flag(func(r *models.TableRow) *bool { return r.DDoSProtection })},
	{"live chat", flag(func(r *models.TableRow) *bool { return r.LiveChatAvailable })},
	{"chat", flag(func(r *models.TableRow) *bool { return r.LiveChatAvailable })},
	{"phone", flag(func(r *models.TableRow) *bool { return r.PhoneSupportAvailable })},
	{"24/7", func(r *models.TableRow) bool {
		return r.LiveChatHours != nil && strings.Contains(strings.ToLower(*r.LiveChatHours), "24")
	}},
	{"unlimited", func(r *models.TableRow) bool {
		return r.StorageGB.IsUnlimited() || r.BandwidthGB.IsUnlimited()
	}},
	{"green", flag(func(r *models.TableRow) *bool { return r.GreenHosting })},
	{"eco", flag(func(r *models.TableRow) *bool { return r.GreenHosting })},
}

var keywordMatcher = newKeywordMatcher(Keywords)

func newKeywordMatcher(keywords []Keyword) *cache.AhoCorasick {
	terms := make([]string, len(keywords))
	for i, k := range keywords {
		terms[i] = k.Term
	}
	return cache.NewAhoCorasick(terms...)
}

// matchesKeywords reports whether any keyword found in the lowercased query
// holds for row.
func matchesKeywords(row *models.TableRow, query string) bool {
	for _, idx := range keywordMatcher.MatchedIndexes(query) {
		if Keywords[idx].Matches(row) {
			return true
		}
	}
	return false
}

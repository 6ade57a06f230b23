// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package filter

import (
	"strings"

	"github.com/tomtom215/hostduel/internal/models"
)

// Default price slider bounds, in USD per month.
const (
	DefaultPriceMin = 0
	DefaultPriceMax = 300
)

// SuitabilityThreshold is the minimum 1-5 suitability score a row needs to
// pass a suitability toggle.
const SuitabilityThreshold = 4

// PriceRange bounds the monthly price, inclusive on both ends.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Features holds the boolean feature toggles. A false toggle is ignored.
type Features struct {
	FreeSSL              bool `json:"freeSsl"`
	FreeDomain           bool `json:"freeDomain"`
	FreeMigration        bool `json:"freeMigration"`
	SSHAccess            bool `json:"sshAccess"`
	Staging              bool `json:"staging"`
	UnlimitedStorage     bool `json:"unlimitedStorage"`
	UnlimitedBandwidth   bool `json:"unlimitedBandwidth"`
	NodejsSupport        bool `json:"nodejsSupport"`
	PythonSupport        bool `json:"pythonSupport"`
	WordPressOptimized   bool `json:"wordpressOptimized"`
	WooCommerceOptimized bool `json:"woocommerceOptimized"`
	LiteSpeedCache       bool `json:"litespeedCache"`
	LiveChatSupport      bool `json:"liveChatSupport"`
	PhoneSupport         bool `json:"phoneSupport"`
	CDNIncluded          bool `json:"cdnIncluded"`
	GDPRCompliance       bool `json:"gdprCompliance"`
	PCICompliance        bool `json:"pciCompliance"`
}

// Suitability holds the use-case toggles.
type Suitability struct {
	Blogger    bool `json:"blogger"`
	Developer  bool `json:"developer"`
	Ecommerce  bool `json:"ecommerce"`
	Beginner   bool `json:"beginner"`
	Enterprise bool `json:"enterprise"`
}

// FilterState is the full set of table filters. All active filters must
// pass for a row to be kept.
type FilterState struct {
	Search       string               `json:"search"`
	HostingTypes []models.HostingType `json:"hostingTypes"`
	PriceRange   PriceRange           `json:"priceRange"`
	MinRating    float64              `json:"minRating"`
	MinUptime    float64              `json:"minUptime"`
	Features     Features             `json:"features"`
	Suitability  Suitability          `json:"suitability"`
}

// DefaultFilterState returns a state that keeps every row priced within the
// default slider bounds.
func DefaultFilterState() FilterState {
	return FilterState{
		PriceRange: PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax},
	}
}

type featureCheck struct {
	name    string
	enabled func(*Features) bool
	set     func(*Features)
	passes  func(*models.TableRow) bool
}

// featureChecks is ordered as the toggles appear in the filter panel.
var featureChecks = []featureCheck{
	{"freeSsl", func(f *Features) bool { return f.FreeSSL }, func(f *Features) { f.FreeSSL = true },
		func(r *models.TableRow) bool { return models.IsTrue(r.FreeSSL) }},
	{"freeDomain", func(f *Features) bool { return f.FreeDomain }, func(f *Features) { f.FreeDomain = true },
		func(r *models.TableRow) bool { return models.IsTrue(r.FreeDomain) }},
	{"freeMigration", func(f *Features) bool { return f.FreeMigration }, func(f *Features) { f.FreeMigration = true },
		func(r *models.TableRow) bool { return models.IsTrue(r.FreeMigration) }},
	{"sshAccess", func(f *Features) bool { return f.SSHAccess }, func(f *Features) { f.SSHAccess = true },
		func(r *models.TableRow) bool { return models.IsTrue(r.SSHAccess) }},
	{"staging", func(f *Features) bool { return f.Staging }, func(f *Features) { f.Staging = true },
		func(r *models.TableRow) bool { return models.IsTrue(r.StagingEnvironment) }},
	{"unlimitedStorage", func(f *Features) bool { return f.UnlimitedStorage }, func(f *Features) { f.UnlimitedStorage = true },
		func(r *models.TableRow) bool { return r.StorageGB.IsUnlimited() }},
	{"unlimitedBandwidth", func(f *Features) bool { return f.UnlimitedBandwidth }, func(f *Features) { f.UnlimitedBandwidth = true },
		func(r *models.TableRow) bool { return r.BandwidthGB.IsUnlimited() }},
	{"nodejsSupport", func(f *Features) bool { return f.NodejsSupport }, func(f *Features) { f.NodejsSupport = true },
		func(r *models.TableRow) bool { return models.IsTrue(r.NodejsSupport) }},
	{"pythonSupport", func(f *Features) bool { return f.PythonSupport }, func(f *Features) { f.PythonSupport = true },
		func(r *models.TableRow) bool { return models.IsTrue(r.PythonSupport) }},
	{"wordpressOptimized", func(f *Features) bool { return f.WordPressOptimized }, func(f *Features) { f.WordPressOptimized = true },
		func(r *models.TableRow) bool { return models.IsTrue(r.WordPressOptimized) }},
	{"woocommerceOptimized", func(f *Features) bool { return f.WooCommerceOptimized }, func(f *Features) { f.WooCommerceOptimized = true },
		func(r *models.TableRow) bool { return models.IsTrue(r.WooCommerceOptimized) }},
	{"litespeedCache", func(f *Features) bool { return f.LiteSpeedCache }, func(f *Features) { f.LiteSpeedCache = true },
		func(r *models.TableRow) bool { return models.IsTrue(r.LiteSpeedCache) }},
	{"liveChatSupport", func(f *Features) bool { return f.LiveChatSupport }, func(f *Features) { f.LiveChatSupport = true },
		func(r *models.TableRow) bool { return models.IsTrue(r.LiveChatAvailable) }},
	{"phoneSupport", func(f *Features) bool { return f.PhoneSupport }, func(f *Features) { f.PhoneSupport = true },
		func(r *models.TableRow) bool { return models.IsTrue(r.PhoneSupportAvailable) }},
	{"cdnIncluded", func(f *Features) bool { return f.CDNIncluded }, func(f *Features) { f.CDNIncluded = true },
		func(r *models.TableRow) bool { return models.IsTrue(r.CDNIncluded) }},
	{"gdprCompliance", func(f *Features) bool { return f.GDPRCompliance }, func(f *Features) { f.GDPRCompliance = true },
		func(r *models.TableRow) bool { return models.IsTrue(r.GDPRCompliance) }},
	{"pciCompliance", func(f *Features) bool { return f.PCICompliance }, func(f *Features) { f.PCICompliance = true },
		func(r *models.TableRow) bool { return models.IsTrue(r.PCICompliance) }},
}

type suitabilityCheck struct {
	name    string
	enabled func(*Suitability) bool
	set     func(*Suitability)
	score   func(*models.TableRow) *float64
}

var suitabilityChecks = []suitabilityCheck{
	{"blogger", func(s *Suitability) bool { return s.Blogger }, func(s *Suitability) { s.Blogger = true },
		func(r *models.TableRow) *float64 { return r.SuitabilityBlogger }},
	{"developer", func(s *Suitability) bool { return s.Developer }, func(s *Suitability) { s.Developer = true },
		func(r *models.TableRow) *float64 { return r.SuitabilityDeveloper }},
	{"ecommerce", func(s *Suitability) bool { return s.Ecommerce }, func(s *Suitability) { s.Ecommerce = true },
		func(r *models.TableRow) *float64 { return r.SuitabilityEcommerce }},
	{"beginner", func(s *Suitability) bool { return s.Beginner }, func(s *Suitability) { s.Beginner = true },
		func(r *models.TableRow) *float64 { return r.SuitabilityBeginner }},
	{"enterprise", func(s *Suitability) bool { return s.Enterprise }, func(s *Suitability) { s.Enterprise = true },
		func(r *models.TableRow) *float64 { return r.SuitabilityEnterprise }},
}

// FeatureNames returns the feature toggle names accepted by SetFeature.
func FeatureNames() []string {
	names := make([]string, len(featureChecks))
	for i, c := range featureChecks {
		names[i] = c.name
	}
	return names
}

// SuitabilityNames returns the toggle names accepted by SetSuitability.
func SuitabilityNames() []string {
	names := make([]string, len(suitabilityChecks))
	for i, c := range suitabilityChecks {
		names[i] = c.name
	}
	return names
}

// SetFeature enables the toggle with the given JSON name and reports whether
// the name is known.
func (f *Features) SetFeature(name string) bool {
	for _, c := range featureChecks {
		if c.name == name {
			c.set(f)
			return true
		}
	}
	return false
}

// SetSuitability enables the toggle with the given JSON name and reports
// whether the name is known.
func (s *Suitability) SetSuitability(name string) bool {
	for _, c := range suitabilityChecks {
		if c.name == name {
			c.set(s)
			return true
		}
	}
	return false
}

// Apply returns the rows that pass every active filter, in input order.
// The input slice is not modified.
func Apply(rows []models.TableRow, state FilterState) []models.TableRow {
	out := make([]models.TableRow, 0, len(rows))
	for i := range rows {
		if state.matches(&rows[i]) {
			out = append(out, rows[i])
		}
	}
	return out
}

func (s *FilterState) matches(row *models.TableRow) bool {
	if s.Search != "" && !MatchesSearch(row, s.Search) {
		return false
	}

	if len(s.HostingTypes) > 0 {
		if row.HostingType == nil || !containsType(s.HostingTypes, *row.HostingType) {
			return false
		}
	}

	// Rows without a price stay visible whatever the slider says.
	if row.MonthlyPrice != nil {
		if *row.MonthlyPrice < s.PriceRange.Min || *row.MonthlyPrice > s.PriceRange.Max {
			return false
		}
	}

	if s.MinRating > 0 && (row.OverallRating == nil || *row.OverallRating < s.MinRating) {
		return false
	}
	if s.MinUptime > 0 && (row.UptimeGuarantee == nil || *row.UptimeGuarantee < s.MinUptime) {
		return false
	}

	for _, c := range featureChecks {
		if c.enabled(&s.Features) && !c.passes(row) {
			return false
		}
	}

	for _, c := range suitabilityChecks {
		if !c.enabled(&s.Suitability) {
			continue
		}
		if score := c.score(row); score == nil || *score < SuitabilityThreshold {
			return false
		}
	}

	return true
}

func containsType(types []models.HostingType, t models.HostingType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

// MatchesSearch reports whether query finds row by name, by hosting type
// (raw value or display label), or through the keyword dictionary.
func MatchesSearch(row *models.TableRow, query string) bool {
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(row.Name), q) {
		return true
	}
	if row.HostingType != nil {
		if strings.Contains(string(*row.HostingType), q) ||
			strings.Contains(strings.ToLower(row.HostingType.Label()), q) {
			return true
		}
	}

	return matchesKeywords(row, q)
}

// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package models

// HostingType is the category a provider is listed under.
type HostingType string

// Hosting types. The set is closed; unknown values decode but never match a
// label or a comparison cluster.
const (
	HostingShared            HostingType = "shared"
	HostingManagedWordPress  HostingType = "managed-wordpress"
	HostingVPS               HostingType = "vps"
	HostingCloudIaaS         HostingType = "cloud-iaas"
	HostingDedicated         HostingType = "dedicated"
	HostingWebsiteBuilder    HostingType = "website-builder"
	HostingEcommercePlatform HostingType = "ecommerce-platform"
	HostingJamstack          HostingType = "jamstack"
	HostingPaaS              HostingType = "paas"
	HostingDomainRegistrar   HostingType = "domain-registrar"
	HostingCDNSecurity       HostingType = "cdn-security"
)

// HostingTypes lists every hosting type in display order.
var HostingTypes = []HostingType{
	HostingShared,
	HostingManagedWordPress,
	HostingVPS,
	HostingCloudIaaS,
	HostingDedicated,
	HostingWebsiteBuilder,
	HostingEcommercePlatform,
	HostingJamstack,
	HostingPaaS,
	HostingDomainRegistrar,
	HostingCDNSecurity,
}

var hostingTypeLabels = map[HostingType]string{
	HostingShared:            "Shared Hosting",
	HostingManagedWordPress:  "Managed WordPress",
	HostingVPS:               "VPS Hosting",
	HostingCloudIaaS:         "Cloud Infrastructure",
	HostingDedicated:         "Dedicated Servers",
	HostingWebsiteBuilder:    "Website Builder",
	HostingEcommercePlatform: "eCommerce Platform",
	HostingJamstack:          "JAMstack/Static",
	HostingPaaS:              "Platform as a Service",
	HostingDomainRegistrar:   "Domain Registrar",
	HostingCDNSecurity:       "CDN & Security",
}

// Label returns the display label, or the raw value for unknown types.
func (t HostingType) Label() string {
	if label, ok := hostingTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Valid reports whether t is one of the known hosting types.
func (t HostingType) Valid() bool {
	_, ok := hostingTypeLabels[t]
	return ok
}

// StorageType is the disk technology backing a plan.
type StorageType string

const (
	StorageSSD  StorageType = "SSD"
	StorageNVMe StorageType = "NVMe"
	StorageHDD  StorageType = "HDD"
)

// PricingModel describes how managed WordPress plans are metered.
type PricingModel string

const (
	PricingVisits    PricingModel = "visits"
	PricingBandwidth PricingModel = "bandwidth"
	PricingSites     PricingModel = "sites"
	PricingNoCaps    PricingModel = "no-caps"
)

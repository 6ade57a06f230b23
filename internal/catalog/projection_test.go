// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package catalog

import (
	"reflect"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/hostduel/internal/models"
)

func TestToTableRowEmptyRecord(t *testing.T) {
	t.Parallel()

	for name, c := range map[string]*models.Company{"empty": {}, "nil": nil} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			row := ToTableRow("ghost", c)

			if row.ID != "ghost" {
				t.Errorf("ID = %q, want ghost", row.ID)
			}
			if row.Name != "" {
				t.Errorf("Name = %q, want empty", row.Name)
			}

			v := reflect.ValueOf(row)
			typ := v.Type()
			for i := 0; i < v.NumField(); i++ {
				f := v.Field(i)
				switch f.Kind() {
				case reflect.Ptr, reflect.Slice:
					if !f.IsNil() {
						t.Errorf("%s = %v, want nil", typ.Field(i).Name, f.Interface())
					}
				}
			}
		})
	}
}

func TestToTableRowPriceFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		pricing     models.Pricing
		wantMonthly *float64
		wantRenewal *float64
	}{
		{
			name: "shared first",
			pricing: models.Pricing{
				SharedHostingMonthlyPromo:    models.Ptr(2.99),
				VPSMonthlyLowest:             models.Ptr(6.0),
				WordPressHostingMonthlyPromo: models.Ptr(20.0),
				SharedHostingMonthlyRenewal:  models.Ptr(10.99),
			},
			wantMonthly: models.Ptr(2.99),
			wantRenewal: models.Ptr(10.99),
		},
		{
			name: "vps when no shared",
			pricing: models.Pricing{
				VPSMonthlyLowest:               models.Ptr(6.0),
				WordPressHostingMonthlyPromo:   models.Ptr(20.0),
				WordPressHostingMonthlyRenewal: models.Ptr(25.0),
			},
			wantMonthly: models.Ptr(6.0),
			wantRenewal: models.Ptr(25.0),
		},
		{
			name:        "wordpress last",
			pricing:     models.Pricing{WordPressHostingMonthlyPromo: models.Ptr(0.0)},
			wantMonthly: models.Ptr(0.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			row := ToTableRow("x", &models.Company{Pricing: tt.pricing})
			if !reflect.DeepEqual(row.MonthlyPrice, tt.wantMonthly) {
				t.Errorf("MonthlyPrice = %v, want %v", deref(row.MonthlyPrice), deref(tt.wantMonthly))
			}
			if !reflect.DeepEqual(row.RenewalPrice, tt.wantRenewal) {
				t.Errorf("RenewalPrice = %v, want %v", deref(row.RenewalPrice), deref(tt.wantRenewal))
			}
		})
	}
}

func TestToTableRowFromJSON(t *testing.T) {
	t.Parallel()

	raw := `{
		"basicInfo": {"companyName": "Acme Host", "websiteUrl": "", "hostingType": "shared", "greenHosting": true},
		"technicalSpecs": {"storageGb": "Unlimited", "bandwidthGb": 100, "phpVersionsAvailable": ["8.2", "8.3"]},
		"ratings": {"overallRating": 4.5, "performance": 4.0},
		"managedWordPress": {"pricingModel": "visits", "monthlyVisitLimit": 25000},
		"migration": {"migrationServiceQuality": 3},
		"additionalPlatforms": {"staticSiteSupport": false}
	}`

	var c models.Company
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	row := ToTableRow("acme", &c)

	if row.Name != "Acme Host" {
		t.Errorf("Name = %q, want Acme Host", row.Name)
	}
	if row.WebsiteURL != nil {
		t.Errorf("WebsiteURL = %q, want nil for empty source", *row.WebsiteURL)
	}
	if row.HostingType == nil || *row.HostingType != models.HostingShared {
		t.Errorf("HostingType = %v, want shared", row.HostingType)
	}
	if !row.StorageGB.IsUnlimited() {
		t.Error("StorageGB should be unlimited")
	}
	if row.BandwidthGB == nil || row.BandwidthGB.Value != 100 {
		t.Errorf("BandwidthGB = %v, want 100", row.BandwidthGB)
	}
	if !reflect.DeepEqual(row.PHPVersions, []string{"8.2", "8.3"}) {
		t.Errorf("PHPVersions = %v", row.PHPVersions)
	}
	if deref(row.PerformanceRating) != 4.0 {
		t.Errorf("PerformanceRating = %v, want 4", deref(row.PerformanceRating))
	}
	if row.WPPricingModel == nil || *row.WPPricingModel != models.PricingVisits {
		t.Errorf("WPPricingModel = %v, want visits", row.WPPricingModel)
	}
	if deref(row.MigrationQuality) != 3.0 {
		t.Errorf("MigrationQuality = %v, want 3", deref(row.MigrationQuality))
	}
	if row.StaticSiteSupport == nil || *row.StaticSiteSupport {
		t.Errorf("StaticSiteSupport = %v, want false", row.StaticSiteSupport)
	}
	if !models.IsTrue(row.GreenHosting) {
		t.Error("GreenHosting should be true")
	}

	out, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Unmarshal(row) error = %v", err)
	}
	if decoded["storageGb"] != "Unlimited" {
		t.Errorf(`row JSON storageGb = %v, want "Unlimited"`, decoded["storageGb"])
	}
	if v, ok := decoded["monthlyPrice"]; !ok || v != nil {
		t.Errorf("row JSON monthlyPrice = %v (present %v), want null", v, ok)
	}
}

func deref(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

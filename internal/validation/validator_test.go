// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package validation

import (
	"strings"
	"testing"
)

type listQuery struct {
	Types   []string `query:"type" validate:"dive,hostingtype"`
	Sort    string   `query:"sort" validate:"omitempty,oneof=name monthlyPrice"`
	Limit   int      `query:"limit" validate:"min=0,max=500"`
	Search  string   `query:"q" validate:"max=10"`
	Cluster string   `query:"cluster" validate:"omitempty,cluster"`
	Feature []string `query:"feature" validate:"dive,feature"`
}

type pathParams struct {
	ID      string `query:"id" validate:"required,hostid"`
	UseCase string `validate:"omitempty,usecase"`
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
	}{
		{"zero list query", &listQuery{}},
		{"full list query", &listQuery{Types: []string{"shared", "vps"}, Sort: "name", Limit: 500, Search: "wordpress", Cluster: "cloud-vps"}},
		{"host id", &pathParams{ID: "a2-hosting"}},
		{"use case", &pathParams{ID: "x1", UseCase: "blogger"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateStruct(tt.input); err != nil {
				t.Errorf("ValidateStruct() = %v, want nil", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     any
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{"unknown type", &listQuery{Types: []string{"shared", "mainframe"}}, "type[1]", "hostingtype", "type[1] must be a known hosting type"},
		{"bad sort", &listQuery{Sort: "price"}, "sort", "oneof", "sort must be one of: name monthlyPrice"},
		{"limit too large", &listQuery{Limit: 501}, "limit", "max", "limit must be at most 500"},
		{"negative limit", &listQuery{Limit: -1}, "limit", "min", "limit must be at least 0"},
		{"long search", &listQuery{Search: strings.Repeat("x", 11)}, "q", "max", "q must be at most 10 characters"},
		{"unknown feature", &listQuery{Feature: []string{"freeSsl", "jetpack"}}, "feature[1]", "feature", "feature[1] must be a known feature toggle"},
		{"unknown cluster", &listQuery{Cluster: "mainframes"}, "cluster", "cluster", "cluster must be a known comparison cluster"},
		{"missing id", &pathParams{}, "id", "required", "id is required"},
		{"path-like id", &pathParams{ID: "../etc"}, "id", "hostid", "id must contain only lowercase letters, digits and dashes"},
		{"unknown use case", &pathParams{ID: "x", UseCase: "gamers"}, "UseCase", "usecase", "UseCase must be a known use case"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(tt.input)
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("field/tag = %s/%s, want %s/%s", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestRequestValidationError_ToAPIError(t *testing.T) {
	t.Parallel()

	t.Run("single", func(t *testing.T) {
		t.Parallel()
		apiErr := ValidateStruct(&listQuery{Limit: 900}).ToAPIError()
		if apiErr.Code != ErrorCode || apiErr.Message != "limit must be at most 500" {
			t.Errorf("ToAPIError() = %+v", apiErr)
		}
		if apiErr.Details["field"] != "limit" || apiErr.Details["value"] != 900 {
			t.Errorf("details = %v", apiErr.Details)
		}
	})

	t.Run("multiple", func(t *testing.T) {
		t.Parallel()
		verr := ValidateStruct(&listQuery{Limit: 900, Sort: "x"})
		apiErr := verr.ToAPIError()
		if apiErr.Message != "sort must be one of: name monthlyPrice; limit must be at most 500" {
			t.Errorf("message = %q", apiErr.Message)
		}
		fields, ok := apiErr.Details["fields"].([]map[string]any)
		if !ok || len(fields) != 2 {
			t.Fatalf("fields = %#v", apiErr.Details["fields"])
		}
		if verr.Error() != apiErr.Message {
			t.Errorf("Error() = %q", verr.Error())
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		empty := &RequestValidationError{}
		if got := empty.ToAPIError(); got.Message != "Validation failed" {
			t.Errorf("empty message = %q", got.Message)
		}
		if empty.Error() != "validation failed" {
			t.Errorf("Error() = %q", empty.Error())
		}
	})
}

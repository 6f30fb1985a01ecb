// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/pricepoll/models"
	"github.com/danielhkuo/pricepoll/testutil"
)

func TestDashboard(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewAdminHandler(st, testutil.GetTestConfig())

	base := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	testutil.SeedResponse(t, st, models.SurveyResponse{
		InitialRange:    models.BandMid,
		SpecificPrice:   testutil.StringPtr("$521k–$540k"),
		BestFeature:     testutil.StringPtr("Layout"),
		ImprovementNote: testutil.StringPtr("Needs a modern kitchen"),
		AgentEmail:      testutil.StringPtr("a@x.com"),
		CreatedAt:       base,
	})
	testutil.SeedResponse(t, st, models.SurveyResponse{
		InitialRange: models.BandMid,
		BestFeature:  testutil.StringPtr("Layout"),
		CreatedAt:    base.Add(time.Hour),
	})
	testutil.SeedResponse(t, st, models.SurveyResponse{
		InitialRange: models.BandHigh,
		BestFeature:  testutil.StringPtr("Location"),
		CreatedAt:    base.Add(2 * time.Hour),
	})

	w := httptest.NewRecorder()
	handler.Dashboard(w, httptest.NewRequest("GET", "/admin/dashboard", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.DashboardResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.PropertyLabel != "3561 W Dublin St" {
		t.Errorf("Expected the configured property label, got %q", resp.PropertyLabel)
	}
	if resp.TotalResponses != 3 {
		t.Errorf("Expected 3 total responses, got %d", resp.TotalResponses)
	}

	// Price distribution covers all three bands in fixed order
	if len(resp.PriceDistribution) != 3 {
		t.Fatalf("Expected 3 price bands, got %d", len(resp.PriceDistribution))
	}
	wantPrices := map[string]int{
		models.BandHigh: 1,
		models.BandMid:  2,
		models.BandLow:  0,
	}
	for i, band := range models.PriceBands {
		got := resp.PriceDistribution[i]
		if got.Label != band || got.Count != wantPrices[band] {
			t.Errorf("Price bucket %d: expected {%s %d}, got {%s %d}",
				i, band, wantPrices[band], got.Label, got.Count)
		}
	}

	if len(resp.FeatureDistribution) != 2 || resp.FeatureDistribution[0].Label != "Layout" {
		t.Errorf("Expected Layout to lead the feature distribution, got %v", resp.FeatureDistribution)
	}

	foundKitchen := false
	for _, theme := range resp.ImprovementThemes {
		if theme.Label == "Kitchen" {
			foundKitchen = true
		}
	}
	if !foundKitchen {
		t.Errorf("Expected the Kitchen theme, got %v", resp.ImprovementThemes)
	}

	if len(resp.Comments) != 1 {
		t.Fatalf("Expected 1 comment, got %d", len(resp.Comments))
	}
	c := resp.Comments[0]
	if c.Note != "Needs a modern kitchen" || c.AgentEmail != "a@x.com" {
		t.Errorf("Unexpected comment: %+v", c)
	}
	if c.SubmittedAt != "March 10, 2025, 11:00 AM" {
		t.Errorf("Expected Phoenix-formatted timestamp, got %q", c.SubmittedAt)
	}
	if c.SubmittedAgo == "" {
		t.Error("Expected a relative age on the comment")
	}

	// The raw feed is most recent first
	if len(resp.Responses) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(resp.Responses))
	}
	if resp.Responses[0].InitialRange != models.BandHigh {
		t.Errorf("Expected the newest row first, got %q", resp.Responses[0].InitialRange)
	}
}

func TestDashboardEmptyStore(t *testing.T) {
	handler := NewAdminHandler(testutil.SetupTestStore(t), testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.Dashboard(w, httptest.NewRequest("GET", "/admin/dashboard", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.DashboardResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalResponses != 0 {
		t.Errorf("Expected 0 responses, got %d", resp.TotalResponses)
	}
	// Price buckets still render with zero counts
	if len(resp.PriceDistribution) != 3 {
		t.Errorf("Expected all 3 price bands, got %d", len(resp.PriceDistribution))
	}
	for _, b := range resp.PriceDistribution {
		if b.Count != 0 {
			t.Errorf("Expected zero count for %s, got %d", b.Label, b.Count)
		}
	}
}

func TestDashboardFetchFailure(t *testing.T) {
	handler := NewAdminHandler(failingStore{}, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.Dashboard(w, httptest.NewRequest("GET", "/admin/dashboard", nil))

	// No partial data: the failure is surfaced, not papered over
	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Failed to load responses." {
		t.Errorf("Expected the fetch-failure message, got %q", resp.Message)
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/danielhkuo/pricepoll/cliparse"
	"github.com/danielhkuo/pricepoll/models"
	"github.com/danielhkuo/pricepoll/router"
	"github.com/danielhkuo/pricepoll/store"
	"github.com/danielhkuo/pricepoll/testutil"
)

func setupServer(t *testing.T) (*http.ServeMux, *store.SQLStore, cliparse.Config) {
	t.Helper()
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	return router.NewRouter(st, cfg), st, cfg
}

// TestMagicLinkFlow walks the full agent path: a magic link carrying range
// and email writes one record, step 3 resolves the band from the URL, and
// the follow-up answers land on that same record.
func TestMagicLinkFlow(t *testing.T) {
	mux, st, _ := setupServer(t)

	// Entry via magic link
	entry := "/survey/start?range=" + url.QueryEscape(models.BandMid) + "&email=agent%40realty.com"
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", entry, nil))
	if w.Code != http.StatusFound {
		t.Fatalf("Expected 302 from entry, got %d", w.Code)
	}
	loc, err := url.Parse(w.Header().Get("Location"))
	if err != nil {
		t.Fatalf("Unparseable redirect: %v", err)
	}
	if loc.Path != "/survey/step2" {
		t.Fatalf("Expected redirect to step 2, got %s", loc)
	}
	sid := loc.Query().Get("sid")

	rows, err := st.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Entry must write exactly one record, got %d", len(rows))
	}
	entryID := rows[0].ID

	// Step 2: continue
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/survey/step2", models.Step2Request{
		Decision:     models.DecisionContinue,
		Range:        models.BandMid,
		Email:        "agent@realty.com",
		SessionToken: sid,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var step2 models.Step2Response
	testutil.AssertJSON(t, w, &step2)

	// Step 3 form at the URL step 2 handed back
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", step2.NextURL, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var form models.Step3FormResponse
	testutil.AssertJSON(t, w, &form)
	if form.InitialRange != models.BandMid {
		t.Errorf("Step 3 must resolve the band from the URL, got %q", form.InitialRange)
	}
	if len(form.SpecificPrices) != 5 {
		t.Errorf("Expected 5 sub-ranges, got %v", form.SpecificPrices)
	}

	// Step 3 submit
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/survey/step3", models.Step3Request{
		SpecificPrice:   "$521k–$540k",
		BestFeature:     "Layout",
		ImprovementNote: "Fresh paint in the kitchen",
		Range:           models.BandMid,
		Email:           "agent@realty.com",
		SessionToken:    sid,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var step3 models.Step3Response
	testutil.AssertJSON(t, w, &step3)
	if !step3.Updated {
		t.Error("Follow-up answers must update the entry record, not add one")
	}
	if step3.ResponseID != entryID {
		t.Errorf("Expected update of %s, got %s", entryID, step3.ResponseID)
	}

	// Still one record, now complete
	rows, err = st.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 record after the full flow, got %d", len(rows))
	}
	r := rows[0]
	if r.InitialRange != models.BandMid {
		t.Errorf("Band changed unexpectedly: %q", r.InitialRange)
	}
	if r.SpecificPrice == nil || *r.SpecificPrice != "$521k–$540k" {
		t.Error("Missing specific price on the completed record")
	}
	if r.BestFeature == nil || *r.BestFeature != "Layout" {
		t.Error("Missing best feature on the completed record")
	}
	if r.ImprovementNote == nil || *r.ImprovementNote != "Fresh paint in the kitchen" {
		t.Error("Missing improvement note on the completed record")
	}

	// Admin sees the completed response
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/admin/dashboard", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var dash models.DashboardResponse
	testutil.AssertJSON(t, w, &dash)
	if dash.TotalResponses != 1 {
		t.Errorf("Expected 1 response on the dashboard, got %d", dash.TotalResponses)
	}
	for _, b := range dash.PriceDistribution {
		if b.Label == models.BandMid && b.Count != 1 {
			t.Errorf("Expected 1 count in %s, got %d", b.Label, b.Count)
		}
	}
	if len(dash.Comments) != 1 || dash.Comments[0].Note != "Fresh paint in the kitchen" {
		t.Errorf("Expected the improvement note as a comment, got %v", dash.Comments)
	}
}

// TestAnonymousWizardFlow walks the path without a magic link: step 1 from
// the landing page, then step 3 correlating by session token.
func TestAnonymousWizardFlow(t *testing.T) {
	mux, st, _ := setupServer(t)

	// Entry without params lands on step 1
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/survey/start", nil))
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/survey/step1" {
		t.Fatalf("Expected redirect to step 1, got %d %s", w.Code, w.Header().Get("Location"))
	}

	// Step 1: pick a band, no email
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/survey/step1", models.Step1Request{
		InitialRange: models.BandLow,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var step1 models.Step1Response
	testutil.AssertJSON(t, w, &step1)
	if step1.ResponseID == "" || step1.SessionToken == "" {
		t.Fatalf("Step 1 must hand back an ID and a session token: %+v", step1)
	}

	// Step 3 form resolves the band from the freshest record
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/survey/step3", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var form models.Step3FormResponse
	testutil.AssertJSON(t, w, &form)
	if form.InitialRange != models.BandLow {
		t.Errorf("Expected the band from step 1, got %q", form.InitialRange)
	}

	// Step 3 submit correlates by token even without an email
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/survey/step3", models.Step3Request{
		SpecificPrice: "$441k–$460k",
		BestFeature:   "Condition/Updates",
		Range:         models.BandLow,
		SessionToken:  step1.SessionToken,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var step3 models.Step3Response
	testutil.AssertJSON(t, w, &step3)
	if !step3.Updated || step3.ResponseID != step1.ResponseID {
		t.Errorf("Expected an update of %s, got %+v", step1.ResponseID, step3)
	}

	rows, err := st.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Expected a single record after the anonymous flow, got %d", len(rows))
	}
}

// TestStep3WithoutAnyPriorRecord covers the visitor who deep-links straight
// to step 3: the answers are kept as a fresh record.
func TestStep3WithoutAnyPriorRecord(t *testing.T) {
	mux, st, _ := setupServer(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/survey/step3", models.Step3Request{
		SpecificPrice: "$521k–$540k",
		BestFeature:   "Price",
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var step3 models.Step3Response
	testutil.AssertJSON(t, w, &step3)
	if step3.Updated {
		t.Error("Expected a fallback insert")
	}

	rows, err := st.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected the fallback record, got %d", len(rows))
	}
	// With nothing to resolve against, the default band applies
	if rows[0].InitialRange != models.DefaultBand {
		t.Errorf("Expected the default band, got %q", rows[0].InitialRange)
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Price band constants. The exact strings (en dash included) are part of the
// stored-data contract: record correlation and the admin distribution match
// on them verbatim.
const (
	BandHigh = "$601k–$700k"
	BandMid  = "$501k–$600k"
	BandLow  = "$401k–$500k"
)

// DefaultBand is used when range resolution exhausts every fallback.
const DefaultBand = BandMid

// PriceBands lists the selectable bands in display order.
var PriceBands = []string{BandHigh, BandMid, BandLow}

// BestFeatures lists the step-3 feature options in display order.
var BestFeatures = []string{"Location", "Layout", "Condition/Updates", "Yard/Lot", "Price"}

// Step 2 decision constants
const (
	DecisionContinue = "continue"
	DecisionFinish   = "finish"
)

// Request types

type Step1Request struct {
	InitialRange string `json:"initial_range"`
	AgentEmail   string `json:"agent_email,omitempty"`
	SessionToken string `json:"sid,omitempty"`
}

type Step2Request struct {
	Decision     string `json:"decision"`
	Range        string `json:"range,omitempty"`
	Email        string `json:"email,omitempty"`
	SessionToken string `json:"sid,omitempty"`
}

type Step3Request struct {
	SpecificPrice   string `json:"specific_price"`
	BestFeature     string `json:"best_feature"`
	ImprovementNote string `json:"improvement_note,omitempty"`
	Range           string `json:"range,omitempty"`
	Email           string `json:"email,omitempty"`
	SessionToken    string `json:"sid,omitempty"`
}

// Response types

type Step1Response struct {
	ResponseID   string `json:"response_id"`
	SessionToken string `json:"sid,omitempty"`
	NextURL      string `json:"next_url"`
}

type Step2Response struct {
	NextURL string `json:"next_url"`
}

type Step3FormResponse struct {
	InitialRange   string   `json:"initial_range"`
	SpecificPrices []string `json:"specific_prices"`
	BestFeatures   []string `json:"best_features"`
}

type Step3Response struct {
	ResponseID string `json:"response_id"`
	// Updated is false when no prior record could be found and the
	// follow-up answers were written as a fresh record instead.
	Updated bool   `json:"updated"`
	NextURL string `json:"next_url"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

// Domain types

/// SurveyResponse is the single persisted entity: one visitor's opinion of
// the property, written at entry or step 1 and completed at step 3.
type SurveyResponse struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	InitialRange    string    `json:"initial_range"`
	SpecificPrice   *string   `json:"specific_price,omitempty"`
	BestFeature     *string   `json:"best_feature,omitempty"`
	ImprovementNote *string   `json:"improvement_note,omitempty"`
	AgentEmail      *string   `json:"agent_email,omitempty"`
	SessionToken    *string   `json:"-"` // Never expose in JSON
}

// Admin dashboard types

// LabelCount is one row of a distribution table.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Comment is one improvement note with display-ready metadata.
type Comment struct {
	ResponseID   string `json:"response_id"`
	Note         string `json:"note"`
	AgentEmail   string `json:"agent_email,omitempty"`
	SubmittedAt  string `json:"submitted_at"`
	SubmittedAgo string `json:"submitted_ago"`
}

// ResponseRow is one line of the raw listing, timestamp already localized.
type ResponseRow struct {
	ID              string `json:"id"`
	AgentEmail      string `json:"agent_email,omitempty"`
	InitialRange    string `json:"initial_range"`
	SpecificPrice   string `json:"specific_price,omitempty"`
	BestFeature     string `json:"best_feature,omitempty"`
	ImprovementNote string `json:"improvement_note,omitempty"`
	SubmittedAt     string `json:"submitted_at"`
}

type DashboardResponse struct {
	PropertyLabel       string        `json:"property_label"`
	TotalResponses      int           `json:"total_responses"`
	PriceDistribution   []LabelCount  `json:"price_distribution"`
	FeatureDistribution []LabelCount  `json:"feature_distribution"`
	ImprovementThemes   []LabelCount  `json:"improvement_themes"`
	Comments            []Comment     `json:"comments"`
	Responses           []ResponseRow `json:"responses"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// IsKnownBand reports whether band exactly matches one of the three
// selectable price bands.
func IsKnownBand(band string) bool {
	for _, b := range PriceBands {
		if band == b {
			return true
		}
	}
	return false
}

// IsBestFeature reports whether v is one of the offered feature options.
func IsBestFeature(v string) bool {
	for _, f := range BestFeatures {
		if v == f {
			return true
		}
	}
	return false
}

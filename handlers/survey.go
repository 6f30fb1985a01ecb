// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/danielhkuo/pricepoll/cliparse"
	"github.com/danielhkuo/pricepoll/middleware"
	"github.com/danielhkuo/pricepoll/models"
	"github.com/danielhkuo/pricepoll/store"
	"github.com/danielhkuo/pricepoll/token"
)

// Route constants for navigation targets
const (
	RouteStep1   = "/survey/step1"
	RouteStep2   = "/survey/step2"
	RouteStep3   = "/survey/step3"
	RouteSuccess = "/survey/success"
)

const genericRetryMessage = "Something went wrong. Please try again."

type SurveyHandler struct {
	store store.ResponseStore
	cfg   cliparse.Config
}

func NewSurveyHandler(st store.ResponseStore, cfg cliparse.Config) *SurveyHandler {
	return &SurveyHandler{store: st, cfg: cfg}
}

// Start handles GET /survey/start
// Entry routing: a magic link carrying both range and email writes an
// initial record and skips to step 2; anything else lands on step 1.
// The write is best-effort - a visitor is never blocked on persistence.
func (h *SurveyHandler) Start(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rng := q.Get("range")
	email := q.Get("email")

	if rng == "" || email == "" {
		http.Redirect(w, r, RouteStep1, http.StatusFound)
		return
	}

	sid := h.mintSessionToken()
	_, err := h.store.Insert(&models.SurveyResponse{
		InitialRange: rng,
		AgentEmail:   optional(email),
		SessionToken: optional(sid),
	})
	if err != nil {
		// Still forward: the magic link must land on step 2 even when the
		// save fails.
		slog.Error("failed to save entry response", "error", err, "email", email)
	} else {
		slog.Info("entry response saved", "range", rng, "email", email)
	}

	http.Redirect(w, r, RouteStep2+"?"+stepQuery("", email, sid), http.StatusFound)
}

// SubmitStep1 handles POST /survey/step1
// Persists the visitor's band selection and hands back the step-2 URL.
func (h *SurveyHandler) SubmitStep1(w http.ResponseWriter, r *http.Request) {
	var req models.Step1Request
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.InitialRange == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "initial_range is required")
		return
	}
	if !models.IsKnownBand(req.InitialRange) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "initial_range is not one of the offered price ranges")
		return
	}

	sid := req.SessionToken
	if !token.Valid(sid) {
		sid = h.mintSessionToken()
	}

	responseID, err := h.store.Insert(&models.SurveyResponse{
		InitialRange: req.InitialRange,
		AgentEmail:   optional(req.AgentEmail),
		SessionToken: optional(sid),
	})
	if err != nil {
		slog.Error("failed to insert step-1 response", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, genericRetryMessage)
		return
	}

	slog.Info("step-1 response saved", "response_id", responseID, "range", req.InitialRange)

	middleware.JSONResponse(w, http.StatusCreated, models.Step1Response{
		ResponseID:   responseID,
		SessionToken: sid,
		NextURL:      RouteStep2 + "?" + stepQuery(req.InitialRange, req.AgentEmail, sid),
	})
}

// SubmitStep2 handles POST /survey/step2
// Pure branch, no persistence: continue to the follow-up questions or
// finish the survey early.
func (h *SurveyHandler) SubmitStep2(w http.ResponseWriter, r *http.Request) {
	var req models.Step2Request
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var next string
	switch req.Decision {
	case models.DecisionContinue:
		next = RouteStep3 + "?" + stepQuery(req.Range, req.Email, req.SessionToken)
	case models.DecisionFinish:
		next = RouteSuccess
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, `decision must be "continue" or "finish"`)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.Step2Response{NextURL: next})
}

// Step3Form handles GET /survey/step3
// Resolves the visitor's band and returns the sub-range and feature choices
// to present.
func (h *SurveyHandler) Step3Form(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	band := h.resolveRange(q.Get("range"), q.Get("email"))

	middleware.JSONResponse(w, http.StatusOK, models.Step3FormResponse{
		InitialRange:   band,
		SpecificPrices: models.SubRanges(band),
		BestFeatures:   models.BestFeatures,
	})
}

// SubmitStep3 handles POST /survey/step3
// Validates the follow-up answers, locates the visitor's record, and writes
// all three fields in one update. When no record can be found the answers
// are saved as a fresh record rather than lost.
func (h *SurveyHandler) SubmitStep3(w http.ResponseWriter, r *http.Request) {
	var req models.Step3Request
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Required-field validation happens before any store I/O.
	if req.SpecificPrice == "" || req.BestFeature == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please answer all required questions.")
		return
	}

	band := h.resolveRange(req.Range, req.Email)

	if !models.IsSubRange(band, req.SpecificPrice) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "specific_price is not one of the offered sub-ranges")
		return
	}
	if !models.IsBestFeature(req.BestFeature) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "best_feature is not one of the offered options")
		return
	}

	// Blank notes are stored as NULL, not empty strings.
	var note *string
	if strings.TrimSpace(req.ImprovementNote) != "" {
		note = &req.ImprovementNote
	}

	target, err := h.findTarget(req, band)
	if err != nil {
		slog.Error("failed to locate response for update", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, genericRetryMessage)
		return
	}

	if target != nil {
		if err := h.store.SetFollowUp(target.ID, req.SpecificPrice, req.BestFeature, note); err != nil {
			slog.Error("failed to update response", "error", err, "response_id", target.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, genericRetryMessage)
			return
		}

		slog.Info("step-3 answers saved", "response_id", target.ID, "updated", true)
		middleware.JSONResponse(w, http.StatusOK, models.Step3Response{
			ResponseID: target.ID,
			Updated:    true,
			NextURL:    RouteSuccess,
		})
		return
	}

	// No prior record to reconcile: fall back to inserting one that carries
	// both the resolved band and the follow-up answers.
	var sid string
	if token.Valid(req.SessionToken) {
		sid = req.SessionToken
	}
	responseID, err := h.store.Insert(&models.SurveyResponse{
		InitialRange:    band,
		SpecificPrice:   &req.SpecificPrice,
		BestFeature:     &req.BestFeature,
		ImprovementNote: note,
		AgentEmail:      optional(req.Email),
		SessionToken:    optional(sid),
	})
	if err != nil {
		slog.Error("failed to insert fallback response", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, genericRetryMessage)
		return
	}

	slog.Info("step-3 answers saved", "response_id", responseID, "updated", false)
	middleware.JSONResponse(w, http.StatusOK, models.Step3Response{
		ResponseID: responseID,
		Updated:    false,
		NextURL:    RouteSuccess,
	})
}

// Success handles GET /survey/success
func (h *SurveyHandler) Success(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{
		Message: "Thank you! Your feedback has been recorded.",
	})
}

// resolveRange walks the fallback chain for the visitor's band: the URL
// parameter wins outright, then the most recent record matching the email,
// then the most recent record overall, then the default band. Each lookup
// runs only if the previous one yielded nothing; read failures fall through
// silently.
func (h *SurveyHandler) resolveRange(rng, email string) string {
	if rng != "" {
		return rng
	}

	if email != "" {
		rows, err := h.store.Find(store.Filter{AgentEmail: email}, 1)
		if err != nil {
			slog.Warn("range lookup by email failed", "error", err, "email", email)
		} else if len(rows) > 0 && rows[0].InitialRange != "" {
			return rows[0].InitialRange
		}
	}

	rows, err := h.store.Find(store.Filter{}, 1)
	if err != nil {
		slog.Warn("range lookup failed", "error", err)
	} else if len(rows) > 0 && rows[0].InitialRange != "" {
		return rows[0].InitialRange
	}

	return models.DefaultBand
}

// findTarget locates the record step 3 should update: by session token when
// one was carried, otherwise the most recent record matching the resolved
// band (and the email, when present).
func (h *SurveyHandler) findTarget(req models.Step3Request, band string) (*models.SurveyResponse, error) {
	if token.Valid(req.SessionToken) {
		rows, err := h.store.Find(store.Filter{SessionToken: req.SessionToken}, 1)
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 {
			return &rows[0], nil
		}
	}

	f := store.Filter{InitialRange: band}
	if req.Email != "" {
		f.AgentEmail = req.Email
	}
	rows, err := h.store.Find(f, 1)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		return &rows[0], nil
	}

	return nil, nil
}

// mintSessionToken returns a new token, or "" when entropy is unavailable.
// The flow keeps working without one - correlation just falls back to the
// email/recency heuristics.
func (h *SurveyHandler) mintSessionToken() string {
	sid, err := token.NewSessionToken()
	if err != nil {
		slog.Error("failed to mint session token", "error", err)
		return ""
	}
	return sid
}

// stepQuery builds the query string that carries wizard state between steps.
// Empty values are omitted.
func stepQuery(rng, email, sid string) string {
	q := url.Values{}
	if rng != "" {
		q.Set("range", rng)
	}
	if email != "" {
		q.Set("email", email)
	}
	if sid != "" {
		q.Set("sid", sid)
	}
	return q.Encode()
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

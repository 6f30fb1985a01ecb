// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pricepoll/cliparse"
	"github.com/danielhkuo/pricepoll/middleware"
	"github.com/danielhkuo/pricepoll/models"
	"github.com/danielhkuo/pricepoll/store"
)

type AdminHandler struct {
	store store.ResponseStore
	cfg   cliparse.Config
}

func NewAdminHandler(st store.ResponseStore, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: st, cfg: cfg}
}

// Dashboard handles GET /admin/dashboard
// One bulk read feeds every summary; if that read fails nothing partial is
// shown.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	responses, err := h.store.All()
	if err != nil {
		slog.Error("failed to load responses for dashboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load responses.")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DashboardResponse{
		PropertyLabel:       h.cfg.PropertyLabel,
		TotalResponses:      len(responses),
		PriceDistribution:   PriceRangeDistribution(responses),
		FeatureDistribution: BestFeatureDistribution(responses),
		ImprovementThemes:   ImprovementThemes(responses),
		Comments:            ImprovementComments(responses),
		Responses:           ResponseRows(responses),
	})
}

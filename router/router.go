// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/pricepoll/cliparse"
	"github.com/danielhkuo/pricepoll/handlers"
	"github.com/danielhkuo/pricepoll/middleware"
	"github.com/danielhkuo/pricepoll/store"
)

func NewRouter(st store.ResponseStore, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	surveyHandler := handlers.NewSurveyHandler(st, cfg)
	adminHandler := handlers.NewAdminHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Survey wizard (public)
	mux.HandleFunc("GET /survey/start", middleware.WithLogging(surveyHandler.Start))
	mux.HandleFunc("POST /survey/step1", middleware.WithLogging(surveyHandler.SubmitStep1))
	mux.HandleFunc("POST /survey/step2", middleware.WithLogging(surveyHandler.SubmitStep2))
	mux.HandleFunc("GET /survey/step3", middleware.WithLogging(surveyHandler.Step3Form))
	mux.HandleFunc("POST /survey/step3", middleware.WithLogging(surveyHandler.SubmitStep3))
	mux.HandleFunc("GET /survey/success", middleware.WithLogging(surveyHandler.Success))

	// Admin analytics (independent read-only route)
	mux.HandleFunc("GET /admin/dashboard", middleware.WithLogging(adminHandler.Dashboard))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pricepoll API v1"))
	})

	return mux
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Request Logging

WithLogging wraps a handler and logs start/completion with duration:

	mux.HandleFunc("POST /survey/step1", middleware.WithLogging(h.SubmitStep1))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusBadRequest, "initial_range is required")
	middleware.ParseJSONBody(r, &req)

ErrorResponse produces the models.ErrorResponse shape with the standard
status text as the error field.

# CORS

CORS wraps the whole mux so the browser frontend on another origin can call
the API, and answers OPTIONS preflights directly.
*/
package middleware

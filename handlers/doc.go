// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the pricepoll API.

# Handler Types

Each handler is a struct holding the response store and config:

	surveyHandler := handlers.NewSurveyHandler(st, cfg)
	adminHandler := handlers.NewAdminHandler(st, cfg)

  - SurveyHandler: the multi-step wizard (entry, steps 1-3, success)
  - AdminHandler: the analytics dashboard

# Survey Flow

Visitors move through the wizard by following next_url values; state is
reconstructed per request from the range/email/sid parameters:

	GET  /survey/start   → entry routing (magic link or step 1)
	POST /survey/step1   → insert initial record, forward to step 2
	POST /survey/step2   → pure branch: continue or finish
	GET  /survey/step3   → range resolution + form choices
	POST /survey/step3   → update the visitor's record (or fallback insert)
	GET  /survey/success → terminal

Step 3 correlation order: session token, then most recent record matching
the resolved band (and email when present). The entry insert is best-effort:
its failure is logged and the redirect happens regardless.

# Aggregation

The admin summaries are pure functions over an in-memory snapshot,
implemented in aggregate.go:

	PriceRangeDistribution(responses)
	BestFeatureDistribution(responses)
	ImprovementThemes(responses)
	FormatPhoenix(createdAt)

Timestamps render in America/Phoenix, which observes no daylight saving.
*/
package handlers

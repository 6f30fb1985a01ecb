// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

Routes use Go 1.22+ method patterns on the standard mux. NewRouter wires the
survey and admin handlers to a shared response store:

	mux := router.NewRouter(store.NewSQLStore(conn), cfg)

# Routes

	GET  /health           → liveness probe
	GET  /survey/start     → entry routing (magic links land here)
	POST /survey/step1     → initial band selection
	POST /survey/step2     → continue/finish branch
	GET  /survey/step3     → follow-up form choices
	POST /survey/step3     → follow-up submission
	GET  /survey/success   → terminal page payload
	GET  /admin/dashboard  → aggregated + raw results
	GET  /                 → service banner

Every route is wrapped with request logging; CORS is applied to the whole
mux in main.
*/
package router

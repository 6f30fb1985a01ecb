// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the pricepoll API server.

Pricepoll is a multi-step public survey backend collecting price opinions on
a listed property, with an admin analytics endpoint. Visitors arrive via a
direct link or a personalized magic link (pre-filled range and email), answer
up to three steps, and every answer lands in a single response table.

# Starting the Server

The server runs on SQLite out of the box:

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3561 -t postgres -d "postgres://..."

# Configuration

Optional settings (flags override env):

  - PORT (-p): server port (default: 3561)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string (required for postgres)
  - PROPERTY_LABEL (-property): listing label on the admin dashboard

A .env file in the working directory is loaded at startup.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: survey wizard and admin dashboard handlers, plus the pure
    aggregation functions the dashboard uses
  - store: the response-store client (insert, filtered select, update)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response types, the response entity, price-band math
  - token: opaque session tokens correlating a visitor's records
  - db: driver selection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main

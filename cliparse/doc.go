// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment variables.

# Precedence

CLI flags override environment variables, which override defaults:

	go run . -p 8080 -t postgres -d "postgres://..."

# Settings

  - PORT (-p): server port (default: 3561)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string; required for postgres, defaults to
    a local file for sqlite
  - PROPERTY_LABEL (-property): listing label shown on the admin dashboard

A .env file, if present, is loaded by main before parsing.
*/
package cliparse

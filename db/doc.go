// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Connecting

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg) // sqlite or postgres

SQLite connections are capped at one pooled handle, which serializes writes
and keeps in-memory test databases on a single connection.

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Table

The schema is a single table:

  - response: one row per survey submission; created at entry or step 1,
    completed by a single step-3 update

created_at is stored as unix nanoseconds; recency ordering (the basis of
record correlation) then behaves identically under both drivers. Indexes
cover created_at, agent_email, and session_token - the three correlation
lookups.

Both drivers accept the $N placeholders used throughout this codebase as
long as they appear in ascending order, which every query here does.
*/
package db

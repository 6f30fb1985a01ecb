// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the record-store client for survey responses.

# Interface

ResponseStore exposes the four operations the survey flow needs:

	Insert(r) (id, error)           // assigns ID + CreatedAt
	All() ([]SurveyResponse, error) // most recent first
	Find(filter, limit)             // equality filters, most recent first
	SetFollowUp(id, price, feature, note)

Handlers depend on the interface, not on *sql.DB. That isolates the entry
path's fire-and-forget write behind a swappable boundary and lets tests
substitute a failing store.

# Guarantees

Each operation is independently atomic at the single-record level. There are
no transactions spanning calls: step 3's find-then-update is two separate
calls, and two concurrent submissions for the same visitor can race. The
session token narrows that window but the store itself does not prevent it.

Record IDs are UUIDs minted here (the store owns ID assignment). CreatedAt
is set once on insert and never rewritten.
*/
package store

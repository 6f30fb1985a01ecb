// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pricepoll/cliparse"
	"github.com/danielhkuo/pricepoll/db"
	"github.com/danielhkuo/pricepoll/models"
	"github.com/danielhkuo/pricepoll/store"
)

// GetTestConfig returns a standard test configuration backed by an
// in-memory SQLite database, so tests need no external services.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3561,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		PropertyLabel: "3561 W Dublin St",
	}
}

// SetupTestDB creates a fresh in-memory database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(GetTestConfig())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore creates a response store over a fresh test database.
func SetupTestStore(t *testing.T) *store.SQLStore {
	t.Helper()
	return store.NewSQLStore(SetupTestDB(t))
}

// SeedResponse inserts a record and returns its ID. Preset CreatedAt values
// are respected, which lets tests build a recency history.
func SeedResponse(t *testing.T, st store.ResponseStore, r models.SurveyResponse) string {
	t.Helper()

	id, err := st.Insert(&r)
	if err != nil {
		t.Fatalf("Failed to seed response: %v", err)
	}
	return id
}

// StringPtr returns a pointer to s, for filling optional record fields.
func StringPtr(s string) *string {
	return &s
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

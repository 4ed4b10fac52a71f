// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/bonus-redeem/cliparse"
	"github.com/danielhkuo/bonus-redeem/db"
	"github.com/danielhkuo/bonus-redeem/store"
)

// TestAdminKey is the admin key in GetTestConfig
const TestAdminKey = "test-admin-key"

// SetupTestDB creates a fresh SQLite database in a temp dir with the full
// schema and seeded codes. It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	conn, err := db.Open(ctx, db.SQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if _, err := db.Bootstrap(ctx, conn, db.SQLite); err != nil {
		t.Fatalf("Failed to bootstrap test database: %v", err)
	}

	return conn
}

// SetupTestStore wraps SetupTestDB in a SQLStore
func SetupTestStore(t *testing.T) (*store.SQLStore, *sql.DB) {
	t.Helper()

	conn := SetupTestDB(t)
	return store.NewSQLStore(conn, db.SQLite), conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            5000,
		DatabaseType:    "sqlite",
		DatabaseURL:     ":memory:",
		AdminKey:        TestAdminKey,
		CheckRatePerMin: 0,
		LogLevel:        "info",
		LogFormat:       "json",
	}
}

// CreateTestUser registers a user directly through the store
func CreateTestUser(t *testing.T, s store.Store, phone, name string) {
	t.Helper()

	if _, err := s.AddUser(context.Background(), phone, name); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
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

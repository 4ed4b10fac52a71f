// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/bonus-redeem/models"
)

func TestWithLogging(t *testing.T) {
	handlerCalled := false
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}

	wrappedHandler := WithLogging(testHandler)

	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	wrappedHandler(w, req)

	if !handlerCalled {
		t.Error("Expected handler to be called")
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}
}

func TestWithLogging_RequestID(t *testing.T) {
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {})

	t.Run("generated when absent", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/check-bonus", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		id := w.Header().Get(RequestIDHeader)
		if len(id) != 36 {
			t.Errorf("Expected a UUID request id, got '%s'", id)
		}
	})

	t.Run("echoed when supplied", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/check-bonus", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		handler(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Errorf("Expected request id 'abc-123', got '%s'", got)
		}
	})
}

func TestWithLogging_PreservesResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, `{"status":"success"}`},
		{"BadRequest", http.StatusBadRequest, `{"error":"missing parameters"}`},
		{"Forbidden", http.StatusForbidden, `{"error":"unauthorized"}`},
		{"InternalError", http.StatusInternalServerError, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("POST", "/api/test", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestJSONResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		data       interface{}
		expected   string
	}{
		{
			name:       "check bonus response",
			statusCode: http.StatusOK,
			data:       models.CheckBonusResponse{Status: models.StatusSuccess},
			expected:   `{"status":"success"}`,
		},
		{
			name:       "add user response",
			statusCode: http.StatusOK,
			data:       models.AddUserResponse{Success: true},
			expected:   `{"success":true}`,
		},
		{
			name:       "error response",
			statusCode: http.StatusBadRequest,
			data:       models.ErrorResponse{Error: "missing parameters"},
			expected:   `{"error":"missing parameters"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			contentType := w.Header().Get("Content-Type")
			if contentType != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
			}

			// Trim newline added by Encode
			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, body)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		message    string
	}{
		{"bad request", http.StatusBadRequest, "missing parameters"},
		{"forbidden", http.StatusForbidden, "unauthorized"},
		{"rate limited", http.StatusTooManyRequests, "too many requests"},
		{"internal error", http.StatusInternalServerError, "database is locked"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode, tc.message)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Header().Get("Content-Type") != "application/json" {
				t.Error("Expected Content-Type 'application/json'")
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if resp.Error != tc.message {
				t.Errorf("Expected error '%s', got '%s'", tc.message, resp.Error)
			}
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		body := `{"phone":"+1555","day":5,"code":"uh6x"}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))

		var parsed models.CheckBonusRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Phone != "+1555" || parsed.Day != 5 || parsed.Code != "uh6x" {
			t.Errorf("Unexpected parse result: %+v", parsed)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{invalid json}`))

		var parsed models.CheckBonusRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for invalid JSON")
		}
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(""))

		var parsed models.CheckBonusRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for empty body")
		}
	})

	t.Run("extra fields ignored", func(t *testing.T) {
		body := `{"name":"A","phone":"+1555","secretKey":"k","unknown_field":"ignored"}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))

		var parsed models.AddUserRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Name != "A" {
			t.Errorf("Expected name 'A', got '%s'", parsed.Name)
		}
	})

	t.Run("body is consumed after parsing", func(t *testing.T) {
		body := `{"phone":"+1555"}`
		req := httptest.NewRequest("POST", "/", io.NopCloser(bytes.NewReader([]byte(body))))

		var parsed models.CheckBonusRequest
		_ = ParseJSONBody(req, &parsed)

		remaining, _ := io.ReadAll(req.Body)
		if len(remaining) > 0 {
			t.Error("Expected body to be consumed")
		}
	})
}

func TestCORS(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	})
	corsHandler := CORS(nextHandler)

	t.Run("preflight request", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/check-bonus", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200 for preflight, got %d", w.Code)
		}
		if w.Body.String() == "handled" {
			t.Error("Preflight should not reach the next handler")
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Errorf("Expected wildcard origin, got '%s'", w.Header().Get("Access-Control-Allow-Origin"))
		}
		if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "POST") {
			t.Error("Expected POST in allowed methods")
		}
	})

	t.Run("regular request with origin", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/check-bonus", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		if w.Body.String() != "handled" {
			t.Error("Expected next handler to be called")
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected Access-Control-Allow-Origin '*'")
		}
	})

	t.Run("request without origin passes through", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Body.String() != "handled" {
			t.Error("Expected next handler to be called")
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		trustProxy bool
		expectedIP string
	}{
		{
			name:       "X-Forwarded-For single IP",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100"},
			remoteAddr: "10.0.0.1:12345",
			trustProxy: true,
			expectedIP: "192.168.1.100",
		},
		{
			name:       "X-Forwarded-For chained IPs",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18, 150.172.238.178"},
			remoteAddr: "127.0.0.1:12345",
			trustProxy: true,
			expectedIP: "203.0.113.195",
		},
		{
			name:       "X-Real-IP takes precedence over RemoteAddr",
			headers:    map[string]string{"X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			trustProxy: true,
			expectedIP: "203.0.113.50",
		},
		{
			name:       "X-Forwarded-For takes precedence over X-Real-IP",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100", "X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			trustProxy: true,
			expectedIP: "192.168.1.100",
		},
		{
			name:       "Empty X-Forwarded-For hop falls through",
			headers:    map[string]string{"X-Forwarded-For": " , 70.41.3.18", "X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			trustProxy: true,
			expectedIP: "203.0.113.50",
		},
		{
			name:       "X-Forwarded-For ignored without trusted proxy",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "10.0.0.1",
		},
		{
			name:       "X-Real-IP ignored without trusted proxy",
			headers:    map[string]string{"X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "10.0.0.1",
		},
		{
			name:       "RemoteAddr with port",
			remoteAddr: "192.168.1.50:54321",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "RemoteAddr without port",
			remoteAddr: "192.168.1.50",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "IPv6 RemoteAddr with port",
			remoteAddr: "[::1]:12345",
			expectedIP: "::1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if result := GetClientIP(req, tc.trustProxy); result != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, result)
			}
		})
	}
}

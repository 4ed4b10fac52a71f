// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /check-bonus", middleware.WithLogging(handler))

Each request gets an X-Request-ID (taken from the request or a fresh UUID),
echoed in the response. Start and completion lines are logged with slog and
the latency is recorded in the http_request_latency_ms histogram.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Built on github.com/go-chi/cors; any origin may call GET and POST.

# Rate Limiting

Per-client-IP token buckets (golang.org/x/time/rate):

	rl := middleware.NewRateLimiter(cfg.CheckRatePerMin, cfg.TrustProxy)
	mux.HandleFunc("POST /check-bonus", rl.Limit(handler))

Over the limit the request gets 429 {"error": "too many requests"}.
A nil *RateLimiter (perMinute 0) passes everything through. Buckets idle
long enough to have refilled are dropped on a later request.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "missing parameters")

	var req models.CheckBonusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrInvalidJSON)
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r, cfg.TrustProxy)

With trustProxy, X-Forwarded-For (first hop) and X-Real-IP win over
RemoteAddr. Without it only RemoteAddr is used.
*/
package middleware

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/bonus-redeem/auth"
	"github.com/danielhkuo/bonus-redeem/cliparse"
	"github.com/danielhkuo/bonus-redeem/metrics"
	"github.com/danielhkuo/bonus-redeem/middleware"
	"github.com/danielhkuo/bonus-redeem/models"
	"github.com/danielhkuo/bonus-redeem/store"
)

type AdminHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewAdminHandler(s store.Store, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: s, cfg: cfg}
}

// AddUser handles POST /add-user
func (h *AdminHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	var req models.AddUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrInvalidJSON)
		return
	}

	// Key check precedes parameter validation
	if err := auth.ValidateAdminKey(req.SecretKey, h.cfg.AdminKey); err != nil {
		slog.Warn("add-user rejected", "remote", middleware.GetClientIP(r, h.cfg.TrustProxy))
		middleware.ErrorResponse(w, http.StatusForbidden, models.ErrUnauthorized)
		return
	}

	if req.Name == "" || req.Phone == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrMissingParameters)
		return
	}

	phone := string(req.Phone)
	created, err := h.store.AddUser(r.Context(), phone, req.Name)
	if err != nil {
		slog.Error("failed to add user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.IncUserAdded(created)
	slog.Info("user registered",
		"phone_hash", auth.HashPhone(phone, h.cfg.AdminKey),
		"created", created,
	)

	middleware.JSONResponse(w, http.StatusOK, models.AddUserResponse{Success: true})
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/bonus-redeem/auth"
	"github.com/danielhkuo/bonus-redeem/cliparse"
	"github.com/danielhkuo/bonus-redeem/metrics"
	"github.com/danielhkuo/bonus-redeem/middleware"
	"github.com/danielhkuo/bonus-redeem/models"
	"github.com/danielhkuo/bonus-redeem/store"
)

type BonusHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewBonusHandler(s store.Store, cfg cliparse.Config) *BonusHandler {
	return &BonusHandler{store: s, cfg: cfg}
}

// CheckBonus handles POST /check-bonus
func (h *BonusHandler) CheckBonus(w http.ResponseWriter, r *http.Request) {
	var req models.CheckBonusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrInvalidJSON)
		return
	}

	if req.Phone == "" || req.Day == 0 || req.Code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrMissingParameters)
		return
	}

	ctx := r.Context()
	phone := string(req.Phone)
	day := int(req.Day)

	// Phone must belong to a registered user
	_, err := h.store.FindUser(ctx, phone)
	if errors.Is(err, store.ErrNotFound) {
		h.respond(w, models.StatusUnauthorized)
		return
	}
	if err != nil {
		h.storageError(w, "failed to look up user", err)
		return
	}

	// Day must exist and the code must match its secret
	code, err := h.store.FindCode(ctx, day)
	if errors.Is(err, store.ErrNotFound) {
		h.respond(w, models.StatusInvalidCode)
		return
	}
	if err != nil {
		h.storageError(w, "failed to look up code", err)
		return
	}
	if !auth.CodesMatch(code.Secret, req.Code) {
		h.respond(w, models.StatusInvalidCode)
		return
	}

	redeemed, err := h.store.Redeem(ctx, phone, day)
	if err != nil {
		h.storageError(w, "failed to record redemption", err)
		return
	}
	if !redeemed {
		h.respond(w, models.StatusAlreadyUsed)
		return
	}

	slog.Info("bonus redeemed", "phone_hash", auth.HashPhone(phone, h.cfg.AdminKey), "day", day)
	h.respond(w, models.StatusSuccess)
}

func (h *BonusHandler) respond(w http.ResponseWriter, status string) {
	metrics.IncBonusCheck(status)
	middleware.JSONResponse(w, http.StatusOK, models.CheckBonusResponse{Status: status})
}

func (h *BonusHandler) storageError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	metrics.IncBonusCheck("error")
	middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

var ErrInvalidAdminKey = errors.New("invalid admin key")

// ValidateAdminKey checks the submitted key against the configured one.
// Both sides are hashed first so the comparison does not leak length.
// An empty key on either side never validates.
func ValidateAdminKey(provided, expected string) error {
	if provided == "" || expected == "" {
		return ErrInvalidAdminKey
	}

	p := sha256.Sum256([]byte(provided))
	e := sha256.Sum256([]byte(expected))
	if !hmac.Equal(p[:], e[:]) {
		return ErrInvalidAdminKey
	}
	return nil
}

// HashPhone creates a one-way hash of a phone number for logs
func HashPhone(phone, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(phone))
	sum := h.Sum(nil)
	// First 16 hex chars (64 bits) are enough to correlate log lines
	return hex.EncodeToString(sum[:8])
}

// CodesMatch compares a stored secret with a submitted code, ignoring case
func CodesMatch(secret, submitted string) bool {
	return strings.EqualFold(secret, submitted)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the admin gate and code comparison helpers.

# Admin Key

POST /add-user requires the shared ADMIN_KEY:

	if err := auth.ValidateAdminKey(req.SecretKey, cfg.AdminKey); err != nil {
		// 403
	}

Both values are SHA-256 hashed and compared with hmac.Equal, so timing
reveals neither content nor length. Empty keys are always rejected.

# Day Codes

Day secrets are compared case-insensitively:

	auth.CodesMatch("UH6X", "uh6x") // true

# Phone Hashing

Phones are logged as a salted HMAC prefix rather than in clear text:

	slog.Info("bonus redeemed", "phone_hash", auth.HashPhone(phone, salt))
*/
package auth

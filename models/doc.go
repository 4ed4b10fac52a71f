// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

  - CheckBonusRequest: phone, day, code
  - AddUserRequest: name, phone, secretKey

Day accepts a JSON number (5) or a numeric string ("5").

# Response Types

  - CheckBonusResponse: status
  - AddUserResponse: success
  - ErrorResponse: error

# Status Values

Business outcomes of POST /check-bonus are 200 responses:

	StatusSuccess      = "success"
	StatusUnauthorized = "unauthorized"  // phone not registered
	StatusInvalidCode  = "invalid_code"  // unknown day or wrong code
	StatusAlreadyUsed  = "already_used"  // (phone, day) redeemed before

Protocol failures (400, 403, 429, 500) use ErrorResponse instead.
*/
package models

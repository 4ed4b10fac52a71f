// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the bonus redemption API.

# Handler Types

Each handler is a struct with a store and config dependency:

  - BonusHandler: code checks and redemption
  - AdminHandler: user registration

Handlers are created via constructor functions that accept a store.Store and Config:

	bonusHandler := handlers.NewBonusHandler(st, cfg)

# Checking a Code

	POST /check-bonus {"phone": "+1555", "day": 5, "code": "uh6x"}

The checks run in order and stop at the first that fails:

 1. all of phone, day, code present, else 400 {"error": "missing parameters"}
 2. phone registered, else {"status": "unauthorized"}
 3. day has a code equal to the submitted one ignoring case, else {"status": "invalid_code"}
 4. (phone, day) not yet redeemed, else {"status": "already_used"}

Otherwise the redemption is recorded and {"status": "success"} returned.
Steps 2-4 answer 200; only protocol failures use error statuses. Storage
failures answer 500 with the underlying error message.

# Registering Users

	POST /add-user {"name": "A", "phone": "+1555", "secretKey": "..."}

A wrong secretKey answers 403 {"error": "unauthorized"}. Registering an
existing phone succeeds without changing the stored name.
*/
package handlers

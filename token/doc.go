// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package token generates opaque session tokens.

A token is minted when a visitor's first record is written (entry redirect or
step 1), persisted on the record, and carried through the wizard as the `sid`
query parameter. Step 3 uses it to locate the record to update without
falling back to email/recency heuristics.

	sid, err := token.NewSessionToken()

Tokens are 192 bits of crypto/rand entropy, URL-safe base64 without padding.
Valid rejects malformed values before they reach the store.
*/
package token

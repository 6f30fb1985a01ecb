// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

// sessionTokenBytes is the entropy of a session token. 24 bytes = 192 bits,
// enough that collisions between visitors are not a practical concern.
const sessionTokenBytes = 24

// encodedLen is the length of a well-formed token after unpadded base64url.
var encodedLen = base64.RawURLEncoding.EncodedLen(sessionTokenBytes)

// NewSessionToken creates a random opaque token correlating one visitor's
// records across survey steps.
func NewSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// Valid reports whether s looks like a token this package produced. Tokens
// travel as query parameters, so anything a visitor typed in by hand must be
// ignored rather than queried against the store.
func Valid(s string) bool {
	if len(s) != encodedLen {
		return false
	}
	_, err := base64.RawURLEncoding.DecodeString(s)
	return err == nil
}

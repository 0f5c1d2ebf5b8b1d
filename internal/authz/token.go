package authz

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// Session tokens are deliberately non-cryptographic demo tokens in the shape
// mock.<userId>.<random>; the embedded user id is the whole session state, so
// tokens survive restarts and password resets do not invalidate them.
const tokenPrefix = "mock"

// MakeToken issues a session token for the given user.
func MakeToken(userID string) string {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; keep the token
		// shape valid regardless.
		return tokenPrefix + "." + userID + ".0"
	}
	return tokenPrefix + "." + userID + "." + hex.EncodeToString(buf)
}

// TokenUserID extracts the user id embedded in a session token. A token that
// does not match the expected shape yields ok=false.
func TokenUserID(token string) (string, bool) {
	parts := strings.Split(token, ".")
	if len(parts) < 3 {
		return "", false
	}
	if parts[0] != tokenPrefix {
		return "", false
	}
	if parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

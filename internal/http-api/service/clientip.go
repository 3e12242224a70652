package service

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

// UnknownClientAddr is the sentinel used when no proxy header carries a
// client address. All such requests share one throttle bucket.
const UnknownClientAddr = "unknown"

// ResolveClientAddr extracts the originating network address from proxy
// headers, in order of trust: the first X-Forwarded-For entry, then
// X-Real-IP, then Cloudflare's CF-Connecting-IP. The service sits behind a
// proxy in every deployment, so the socket address is never the client.
func ResolveClientAddr(header http.Header) string {
	if forwarded := header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	if realIP := header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	if cfIP := header.Get("CF-Connecting-IP"); cfIP != "" {
		return cfIP
	}

	return UnknownClientAddr
}

// HashClientAddr derives the pseudonymous throttle key for an address. The
// digest is one-way and keyed with a server secret, so the stored key cannot
// be reversed to the address without it, while repeated requests from the
// same address collide to the same key.
func HashClientAddr(addr, secret string) string {
	sum := sha256.Sum256([]byte(addr + secret))
	return hex.EncodeToString(sum[:])
}

// Package address extracts and normalizes contract addresses found in raw
// contract failure traces.
//
// A failing invocation produces one "Error in the called contract (<addr>)"
// frame per call-stack level, outermost first. The innermost frame names the
// contract that actually raised the failure, so ExtractTarget returns the
// address of the last frame.
//
// Addresses are compared in normalized form: lowercase with the leading zero
// digits after the 0x prefix collapsed, so that two textual encodings of the
// same on-chain address are equal map keys.
package address

import (
	"regexp"
	"strings"
)

var (
	// frameMatcher captures the address of every contract frame in a trace.
	frameMatcher = regexp.MustCompile(`Error in the called contract \(([^\n]*)\)`)

	// leadingZeros matches the prefix and any zero digits that follow it.
	leadingZeros = regexp.MustCompile(`^0x0*`)

	// validAddress is the accepted shape for a rendered address.
	validAddress = regexp.MustCompile(`^0x0*?[0-9a-fA-F]{1,64}$`)
)

// Normalize lowercases addr and strips the zero digits immediately after the
// 0x prefix. The prefix itself is always preserved, so "0x000abc" becomes
// "0xabc" and "0x0" becomes "0x". Normalize is idempotent.
func Normalize(addr string) string {
	return leadingZeros.ReplaceAllString(strings.ToLower(addr), "0x")
}

// ExtractTarget returns the normalized address of the innermost contract
// frame in raw. The boolean is false when raw holds no frame or the innermost
// frame carries an empty address.
func ExtractTarget(raw string) (string, bool) {
	matches := frameMatcher.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return "", false
	}

	last := strings.TrimSpace(matches[len(matches)-1][1])
	if last == "" {
		return "", false
	}

	return Normalize(last), true
}

// IsValid reports whether addr is 0x followed by 1 to 64 hex digits. Extra
// leading zeros are tolerated.
func IsValid(addr string) bool {
	return validAddress.MatchString(addr)
}

// Equal reports whether a and b name the same contract.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

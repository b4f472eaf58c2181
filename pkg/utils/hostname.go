package utils

import (
	"strings"
)

const (
	// MaxHostnameLength is the maximum length of a hostname per RFC 1035
	MaxHostnameLength = 253
)

// StripPort removes a trailing :port from a host header value.
// Example: "shop.example.com:443" -> "shop.example.com".
func StripPort(host string) string {
	if idx := strings.Index(host, ":"); idx != -1 {
		return host[:idx]
	}
	return host
}

// NormalizeHost lowercases a hostname, strips the port and a leading "www." prefix.
// Example: "WWW.Shop.Example.com:443" -> "shop.example.com".
func NormalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(StripPort(host)))
	return strings.TrimPrefix(host, "www.")
}

// HostVariants returns the set of hostname spellings considered equivalent
// for a domain lookup: the raw host, the apex (www-stripped) form, and the
// www-prefixed apex form. Duplicates are removed, order is preserved.
func HostVariants(host string) []string {
	raw := strings.ToLower(strings.TrimSpace(StripPort(host)))
	if raw == "" {
		return nil
	}
	apex := NormalizeHost(host)

	variants := []string{raw}
	seen := map[string]bool{raw: true}
	for _, v := range []string{apex, "www." + apex} {
		if !seen[v] {
			variants = append(variants, v)
			seen[v] = true
		}
	}
	return variants
}

// IsValidHostname checks basic hostname sanity (length, no spaces, has a dot).
func IsValidHostname(host string) bool {
	host = StripPort(host)
	if host == "" || len(host) > MaxHostnameLength {
		return false
	}
	if strings.ContainsAny(host, " \t/\\") {
		return false
	}
	return strings.Contains(host, ".")
}

// LastPathSegment returns the last non-empty segment of a URL path.
// Returns "" for the root path.
func LastPathSegment(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}

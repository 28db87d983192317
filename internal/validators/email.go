package validators

import (
	"net"
	"strings"
)

// NormalizeEmail canonicalizes an address the way it is stored and
// compared: trimmed and lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailDomainValid reports whether the address's domain can receive
// mail. MX records are authoritative; a plain A/AAAA record is accepted
// as a fallback since small domains often receive on the apex host.
func IsEmailDomainValid(email string) bool {
	domain := emailDomain(email)
	if domain == "" {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}

// emailDomain extracts the part after the last @, or "" when the
// address has no usable local part or domain.
func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}

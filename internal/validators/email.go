package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid controlla che il dominio dell'email esista
// davvero (record MX, in mancanza almeno un A/AAAA).
func IsEmailDomainValid(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

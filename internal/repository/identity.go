package repository

import "strings"

// worksheetNameLimit matches the 31-character tab-name limit of common
// spreadsheet backends.
const worksheetNameLimit = 31

var identityReplacer = strings.NewReplacer("@", "_", ".", "_")

// SanitizeIdentity maps an email-like identity to a worksheet-name-safe
// token: "@" and "." become "_" and the result truncates to 31 characters.
// Deterministic and idempotent. Two long identities that share a 31-char
// prefix after replacement collide onto one worksheet; known limitation,
// kept from the original design.
func SanitizeIdentity(identity string) string {
	name := identityReplacer.Replace(identity)
	if len(name) > worksheetNameLimit {
		name = name[:worksheetNameLimit]
	}
	return name
}

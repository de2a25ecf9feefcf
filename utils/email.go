package utils

import (
	"regexp"
	"strings"

	emailaddress "github.com/mcnijman/go-emailaddress"
)

// Registration is restricted to UWC addresses whose local part is a
// student number of at least seven digits.
var studentNumber = regexp.MustCompile(`^\d{7,}$`)

var allowedDomains = map[string]bool{
	"myuwc.ac.za": true,
	"uwc.ac.za":   true,
}

// IsValidUniversityEmail reports whether the address is a well-formed UWC
// student email.
func IsValidUniversityEmail(email string) bool {
	addr, err := emailaddress.Parse(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return false
	}
	return allowedDomains[addr.Domain] && studentNumber.MatchString(addr.LocalPart)
}

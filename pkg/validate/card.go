package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

const (
	minCardDigits = 12
	maxCardDigits = 19
)

func IsLuna(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// LooksLikeCardNumber reports whether s is all digits with a card number length.
func LooksLikeCardNumber(s string) bool {
	if len(s) < minCardDigits || len(s) > maxCardDigits {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CardReference accepts free text, but a full card number must pass the Luhn check.
func CardReference(ref string) bool {
	if !LooksLikeCardNumber(ref) {
		return true
	}
	return IsLuna(ref)
}

package identity

import (
	"regexp"
	"unicode/utf8"
)

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z_]+$`)
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
	mobileRe   = regexp.MustCompile(`^(04|03)\d{8}$`)
)

const minCredentialLen = 5

// ValidUsername al menos 5 caracteres, solo letras y guion bajo.
func ValidUsername(s string) bool {
	return utf8.RuneCountInString(s) >= minCredentialLen && usernameRe.MatchString(s)
}

// ValidPassword al menos 5 caracteres con una letra y un dígito.
func ValidPassword(s string) bool {
	if utf8.RuneCountInString(s) < minCredentialLen {
		return false
	}
	var letter, digit bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return letter && digit
}

// ValidEmail formato usuario@dominio.tld.
func ValidEmail(s string) bool { return emailRe.MatchString(s) }

// ValidMobile 10 dígitos empezando por 04 o 03.
func ValidMobile(s string) bool { return mobileRe.MatchString(s) }

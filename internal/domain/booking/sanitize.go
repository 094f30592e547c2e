package booking

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ===============================
// Sanitización de identidad
// ===============================

// Largo mínimo de un nombre ya sanitizado.
const MinNameLength = 3

var (
	markupPattern = regexp.MustCompile(`<[^>]*>`)

	// Patrón conservador local@dominio.tld; nada de RFC 5322 completo.
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
)

// Letras acentuadas del español, además de a-z A-Z y espacio.
const accentedLetters = "áéíóúÁÉÍÓÚñÑüÜ"

func stripMarkup(s string) string {
	return markupPattern.ReplaceAllString(s, "")
}

// SanitizeName quita marcado HTML y filtra todo lo que no sea letra o
// espacio. No rechaza: solo depura. La regla de largo mínimo corre por
// cuenta del llamador (ValidName).
func SanitizeName(raw string) string {
	clean := stripMarkup(raw)

	var b strings.Builder
	for _, r := range clean {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r == ' ',
			strings.ContainsRune(accentedLetters, r):
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}

func ValidName(name string) bool {
	return utf8.RuneCountInString(name) >= MinNameLength
}

// SanitizeEmail quita marcado HTML y valida contra el patrón conservador.
// ok=false significa rechazo.
func SanitizeEmail(raw string) (string, bool) {
	clean := strings.TrimSpace(stripMarkup(raw))
	if !emailPattern.MatchString(clean) {
		return "", false
	}
	return clean, true
}

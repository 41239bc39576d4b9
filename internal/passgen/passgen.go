// Package passgen generates random passwords from the character classes
// the user selected in settings.
package passgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// DefaultLength is the generated password length on a fresh install.
const DefaultLength = 16

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	specialChars = "!@#$%^&*()_-+=[]{};:,.<>?"

	// lookAlikeChars are easily-confused glyphs, excluded unless the
	// user opts in.
	lookAlikeChars = "Il1|oO0"
)

// Params selects the length and character classes for one password.
type Params struct {
	Length           int
	IncludeLowerCase bool
	IncludeUpperCase bool
	IncludeSpecials  bool
	IncludeDigits    bool
	IncludeLookAlike bool
}

// alphabet builds the candidate character set for p.
func (p Params) alphabet() string {
	var b strings.Builder
	if p.IncludeLowerCase {
		b.WriteString(lowerChars)
	}
	if p.IncludeUpperCase {
		b.WriteString(upperChars)
	}
	if p.IncludeDigits {
		b.WriteString(digitChars)
	}
	if p.IncludeSpecials {
		b.WriteString(specialChars)
	}
	chars := b.String()
	if !p.IncludeLookAlike {
		chars = strings.Map(func(r rune) rune {
			if strings.ContainsRune(lookAlikeChars, r) {
				return -1
			}
			return r
		}, chars)
	}
	return chars
}

// Generate produces a random password. It fails only when no character
// class is enabled; a non-positive length falls back to DefaultLength.
func Generate(p Params) (string, error) {
	if p.Length <= 0 {
		p.Length = DefaultLength
	}

	chars := p.alphabet()
	if len(chars) == 0 {
		return "", fmt.Errorf("no character classes enabled")
	}

	max := big.NewInt(int64(len(chars)))
	out := make([]byte, p.Length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		out[i] = chars[n.Int64()]
	}
	return string(out), nil
}

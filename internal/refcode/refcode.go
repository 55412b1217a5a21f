// Package refcode mints the short public identifiers customers use to
// track a booking.
package refcode

import (
	"math/rand"
	"regexp"
	"strings"
)

// Prefix is fixed for every reference code.
const Prefix = "EZE-"

const (
	alphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	suffixLen = 4
)

// pattern matches a canonical reference code, e.g. EZE-7QK2.
var pattern = regexp.MustCompile(`^EZE-[A-Z0-9]{4}$`)

// Generate returns a candidate reference code: the fixed prefix followed by
// four characters drawn uniformly from [A-Z0-9]. Uniqueness is not checked
// here; the booking table's unique index is the authority and a write-time
// collision triggers regeneration.
func Generate() string {
	var b strings.Builder
	b.Grow(len(Prefix) + suffixLen)
	b.WriteString(Prefix)
	for i := 0; i < suffixLen; i++ {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return b.String()
}

// Normalize upper-cases and trims a user-supplied code so lookups are
// case-insensitive against the canonical stored form.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Valid reports whether code is a well-formed reference code after
// normalization.
func Valid(code string) bool {
	return pattern.MatchString(Normalize(code))
}

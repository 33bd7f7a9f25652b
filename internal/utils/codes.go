package utils

import (
	"math/rand" // Random digit selection
	"strings"      // Efficient string building
)

const digits = "0123456789" // Alphabet for generated codes

// GenerateNumericCode returns a random string of length decimal digits.
// Each digit is drawn independently, so leading zeros are allowed.
func GenerateNumericCode(length int) string {
	var b strings.Builder // Builder for the code
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(digits[rand.Intn(len(digits))]) // Append one random digit
	}
	return b.String()
}

// GenerateUniqueCode draws codes until one is not present in the caller's
// collection. exists is the membership test (usually a database lookup).
// The codespace (10^length) is assumed large relative to the number of
// existing codes, so the expected number of retries stays low.
func GenerateUniqueCode(length int, exists func(code string) (bool, error)) (string, error) {
	for {
		code := GenerateNumericCode(length) // Draw a candidate
		taken, err := exists(code)          // Check it against the collection
		if err != nil {
			return "", err // Propagate lookup errors
		}
		if !taken {
			return code, nil // Fresh code found
		}
	}
}

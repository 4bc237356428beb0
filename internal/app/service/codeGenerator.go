// Package service provides the business logic of the shortener: short-code
// allocation, the user directory and click analytics.
package service

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
)

// DefaultCodeLength is the short-code length used when none is configured.
const DefaultCodeLength = 6

// CodeGenerator produces short-code candidates from a cryptographically
// strong random source. A code is lowercase alphanumeric of a fixed length:
// random bytes are base64-encoded, punctuation is stripped and the result is
// lowercased.
type CodeGenerator struct {
	length int
}

// NewCodeGenerator creates a generator with the given code length,
// falling back to DefaultCodeLength for non-positive values.
func NewCodeGenerator(length int) *CodeGenerator {
	if length <= 0 {
		length = DefaultCodeLength
	}
	return &CodeGenerator{length: length}
}

// Length returns the configured code length.
func (g *CodeGenerator) Length() int {
	return g.length
}

// NewCode returns a fresh candidate code. Stripping punctuation can leave a
// single base64 round short of the target length, so reading continues until
// enough characters accumulate.
func (g *CodeGenerator) NewCode() (string, error) {
	var sb strings.Builder
	buf := make([]byte, g.length)

	for sb.Len() < g.length {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}

		encoded := strings.ToLower(base64.RawStdEncoding.EncodeToString(buf))
		for _, c := range encoded {
			if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
				sb.WriteRune(c)
				if sb.Len() == g.length {
					break
				}
			}
		}
	}

	return sb.String(), nil
}

package test

import (
	"math/rand/v2"
	"strings"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomText returns a pseudo-random ASCII string within the provided bounds.
func RandomText(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += rand.IntN(maxLen - minLen + 1)
	}
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(asciiLetters[rand.IntN(len(asciiLetters))])
	}
	return b.String()
}

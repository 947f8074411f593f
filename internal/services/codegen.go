package services

import (
	"math/rand/v2"
	"strings"
)

// CodeAlphabet алфавит коротких кодов: цифры, заглавные и строчные латинские буквы.
const CodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// RandomGenerator равномерно выбирает символы из CodeAlphabet (math/rand, не crypto).
type RandomGenerator struct{}

func (RandomGenerator) Generate(length int) string {
	var b strings.Builder
	b.Grow(length)
	for range length {
		b.WriteByte(CodeAlphabet[rand.IntN(len(CodeAlphabet))]) //nolint:gosec
	}
	return b.String()
}

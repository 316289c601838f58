package credentials

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	specialChars = `()|¬¦!£$%^&*<>;#~_-+=@`

	generatedPasswordLength = 16
)

var passwordClasses = []string{lowerChars, upperChars, digitChars, specialChars}

// GeneratePassword creates a random temporary password of at least 16
// characters containing at least one character from each of the four
// character classes, shuffled. The result always satisfies the default
// password policy.
func GeneratePassword() (string, error) {
	var chars []rune

	// One character from each class guarantees policy compliance.
	for _, class := range passwordClasses {
		r, err := randomRune(class)
		if err != nil {
			return "", err
		}
		chars = append(chars, r)
	}

	for len(chars) < generatedPasswordLength {
		i, err := randomInt(len(passwordClasses))
		if err != nil {
			return "", err
		}
		r, err := randomRune(passwordClasses[i])
		if err != nil {
			return "", err
		}
		chars = append(chars, r)
	}

	// Fisher-Yates so the leading class-per-position pattern does not leak.
	for i := len(chars) - 1; i > 0; i-- {
		j, err := randomInt(i + 1)
		if err != nil {
			return "", err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}

	return string(chars), nil
}

func randomRune(class string) (rune, error) {
	runes := []rune(class)
	i, err := randomInt(len(runes))
	if err != nil {
		return 0, err
	}
	return runes[i], nil
}

func randomInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random source: %w", err)
	}
	return int(v.Int64()), nil
}

// Package passwords generates random passwords and secret keys.
package passwords

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	lowerAlphabet  = "abcdefghijklmnopqrstuvwxyz"
	upperAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitAlphabet  = "0123456789"
	symbolAlphabet = "!@#$%^&*()_+-=[]{}"
)

// Options controls the character classes included in a generated password
type Options struct {
	Length  int
	Upper   bool
	Digits  bool
	Symbols bool
}

// DefaultOptions is a 12-character mixed-case alphanumeric password
var DefaultOptions = Options{Length: 12, Upper: true, Digits: true}

// Generate produces a random password from the alphabet the options select
func Generate(opts Options) (string, error) {
	if opts.Length < 1 {
		return "", fmt.Errorf("password length must be positive, got %d", opts.Length)
	}

	alphabet := lowerAlphabet
	if opts.Upper {
		alphabet += upperAlphabet
	}
	if opts.Digits {
		alphabet += digitAlphabet
	}
	if opts.Symbols {
		alphabet += symbolAlphabet
	}

	password, err := gonanoid.Generate(alphabet, opts.Length)
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}

	return password, nil
}

// GenerateSecretKey produces a long random key suitable for application
// secrets, e.g. a Django SECRET_KEY.
func GenerateSecretKey() (string, error) {
	return Generate(Options{Length: 50, Upper: true, Digits: true, Symbols: true})
}

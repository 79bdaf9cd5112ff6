package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?/~"

	MinLength     = 8
	MaxLength     = 64
	DefaultLength = 16
)

var (
	ErrLengthTooShort   = errors.New("password length must be at least 8")
	ErrLengthTooLong    = errors.New("password length must be at most 64")
	ErrNoCharacterTypes = errors.New("at least one character type must be selected")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Classes returns the character sets enabled by opts, in the fixed order
// uppercase, lowercase, numbers, symbols.
func (o GeneratorOptions) Classes() []string {
	var sets []string
	if o.Uppercase {
		sets = append(sets, uppercaseChars)
	}
	if o.Lowercase {
		sets = append(sets, lowercaseChars)
	}
	if o.Numbers {
		sets = append(sets, numberChars)
	}
	if o.Symbols {
		sets = append(sets, symbolChars)
	}
	return sets
}

// IsValidationError reports whether err is caused by invalid generator options.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrLengthTooShort) ||
		errors.Is(err, ErrLengthTooLong) ||
		errors.Is(err, ErrNoCharacterTypes)
}

// Generate creates a cryptographically secure random password based on the given options.
// Every enabled class is represented as long as the length allows it; when it does not,
// the classes earlier in the fixed order win.
func Generate(opts GeneratorOptions) (string, error) {
	if opts.Length < MinLength {
		return "", ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	requiredSets := opts.Classes()
	if len(requiredSets) == 0 {
		return "", ErrNoCharacterTypes
	}

	return compose(opts.Length, requiredSets)
}

// compose draws one character per set while the length budget allows, pads the rest
// from the union of sets and shuffles the result.
func compose(length int, sets []string) (string, error) {
	var pool string
	for _, set := range sets {
		pool += set
	}

	result := make([]byte, 0, length)

	for _, charset := range sets {
		if len(result) >= length {
			break
		}
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	for len(result) < length {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	// Guaranteed characters sit at the front until shuffled.
	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}

package security

import (
	"crypto/rand"
	"math/big"
	"strings"
	"unicode"

	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 8
	// MaxPasswordBytes is bcrypt's input limit.
	MaxPasswordBytes = 72
	MinStrengthScore = 2
	// mixedClassCredit is added to the zxcvbn score when a password mixes
	// upper, lower, digit and special characters. zxcvbn only rewards
	// l33t substitutions and capitals by a bit or two, so short mixed
	// passwords like "Str0ng!Pass" otherwise score 0.
	mixedClassCredit = 2

	GeneratedPasswordLength = 10
)

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	symbolChars  = "!@#$%^&*()-_=+?"
	passwordPool = lowerChars + upperChars + digitChars + symbolChars
)

// CheckPasswordStrength returns ErrWeakPassword, with the failed rules as
// details, unless every rule passes.
func CheckPasswordStrength(password string, userInputs ...string) error {
	var problems []string

	if len(password) < MinPasswordLength {
		problems = append(problems, "must be at least 8 characters")
	}
	if len(password) > MaxPasswordBytes {
		problems = append(problems, "must be at most 72 bytes")
	}

	var hasDigit, hasLower, hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	if !hasDigit {
		problems = append(problems, "must contain a digit")
	}
	if !hasLower {
		problems = append(problems, "must contain a lowercase letter")
	}
	if !hasSpecial {
		problems = append(problems, "must contain a special character")
	}

	if password != "" && len(password) <= MaxPasswordBytes {
		score := zxcvbn.PasswordStrength(password, userInputs).Score
		if hasDigit && hasLower && hasUpper && hasSpecial {
			score += mixedClassCredit
		}
		if score < MinStrengthScore {
			problems = append(problems, "is too easy to guess")
		}
	}

	if len(problems) > 0 {
		return ErrWeakPassword.WithDetails(problems)
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GeneratePassword draws n characters from the alphanumeric+symbol pool and
// guarantees one character from each class.
func GeneratePassword(n int) (string, error) {
	if n < 4 {
		n = 4
	}
	classes := []string{lowerChars, upperChars, digitChars, symbolChars}

	out := make([]byte, 0, n)
	for _, class := range classes {
		c, err := randomChar(class)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	for len(out) < n {
		c, err := randomChar(passwordPool)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	// shuffle so the class prefix is not predictable
	for i := len(out) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		out[i], out[j.Int64()] = out[j.Int64()], out[i]
	}
	return string(out), nil
}

func randomChar(alphabet string) (byte, error) {
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, err
	}
	return alphabet[idx.Int64()], nil
}

// IsGeneratedAlphabet reports whether every rune of s comes from the generator pool.
func IsGeneratedAlphabet(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(passwordPool, r) {
			return false
		}
	}
	return true
}

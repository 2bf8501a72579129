package security_test

import (
	"strings"
	"testing"
	"unicode"

	"go-crm/internal/security"
	"go-crm/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestCheckPasswordStrength(t *testing.T) {
	t.Run("strong password", func(t *testing.T) {
		assert.NoError(t, security.CheckPasswordStrength("Qx7#vLp2!mZr9@tK"))
	})

	cases := map[string]string{
		"too short":       "aB3!x",
		"common word":     "password",
		"no digit":        "correct-horse-Battery!",
		"no lowercase":    "QX7#VLP2!MZR9@TK",
		"no special char": "Qx7vLp2mZr9tKw4",
	}
	for name, pw := range cases {
		t.Run(name, func(t *testing.T) {
			err := security.CheckPasswordStrength(pw)
			assert.ErrorIs(t, err, security.ErrWeakPassword)

			httpErr := apperror.ToHTTP(err)
			assert.Equal(t, 400, httpErr.Status)
			assert.Equal(t, "WEAK_PASSWORD", httpErr.Code)
			assert.NotEmpty(t, httpErr.Details)
		})
	}
}

func TestCheckPasswordStrength_MixedClasses(t *testing.T) {
	for _, pw := range []string{"Str0ng!Pass", "Gr33n-Falcon!Rides", "Another-Str0ng!Pass"} {
		t.Run(pw, func(t *testing.T) {
			assert.NoError(t, security.CheckPasswordStrength(pw, "alice@x.com", "Alice"))
		})
	}

	t.Run("guessable without uppercase", func(t *testing.T) {
		err := security.CheckPasswordStrength("password1!", "alice@x.com", "Alice")

		assert.ErrorIs(t, err, security.ErrWeakPassword)
		assert.Contains(t, apperror.ToHTTP(err).Details, "is too easy to guess")
	})
}

func TestCheckPasswordStrength_BcryptLimit(t *testing.T) {
	t.Run("longer than 72 bytes is rejected", func(t *testing.T) {
		err := security.CheckPasswordStrength(strings.Repeat("Aa1!", 20))

		assert.ErrorIs(t, err, security.ErrWeakPassword)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 400, httpErr.Status)
		assert.Contains(t, httpErr.Details, "must be at most 72 bytes")
	})

	t.Run("exactly 72 bytes hashes", func(t *testing.T) {
		pw := strings.Repeat("Aa1!", 18)
		assert.NoError(t, security.CheckPasswordStrength(pw))

		_, err := security.HashPassword(pw)
		assert.NoError(t, err)
	})
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := security.HashPassword("Qx7#vLp2!mZr9@tK")
	assert.NoError(t, err)
	assert.NotEqual(t, "Qx7#vLp2!mZr9@tK", hash)

	assert.True(t, security.ComparePassword(hash, "Qx7#vLp2!mZr9@tK"))
	assert.False(t, security.ComparePassword(hash, "wrong"))
}

func TestGeneratePassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		pw, err := security.GeneratePassword(security.GeneratedPasswordLength)
		assert.NoError(t, err)
		assert.Len(t, pw, 10)
		assert.True(t, security.IsGeneratedAlphabet(pw))
		assert.True(t, strings.IndexFunc(pw, unicode.IsDigit) >= 0)
		assert.True(t, strings.IndexFunc(pw, unicode.IsLower) >= 0)
		assert.True(t, strings.IndexFunc(pw, unicode.IsUpper) >= 0)
		seen[pw] = true
	}
	assert.Greater(t, len(seen), 1)
}

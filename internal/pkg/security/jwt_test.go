package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		token, err := GenerateToken(42)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 42, claims.UserID)
		assert.Equal(t, "Minaret", claims.Issuer)
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		token, err := GenerateToken(42)
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		tampered := parts[0] + "." + parts[1] + "x." + parts[2]

		_, err = ValidateToken(tampered)
		assert.Error(t, err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := ValidateToken("not-a-token")
		assert.Error(t, err)
	})
}

func TestExtractSignature(t *testing.T) {
	t.Run("signature matches the third segment", func(t *testing.T) {
		token, err := GenerateToken(1)
		require.NoError(t, err)

		sig, err := ExtractSignature(token)
		require.NoError(t, err)
		assert.Equal(t, strings.Split(token, ".")[2], sig)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := ExtractSignature("only.two")
		assert.Error(t, err)
	})
}

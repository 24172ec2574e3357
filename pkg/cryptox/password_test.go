package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_Hash(t *testing.T) {
	h := NewPasswordHasher("test-pepper")

	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 128)},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=19456,t=2,p=1$"))
			require.NotContains(t, hash, tt.password)

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6)
			require.NotEmpty(t, parts[4], "salt should not be empty")
			require.NotEmpty(t, parts[5], "hash should not be empty")

			require.NoError(t, h.Verify(tt.password, hash))
		})
	}
}

func TestPasswordHasher_UniqueSalts(t *testing.T) {
	h := NewPasswordHasher("")

	hash1, err := h.Hash("samepassword")
	require.NoError(t, err)
	hash2, err := h.Hash("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")
	require.NoError(t, h.Verify("samepassword", hash1))
	require.NoError(t, h.Verify("samepassword", hash2))
}

func TestPasswordHasher_VerifyWrongPassword(t *testing.T) {
	h := NewPasswordHasher("test-pepper")
	hash, err := h.Hash("correct-password")
	require.NoError(t, err)

	for _, wrong := range []string{
		"wrong-password",
		"Correct-Password",
		"correct-password ",
		"",
		strings.Repeat("x", 10000),
	} {
		require.ErrorIs(t, h.Verify(wrong, hash), ErrPasswordMismatch)
	}
}

func TestPasswordHasher_PepperMatters(t *testing.T) {
	hash, err := NewPasswordHasher("pepper-one").Hash("secret-password")
	require.NoError(t, err)

	require.NoError(t, NewPasswordHasher("pepper-one").Verify("secret-password", hash))
	require.ErrorIs(t, NewPasswordHasher("pepper-two").Verify("secret-password", hash), ErrPasswordMismatch)
}

func TestPasswordHasher_InvalidHashFormat(t *testing.T) {
	h := NewPasswordHasher("")

	tests := []struct {
		name string
		hash string
	}{
		{"empty hash", ""},
		{"plaintext", "password123"},
		{"wrong algorithm", "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"missing parts", "$argon2id$v=19$m=19456"},
		{"malformed parameters", "$argon2id$v=19$invalid$c2FsdA$aGFzaA"},
		{"invalid base64 salt", "$argon2id$v=19$m=19456,t=2,p=1$!!!invalid!!!$aGFzaA"},
		{"invalid base64 hash", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!invalid!!!"},
		{"wrong version", "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, h.Verify("test-password", tt.hash), ErrInvalidHash)
		})
	}
}

func TestLoadPepper(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pepper")

	first, err := LoadPepper(path)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	second, err := LoadPepper(path)
	require.NoError(t, err)
	require.Equal(t, first, second, "pepper should survive restarts")

	t.Run("empty path", func(t *testing.T) {
		_, err := LoadPepper(" ")
		require.Error(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		empty := filepath.Join(t.TempDir(), "pepper")
		require.NoError(t, os.WriteFile(empty, nil, 0600))
		_, err := LoadPepper(empty)
		require.Error(t, err)
	})
}

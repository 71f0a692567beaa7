package utils

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Format(t *testing.T) {
	encoded := HashPassword("secret")

	parts := strings.Split(encoded, "$")
	require.Len(t, parts, 3)
	assert.Equal(t, "pbkdf2:sha256:100000", parts[0])

	salt, err := base64.StdEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	assert.Len(t, salt, PasswordSaltLength)

	key, err := base64.StdEncoding.DecodeString(parts[2])
	require.NoError(t, err)
	assert.Len(t, key, PasswordKeyLength)
}

func TestHashPassword_FreshSaltEachCall(t *testing.T) {
	first := HashPassword("same-password")
	second := HashPassword("same-password")

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("same-password", first))
	assert.True(t, VerifyPassword("same-password", second))
}

func TestVerifyPassword_RoundTrip(t *testing.T) {
	passwords := []string{"secret", "", "pässwörd", "with $ and : inside", strings.Repeat("x", 256)}

	for _, p := range passwords {
		t.Run(p, func(t *testing.T) {
			encoded := HashPassword(p)
			assert.True(t, VerifyPassword(p, encoded))
			assert.False(t, VerifyPassword(p+"-other", encoded))
		})
	}
}

// The RFC 6070-style vector PBKDF2-HMAC-SHA256("password", "salt", 1, 32)
// guarantees interoperability with hashes produced by other implementations.
func TestVerifyPassword_KnownVector(t *testing.T) {
	key, err := hex.DecodeString("120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b")
	require.NoError(t, err)

	encoded := "pbkdf2:sha256:1$" +
		base64.StdEncoding.EncodeToString([]byte("salt")) + "$" +
		base64.StdEncoding.EncodeToString(key)

	assert.Equal(t, encoded, encodePasswordHash("password", []byte("salt"), 1))
	assert.True(t, VerifyPassword("password", encoded))
	assert.False(t, VerifyPassword("Password", encoded))
}

func TestVerifyPassword_MalformedHashFailsClosed(t *testing.T) {
	valid := HashPassword("secret")
	parts := strings.Split(valid, "$")

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "no separators", encoded: "pbkdf2:sha256:100000"},
		{name: "too many parts", encoded: valid + "$extra"},
		{name: "unknown method", encoded: "bcrypt:sha256:100000$" + parts[1] + "$" + parts[2]},
		{name: "unknown digest", encoded: "pbkdf2:md5:100000$" + parts[1] + "$" + parts[2]},
		{name: "missing iterations", encoded: "pbkdf2:sha256$" + parts[1] + "$" + parts[2]},
		{name: "non-numeric iterations", encoded: "pbkdf2:sha256:many$" + parts[1] + "$" + parts[2]},
		{name: "zero iterations", encoded: "pbkdf2:sha256:0$" + parts[1] + "$" + parts[2]},
		{name: "negative iterations", encoded: "pbkdf2:sha256:-5$" + parts[1] + "$" + parts[2]},
		{name: "bad salt encoding", encoded: "pbkdf2:sha256:100000$!!!$" + parts[2]},
		{name: "bad key encoding", encoded: "pbkdf2:sha256:100000$" + parts[1] + "$!!!"},
		{name: "empty key", encoded: "pbkdf2:sha256:100000$" + parts[1] + "$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, VerifyPassword("secret", tt.encoded))
			})
		})
	}
}

package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifiesAndSalts(t *testing.T) {
	digest, err := HashPassword("longenough1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(digest, "$argon2id$"))
	assert.NotEqual(t, "longenough1", digest)

	ok, err := VerifyPassword("longenough1", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	// A fresh salt must make the same input hash differently.
	other, err := HashPassword("longenough1")
	require.NoError(t, err)
	assert.NotEqual(t, digest, other)
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	digest, err := HashPassword("correct-horse")
	require.NoError(t, err)

	ok, err := VerifyPassword("battery-staple", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"plaintext", "not-a-digest"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$a2V5"},
		{"missing sections", "$argon2id$v=19$m=65536,t=1,p=4"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=1,p=4$!!!$a2V5"},
		{"bad key encoding", "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!!"},
		{"zero rounds", "$argon2id$v=19$m=65536,t=0,p=4$c2FsdA$a2V5"},
		{"zero parallelism", "$argon2id$v=19$m=65536,t=1,p=0$c2FsdA$a2V5"},
		{"zero memory", "$argon2id$v=19$m=0,t=1,p=4$c2FsdA$a2V5"},
		{"absurd memory cost", "$argon2id$v=19$m=4294967295,t=1,p=4$c2FsdA$a2V5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := VerifyPassword("whatever", tt.encoded)
			assert.False(t, ok)
			assert.ErrorIs(t, err, ErrMalformedDigest)
		})
	}
}

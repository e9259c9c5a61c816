package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastHasher() Argon2PasswordHasher {
	return Argon2PasswordHasher{Memory: 8 * 1024, Iterations: 1, Parallelism: 1}
}

func TestArgon2HashAndVerify(t *testing.T) {
	h := fastHasher()

	hash, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	assert.True(t, h.Verify(hash, "correct horse battery staple"))
	assert.False(t, h.Verify(hash, "wrong password"))
}

func TestArgon2HashesAreSalted(t *testing.T) {
	h := fastHasher()

	first, err := h.Hash("same input")
	require.NoError(t, err)
	second, err := h.Hash("same input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify(first, "same input"))
	assert.True(t, h.Verify(second, "same input"))
}

func TestArgon2HandlesLongPasswords(t *testing.T) {
	h := fastHasher()
	password := strings.Repeat("x", 100)

	hash, err := h.Hash(password)
	require.NoError(t, err)

	assert.True(t, h.Verify(hash, password))
	assert.False(t, h.Verify(hash, strings.Repeat("x", 99)))
}

func TestArgon2VerifyRejectsMalformedHashes(t *testing.T) {
	h := fastHasher()

	for _, hash := range []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=8192,t=1,p=1$notbase64!!$zzzz",
		"$argon2i$v=19$m=8192,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$a2V5",
	} {
		assert.False(t, h.Verify(hash, "anything"), "hash %q must not verify", hash)
	}
}

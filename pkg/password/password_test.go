package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerify_RoundTrip(t *testing.T) {
	hash, err := Hash("vendor123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, Verify("vendor123", hash))
	assert.False(t, Verify("otro-password", hash))
}

func TestHash_SalAleatoria(t *testing.T) {
	h1, err := Hash("mismo-texto")
	require.NoError(t, err)
	h2, err := Hash("mismo-texto")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "el mismo texto debe producir hashes distintos")
	assert.True(t, Verify("mismo-texto", h1))
	assert.True(t, Verify("mismo-texto", h2))
}

func TestVerify_HashMalformadoNoVerifica(t *testing.T) {
	// Un password legado guardado en texto plano jamás verifica; la
	// migración es el paso offline, no este camino.
	assert.False(t, Verify("texto-plano", "texto-plano"))
	assert.False(t, Verify("", ""))
}

func TestIsHash(t *testing.T) {
	hash, err := Hash("employee123")
	require.NoError(t, err)

	assert.True(t, IsHash(hash))
	assert.True(t, IsHash("$2a$10$abcdefghijklmnopqrstuv"))
	assert.True(t, IsHash("$2y$10$abcdefghijklmnopqrstuv"))
	assert.False(t, IsHash("texto-plano"))
	assert.False(t, IsHash(""))
	assert.False(t, IsHash("$1$md5crypt"))
}

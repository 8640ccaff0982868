package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret    = "test-secret-key-for-unit-tests"
	testIssuer    = "crm-backend-test"
	testAccountID = "00000000-0000-0000-0000-000000000001"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	tok, err := Issue(testSecret, testIssuer, testAccountID)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	accountID, err := Verify(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testAccountID, accountID, "el subject debe ser el ID de cuenta")
}

func TestIssue_AccountIDVacio_RetornaError(t *testing.T) {
	_, err := Issue(testSecret, testIssuer, "")
	assert.Error(t, err, "no debe emitirse token sin ID de cuenta")
}

func TestVerify_TokenExpirado_RetornaError(t *testing.T) {
	// Token con TTL negativo (ya expirado).
	tok, err := issueWithTTL(testSecret, testIssuer, testAccountID, -time.Minute)
	require.NoError(t, err)

	_, err = Verify(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestVerify_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := Issue(testSecret, testIssuer, testAccountID)
	require.NoError(t, err)

	_, err = Verify("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestVerify_TokenMalformado_RetornaError(t *testing.T) {
	_, err := Verify(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}

func TestIssue_SecretVacioUsaDevSecret(t *testing.T) {
	// Sin secret configurado se firma con el de desarrollo, y un Verify
	// igualmente sin secret lo acepta.
	tok, err := Issue("", testIssuer, testAccountID)
	require.NoError(t, err)

	accountID, err := Verify("", tok)
	require.NoError(t, err)
	assert.Equal(t, testAccountID, accountID)

	accountID, err = Verify(DevSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testAccountID, accountID)
}

func TestIssue_ExpiraEnSieteDias(t *testing.T) {
	assert.Equal(t, 7*24*time.Hour, TokenTTL, "la vigencia del token es fija en 7 días")
}

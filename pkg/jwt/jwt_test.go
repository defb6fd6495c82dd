package jwt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/finanzas-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "finanzas-api-test"
	testExpMin = 60 * 24
)

func testIdentity() pkgjwt.Identity {
	return pkgjwt.Identity{
		UserID:        "00000000-0000-0000-0000-000000000001",
		Email:         "admin@example.com",
		Name:          "Admin",
		Role:          "admin",
		AllowedRoutes: nil,
	}
}

func TestJWT_GenerarYParsear_RoundTrip(t *testing.T) {
	ident := testIdentity()
	tok, err := pkgjwt.Generate(testSecret, ident, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, ident.UserID, claims.UserID)
	assert.Equal(t, ident.UserID, claims.Subject)
	assert.Equal(t, ident.Email, claims.Email)
	assert.Equal(t, ident.Name, claims.Name)
	assert.Equal(t, "admin", claims.Role)
	assert.Empty(t, claims.AllowedRoutes)
}

func TestJWT_RoundTrip_ConAllowedRoutes(t *testing.T) {
	ident := pkgjwt.Identity{
		UserID:        "00000000-0000-0000-0000-000000000002",
		Email:         "viewer@example.com",
		Name:          "Viewer",
		Role:          "viewer",
		AllowedRoutes: []string{"dashboard", "transactions"},
	}
	tok, err := pkgjwt.Generate(testSecret, ident, testIssuer, testExpMin)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, []string{"dashboard", "transactions"}, claims.AllowedRoutes)
}

// Alterar cualquier byte del payload o de la firma debe invalidar el token.
func TestJWT_TokenAlterado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIdentity(), testIssuer, testExpMin)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3, "un JWT compacto tiene 3 segmentos")

	flip := func(s string) string {
		b := []byte(s)
		mid := len(b) / 2
		if b[mid] == 'A' {
			b[mid] = 'B'
		} else {
			b[mid] = 'A'
		}
		return string(b)
	}

	// Payload alterado
	tampered := parts[0] + "." + flip(parts[1]) + "." + parts[2]
	_, err = pkgjwt.Parse(testSecret, tampered)
	assert.Error(t, err, "payload alterado debe invalidar el token")

	// Firma alterada
	tampered = parts[0] + "." + parts[1] + "." + flip(parts[2])
	_, err = pkgjwt.Parse(testSecret, tampered)
	assert.Error(t, err, "firma alterada debe invalidar el token")
}

func TestJWT_MenosDeTresSegmentos_RetornaError(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "solo.dos")
	assert.Error(t, err)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testSecret, testIdentity(), testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_TokenVigente_EsAceptado(t *testing.T) {
	// 1 minuto de vida: suficiente margen para el parse inmediato
	tok, err := pkgjwt.Generate(testSecret, testIdentity(), testIssuer, 1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.NoError(t, err)
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIdentity(), testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

// El algoritmo nunca se toma del token: un token "alg":"none" debe rechazarse.
func TestJWT_AlgoritmoNone_Rechazado(t *testing.T) {
	// header {"alg":"none","typ":"JWT"} + payload vacío, sin firma
	noneToken := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJ1c2VyX2lkIjoieCJ9."
	_, err := pkgjwt.Parse(testSecret, noneToken)
	assert.Error(t, err)
}

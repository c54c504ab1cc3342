package jwt_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/logistica-console/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

// tokenWithPayload arma un token de tres segmentos con el payload crudo indicado.
func tokenWithPayload(payload string) string {
	enc := base64.RawURLEncoding
	return enc.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`)) + "." +
		enc.EncodeToString([]byte(payload)) + ".firma"
}

func TestDecode_TokenBienFormado(t *testing.T) {
	tok := tokenWithPayload(`{"id":7,"matricula":"A123","nome":"Ana","cargo":"Gerente","iat":1700000000,"exp":1700003600}`)

	claims, ok := pkgjwt.Decode(tok)
	require.True(t, ok)
	assert.Equal(t, int64(7), claims.ID)
	assert.Equal(t, "A123", claims.Matricula)
	assert.Equal(t, "Ana", claims.Nome)
	assert.Equal(t, "Gerente", claims.Cargo)
	assert.Equal(t, int64(1700000000), claims.IssuedAt.Unix())
	assert.Equal(t, int64(1700003600), claims.ExpiresAt.Unix())
}

func TestDecode_NoVerificaFirma(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Claims{ID: 1, Matricula: "M1"}, time.Hour)
	require.NoError(t, err)

	claims, ok := pkgjwt.Decode(tok)
	require.True(t, ok, "un token firmado con cualquier secreto debe decodificarse")
	assert.Equal(t, "M1", claims.Matricula)
}

func TestDecode_PaddingTolerado(t *testing.T) {
	payload := base64.URLEncoding.EncodeToString([]byte(`{"id":1,"matricula":"M","exp":1}`))
	claims, ok := pkgjwt.Decode("h." + payload + ".s")
	require.True(t, ok)
	assert.Equal(t, int64(1), claims.ExpiresAt.Unix())
}

func TestDecode_Malformado(t *testing.T) {
	cases := map[string]string{
		"vacio":               "",
		"un segmento":         "abc",
		"dos segmentos":       "abc.def",
		"cuatro segmentos":    "a.b.c.d",
		"base64 invalido":     "h.@@@.s",
		"no es JSON":          tokenWithPayload("no-json"),
		"JSON no objeto":      tokenWithPayload(`[1,2,3]`),
		"exp no numerico":     tokenWithPayload(`{"id":1,"matricula":"M","exp":"manana"}`),
		"sin exp":             tokenWithPayload(`{"id":1,"matricula":"M"}`),
		"UTF-8 invalido":      "h." + base64.RawURLEncoding.EncodeToString([]byte{'{', 0xff, 0xfe, '}'}) + ".s",
		"id con tipo erroneo": tokenWithPayload(`{"id":"uno","matricula":"M","exp":1}`),
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				claims, ok := pkgjwt.Decode(tok)
				assert.False(t, ok)
				assert.Nil(t, claims)
			})
		})
	}
}

func TestClaims_Expired(t *testing.T) {
	tok := tokenWithPayload(`{"id":1,"matricula":"M","exp":1000}`)
	claims, ok := pkgjwt.Decode(tok)
	require.True(t, ok)

	assert.False(t, claims.Expired(time.Unix(999, 0)))
	assert.True(t, claims.Expired(time.Unix(1000, 0)), "now == exp ya es expirado")
	assert.True(t, claims.Expired(time.Unix(1001, 0)))

	var nilClaims *pkgjwt.Claims
	assert.True(t, nilClaims.Expired(time.Now()))
}

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Claims{ID: 3, Matricula: "B9", Nome: "Bruno"}, time.Hour)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, int64(3), claims.ID)
	assert.Equal(t, "Bruno", claims.Nome)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Claims{ID: 3, Matricula: "B9"}, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Claims{ID: 3, Matricula: "B9"}, -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", pkgjwt.Claims{}, time.Hour)
	assert.Error(t, err)
}

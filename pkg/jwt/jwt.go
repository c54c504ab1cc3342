// Package jwt lee los claims del token de sesión emitido por la API de logística.
//
// Decode NO verifica la firma: la consola solo lo usa para saber si vale la pena
// mostrar una pantalla protegida (expiración e identidad para la cabecera). La
// autoridad real es la API remota, que responde 401 ante cualquier token que no
// acepte, y todos los clientes de dominio deben estar preparados para ese caso.
//
// Generate y Parse (HS256, verificados) solo los usa el mock de desarrollo.
package jwt

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
)

// Claims payload del token de sesión. id, matricula, iat y exp siempre vienen;
// nome y cargo son opcionales.
type Claims struct {
	ID        int64            `json:"id"`
	Matricula string           `json:"matricula"`
	Nome      string           `json:"nome,omitempty"`
	Cargo     string           `json:"cargo,omitempty"`
	IssuedAt  *jwt.NumericDate `json:"iat,omitempty"`
	ExpiresAt *jwt.NumericDate `json:"exp,omitempty"`
}

// Los métodos siguientes satisfacen jwt.Claims para Generate/Parse.

func (c Claims) GetExpirationTime() (*jwt.NumericDate, error) { return c.ExpiresAt, nil }
func (c Claims) GetIssuedAt() (*jwt.NumericDate, error)       { return c.IssuedAt, nil }
func (c Claims) GetNotBefore() (*jwt.NumericDate, error)      { return nil, nil }
func (c Claims) GetIssuer() (string, error)                   { return "", nil }
func (c Claims) GetSubject() (string, error)                  { return c.Matricula, nil }
func (c Claims) GetAudience() (jwt.ClaimStrings, error)       { return nil, nil }

// Expired indica si now ya alcanzó la expiración (en segundos, como el claim exp).
func (c *Claims) Expired(now time.Time) bool {
	if c == nil || c.ExpiresAt == nil {
		return true
	}
	return now.Unix() >= c.ExpiresAt.Unix()
}

var segmentParser = jwt.NewParser(jwt.WithPaddingAllowed())

// Decode extrae los claims del segmento central sin verificar la firma.
// Devuelve (nil, false) si el token no tiene tres segmentos, si el base64url o el
// UTF-8 son inválidos, si el JSON no corresponde a Claims o si falta exp.
func Decode(token string) (*Claims, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, false
	}
	raw, err := segmentParser.DecodeSegment(parts[1])
	if err != nil || !utf8.Valid(raw) {
		return nil, false
	}
	var c Claims
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, false
	}
	if c.ExpiresAt == nil {
		return nil, false
	}
	return &c, true
}

// Generate firma un token HS256 con los claims indicados, emitido ahora y válido por ttl.
func Generate(secret string, claims Claims, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("claims inválidos")
	}
	return &claims, nil
}

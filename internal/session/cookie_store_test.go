package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistica-console/internal/session"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// runWithStore ejecuta fn dentro de una petición GET / y devuelve la respuesta.
func runWithStore(t *testing.T, reqCookie *http.Cookie, fn func(s *session.CookieStore) error) *http.Response {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		s := session.NewCookieStore(c, session.CookieConfig{Name: "token"})
		if err := fn(s); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if reqCookie != nil {
		req.AddCookie(reqCookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func responseCookie(resp *http.Response, name string) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCookieStore_LeeCookieDeLaPeticion(t *testing.T) {
	var got string
	runWithStore(t, &http.Cookie{Name: "token", Value: "abc.def.ghi"}, func(s *session.CookieStore) error {
		var err error
		got, err = s.Token()
		return err
	})
	assert.Equal(t, "abc.def.ghi", got)
}

func TestCookieStore_SinCookie(t *testing.T) {
	var got string
	runWithStore(t, nil, func(s *session.CookieStore) error {
		got, _ = s.Token()
		return nil
	})
	assert.Empty(t, got)
}

func TestCookieStore_SetTokenEscribeCookie(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := tokenExpiringAt(exp.Unix(), "")

	var readBack string
	resp := runWithStore(t, nil, func(s *session.CookieStore) error {
		if err := s.SetToken(tok); err != nil {
			return err
		}
		readBack, _ = s.Token()
		return nil
	})

	assert.Equal(t, tok, readBack, "la misma petición ve el token recién escrito")
	ck := responseCookie(resp, "token")
	require.NotNil(t, ck)
	assert.Equal(t, tok, ck.Value)
	assert.True(t, ck.HttpOnly)
	assert.Equal(t, "/", ck.Path)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	assert.WithinDuration(t, exp, ck.Expires, time.Second, "la cookie vence con el claim exp")
}

func TestCookieStore_ClearExpiraCookie(t *testing.T) {
	var readBack string
	resp := runWithStore(t, &http.Cookie{Name: "token", Value: "viejo"}, func(s *session.CookieStore) error {
		if err := s.Clear(); err != nil {
			return err
		}
		readBack, _ = s.Token()
		return nil
	})

	assert.Empty(t, readBack)
	ck := responseCookie(resp, "token")
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value)
	assert.True(t, ck.Expires.Before(time.Now()))
}

func TestCookieStore_SetTokenVacioEquivaleAClear(t *testing.T) {
	resp := runWithStore(t, &http.Cookie{Name: "token", Value: "viejo"}, func(s *session.CookieStore) error {
		return s.SetToken("")
	})
	ck := responseCookie(resp, "token")
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value)
}

func TestMemoryStore(t *testing.T) {
	s := session.NewMemoryStore("t1")
	tok, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "t1", tok)

	require.NoError(t, s.SetToken("t2"))
	tok, _ = s.Token()
	assert.Equal(t, "t2", tok)

	require.NoError(t, s.Clear())
	tok, _ = s.Token()
	assert.Empty(t, tok)
}

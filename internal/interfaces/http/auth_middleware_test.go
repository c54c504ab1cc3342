package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistica-console/internal/infrastructure/api"
	"github.com/jhoicas/logistica-console/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/logistica-console/internal/interfaces/http"
	"github.com/jhoicas/logistica-console/internal/mockapi"
	"github.com/jhoicas/logistica-console/internal/session"
	pkgjwt "github.com/jhoicas/logistica-console/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testMockSecret = "test-secret-key-for-unit-tests"
	cookieName     = "token"
)

// newConsole levanta el mock de la API en un httptest.Server y arma la consola contra él.
func newConsole(t *testing.T) *fiber.App {
	t.Helper()
	store := mockapi.NewStore()
	require.NoError(t, mockapi.Seed(store))
	mock := mockapi.New(mockapi.Config{JWTSecret: testMockSecret, TokenTTL: time.Hour}, store, zerolog.Nop())
	srv := httptest.NewServer(adaptor.FiberApp(mock))
	t.Cleanup(srv.Close)

	return apphttp.NewApp(apphttp.RouterDeps{
		AppName:   "console-test",
		Connector: api.NewConnector(srv.URL+"/api", 5*time.Second, zerolog.Nop()),
		Cookie:    session.CookieConfig{Name: cookieName},
		Renderer:  pdf.NewReportPDFGenerator(),
		Timeout:   5 * time.Second,
		Log:       zerolog.Nop(),
	})
}

func do(t *testing.T, app *fiber.App, method, path, token string, form url.Values) (*http.Response, string) {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

// loginAs hace POST /login y devuelve el token que quedó en la cookie.
func loginAs(t *testing.T, app *fiber.App, matricula, senha string) string {
	t.Helper()
	resp, _ := do(t, app, http.MethodPost, "/login", "", url.Values{"matricula": {matricula}, "senha": {senha}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/dashboard", resp.Header.Get("Location"))
	c := findCookie(resp)
	require.NotNil(t, c, "el login debe escribir la cookie")
	require.NotEmpty(t, c.Value)
	return c.Value
}

func findCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	return nil
}

func assertRedirect(t *testing.T, resp *http.Response, to string) {
	t.Helper()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, to, resp.Header.Get("Location"))
}

func assertCookieCleared(t *testing.T, resp *http.Response) {
	t.Helper()
	c := findCookie(resp)
	require.NotNil(t, c, "se esperaba Set-Cookie de borrado")
	assert.Empty(t, c.Value)
	assert.True(t, c.Expires.Before(time.Now()))
}

func foreignToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	tok, err := pkgjwt.Generate("otro-secret", pkgjwt.Claims{ID: 1, Matricula: "admin", Nome: "Ana Souza"}, ttl)
	require.NoError(t, err)
	return tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Guards
// ──────────────────────────────────────────────────────────────────────────────

func TestProtected_SinSesionRedirigeALogin(t *testing.T) {
	app := newConsole(t)
	paths := []string{
		"/dashboard", "/estoque", "/estoque/novo", "/movimentacao?aba=historico", "/relatorios", "/relatorios/pdf", "/vendas",
		"/DASHBOARD", "/Estoque", "/Relatorios", "/VENDAS/", "/Movimentacao?aba=historico",
	}
	for _, path := range paths {
		resp, body := do(t, app, http.MethodGet, path, "", nil)
		assertRedirect(t, resp, "/login")
		assert.NotContains(t, body, "Sair", path)
	}
	resp, _ := do(t, app, http.MethodPost, "/estoque", "", url.Values{"produto": {"X"}})
	assertRedirect(t, resp, "/login")
}

func TestProtected_TokenIlegibleRedirigeALogin(t *testing.T) {
	app := newConsole(t)
	resp, _ := do(t, app, http.MethodGet, "/dashboard", "no-es-un-jwt", nil)
	assertRedirect(t, resp, "/login")
}

func TestProtected_TokenExpiradoBorraCookieYRedirige(t *testing.T) {
	app := newConsole(t)
	resp, _ := do(t, app, http.MethodGet, "/estoque", foreignToken(t, -time.Minute), nil)
	assertRedirect(t, resp, "/login")
	assertCookieCleared(t, resp)
}

func TestPublic_ConSesionRedirigeADashboard(t *testing.T) {
	app := newConsole(t)
	token := loginAs(t, app, "admin", "admin123")

	for _, path := range []string{"/login", "/LOGIN", "/Login"} {
		resp, _ := do(t, app, http.MethodGet, path, token, nil)
		assertRedirect(t, resp, "/dashboard")
	}
}

func TestRutas_DistinguenMayusculas(t *testing.T) {
	app := newConsole(t)
	token := loginAs(t, app, "admin", "admin123")

	// Con sesión, una variante en mayúsculas no llega a ningún handler: cae al fallback.
	resp, body := do(t, app, http.MethodGet, "/DASHBOARD", token, nil)
	assertRedirect(t, resp, "/dashboard")
	assert.NotContains(t, body, "Ana Souza")
}

func TestFallback_SegunSesion(t *testing.T) {
	app := newConsole(t)
	token := loginAs(t, app, "admin", "admin123")

	for _, path := range []string{"/", "/no-existe", "/estoque-x"} {
		resp, _ := do(t, app, http.MethodGet, path, "", nil)
		assertRedirect(t, resp, "/login")
		resp, _ = do(t, app, http.MethodGet, path, token, nil)
		assertRedirect(t, resp, "/dashboard")
	}
}

func TestAPI401_EnCualquierPantallaCierraLaSesion(t *testing.T) {
	app := newConsole(t)
	// Decode lo acepta (no vencido), pero la API no reconoce la firma.
	token := foreignToken(t, time.Hour)

	for _, path := range []string{"/dashboard", "/estoque", "/movimentacao", "/relatorios?aba=usuarios", "/vendas"} {
		resp, body := do(t, app, http.MethodGet, path, token, nil)
		assertRedirect(t, resp, "/login")
		assertCookieCleared(t, resp)
		assert.NotContains(t, body, "Erro", path)
	}
}

func TestHealth(t *testing.T) {
	app := newConsole(t)
	resp, body := do(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","service":"console-test"}`, body)
}

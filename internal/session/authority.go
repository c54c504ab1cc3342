package session

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/domain"
	"github.com/jhoicas/logistica-console/pkg/jwt"
)

// Valores mostrados cuando el token no trae nome o cargo.
const (
	defaultNamePrefix = "Usuário "
	defaultRole       = "Funcionário"
)

// Authenticator canjea credenciales por un token (POST /auth/login).
type Authenticator interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
}

// User identidad para mostrar, derivada de los claims del token.
type User struct {
	ID        int64
	Matricula string
	Nome      string
	Cargo     string
}

// Authority responde "¿hay sesión válida?", "¿quién es el usuario?" y gestiona
// login/logout sobre un Store. Todas las lecturas son totales: ante cualquier duda
// la respuesta es "sin sesión".
//
// La decisión se toma con un token sin verificar, así que solo sirve para la UX;
// la API sigue siendo quien autoriza y puede responder 401 en cualquier momento.
type Authority struct {
	store Store
	auth  Authenticator
	now   func() time.Time
	log   zerolog.Logger
}

// Option ajusta una Authority.
type Option func(*Authority)

// WithClock reemplaza time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(a *Authority) { a.now = now }
}

// NewAuthority construye la autoridad sobre store. auth puede ser nil si no se va a usar Login.
func NewAuthority(store Store, auth Authenticator, log zerolog.Logger, opts ...Option) *Authority {
	a := &Authority{store: store, auth: auth, now: time.Now, log: log}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Store devuelve el store subyacente (el cliente HTTP lo comparte para el bearer y el 401).
func (a *Authority) Store() Store {
	return a.store
}

// IsAuthenticated es false sin token, con token ilegible o expirado. Al detectar
// expiración hace logout antes de responder.
func (a *Authority) IsAuthenticated() bool {
	_, ok := a.claims()
	return ok
}

// CurrentUser nil si no hay sesión válida.
func (a *Authority) CurrentUser() *User {
	claims, ok := a.claims()
	if !ok {
		return nil
	}
	u := &User{
		ID:        claims.ID,
		Matricula: claims.Matricula,
		Nome:      claims.Nome,
		Cargo:     claims.Cargo,
	}
	if u.Nome == "" {
		u.Nome = defaultNamePrefix + claims.Matricula
	}
	if u.Cargo == "" {
		u.Cargo = defaultRole
	}
	return u
}

// Login delega en el Authenticator y, si hay éxito, persiste el token devuelto.
func (a *Authority) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if a.auth == nil {
		return nil, fmt.Errorf("session: login sin authenticator")
	}
	out, err := a.auth.Login(ctx, in)
	if err != nil {
		return nil, err
	}
	if out == nil || out.Token == "" {
		return nil, domain.ErrEmptyToken
	}
	if err := a.store.SetToken(out.Token); err != nil {
		return nil, fmt.Errorf("session: guardar token: %w", err)
	}
	a.log.Info().Str("matricula", in.Matricula).Msg("sesión iniciada")
	return out, nil
}

// Logout borra el token. Nunca falla para el llamador: los errores del store solo se registran.
func (a *Authority) Logout() {
	if err := a.store.Clear(); err != nil {
		a.log.Warn().Err(err).Msg("logout: no se pudo borrar el token")
	}
}

func (a *Authority) claims() (*jwt.Claims, bool) {
	token, err := a.store.Token()
	if err != nil {
		a.log.Warn().Err(err).Msg("sesión: no se pudo leer el token")
		return nil, false
	}
	if token == "" {
		return nil, false
	}
	claims, ok := jwt.Decode(token)
	if !ok {
		a.log.Debug().Msg("sesión: token ilegible")
		return nil, false
	}
	if claims.Expired(a.now()) {
		a.log.Info().Str("matricula", claims.Matricula).Msg("sesión: token expirado")
		a.Logout()
		return nil, false
	}
	return claims, true
}

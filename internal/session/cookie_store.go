package session

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistica-console/pkg/jwt"
)

// CookieConfig atributos de la cookie que guarda el token.
type CookieConfig struct {
	Name   string
	Secure bool
}

// CookieStore Store ligado a una petición de Fiber: lee la cookie de la petición y
// escribe la de la respuesta. Lo escrito durante la petición es lo que ven las
// lecturas posteriores de esa misma petición. Seguro para las cargas en paralelo
// de una misma pantalla.
type CookieStore struct {
	mu      sync.Mutex
	c       *fiber.Ctx
	cfg     CookieConfig
	written bool
	value   string
}

// NewCookieStore construye el store para la petición c.
func NewCookieStore(c *fiber.Ctx, cfg CookieConfig) *CookieStore {
	if cfg.Name == "" {
		cfg.Name = "token"
	}
	return &CookieStore{c: c, cfg: cfg}
}

// Token lo escrito en esta petición o, si no hubo escritura, la cookie recibida.
func (s *CookieStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.written {
		return s.value, nil
	}
	return s.c.Cookies(s.cfg.Name), nil
}

// SetToken guarda el token. La cookie vence junto con el claim exp cuando se puede leer.
func (s *CookieStore) SetToken(token string) error {
	if token == "" {
		return s.Clear()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cookie := s.cookie(token)
	if claims, ok := jwt.Decode(token); ok {
		cookie.Expires = claims.ExpiresAt.Time
	} else {
		cookie.SessionOnly = true
	}
	s.c.Cookie(cookie)
	s.written, s.value = true, token
	return nil
}

// Clear vence la cookie en la respuesta; las lecturas siguientes devuelven "".
func (s *CookieStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cookie := s.cookie("")
	cookie.Expires = time.Unix(0, 0)
	s.c.Cookie(cookie)
	s.written, s.value = true, ""
	return nil
}

func (s *CookieStore) cookie(value string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     s.cfg.Name,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

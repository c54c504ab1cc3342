package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/application/screens"
	"github.com/jhoicas/logistica-console/internal/domain"
)

const msgLoginFailed = "Erro ao fazer login. Tente novamente."

// AuthHandler login y logout de la consola.
type AuthHandler struct {
	log zerolog.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(log zerolog.Logger) *AuthHandler {
	return &AuthHandler{log: log}
}

type loginForm struct {
	Matricula string `form:"matricula"`
	Senha     string `form:"senha"`
}

// LoginPage GET /login.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return render(c, "login", "", fiber.Map{"Title": "Entrar"})
}

// Login POST /login. Con éxito la Authority guarda el token en la cookie y se va al
// dashboard; con error se vuelve a mostrar el formulario con el mensaje de la API.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in loginForm
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Formulário inválido.")
	}
	in.Matricula = strings.TrimSpace(in.Matricula)
	if in.Matricula == "" || in.Senha == "" {
		return h.loginError(c, in, "Preencha matrícula e senha.")
	}

	_, err := GetAuthority(c).Login(c.UserContext(), dto.LoginRequest{Matricula: in.Matricula, Senha: in.Senha})
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) {
			h.log.Warn().Err(err).Str("matricula", in.Matricula).Msg("login falló")
		}
		return h.loginError(c, in, screens.Message(err, msgLoginFailed))
	}
	return c.Redirect(RouteDashboard, fiber.StatusSeeOther)
}

func (h *AuthHandler) loginError(c *fiber.Ctx, in loginForm, msg string) error {
	return render(c, "login", "", fiber.Map{"Title": "Entrar", "Matricula": in.Matricula, "Error": msg})
}

// Logout POST /logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	GetAuthority(c).Logout()
	return c.Redirect(RouteLogin, fiber.StatusSeeOther)
}

package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/internal/session"
)

// AuthClient /auth.
type AuthClient struct{ c *Client }

var _ session.Authenticator = (*AuthClient)(nil)

// Login POST /auth/login. No persiste el token: de eso se encarga session.Authority.
func (a *AuthClient) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := a.c.do(ctx, http.MethodPost, "/auth/login", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

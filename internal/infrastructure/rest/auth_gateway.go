package rest

import (
	"context"

	"github.com/jhoicas/movilog-app/internal/domain/gateway"
)

// AuthGateway implementa gateway.AuthGateway contra POST /login.
type AuthGateway struct {
	client *Client
}

// NewAuthGateway construye el gateway de autenticación.
func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Name    string `json:"name"`
	Profile string `json:"profile"`
}

// Login autentica contra el servidor. Un 401 llega ya traducido a
// domain.ErrInvalidCredentials por el cliente base.
func (g *AuthGateway) Login(ctx context.Context, email, password string) (*gateway.LoginResult, error) {
	var resp loginResponse
	if err := g.client.sendJSON(ctx, "POST", "/login", loginBody{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &gateway.LoginResult{Name: resp.Name, Profile: resp.Profile}, nil
}

package rest

import (
	"context"
	"fmt"

	"github.com/jhoicas/movilog-app/internal/domain/entity"
	"github.com/jhoicas/movilog-app/internal/domain/gateway"
)

// UserGateway implementa gateway.UserGateway contra los endpoints de cuentas.
type UserGateway struct {
	client *Client
}

// NewUserGateway construye el gateway de usuarios.
func NewUserGateway(client *Client) *UserGateway {
	return &UserGateway{client: client}
}

type userDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Profile     string `json:"profile"`
	Document    string `json:"document"`
	FullAddress string `json:"full_address"`
	Email       string `json:"email"`
	Status      bool   `json:"status"`
}

func (d userDTO) toEntity() entity.User {
	return entity.User{
		ID:          d.ID,
		Name:        d.Name,
		Profile:     d.Profile,
		Document:    d.Document,
		FullAddress: d.FullAddress,
		Email:       d.Email,
		Status:      d.Status,
	}
}

type userBody struct {
	Name        string `json:"name"`
	Profile     string `json:"profile"`
	Document    string `json:"document"`
	FullAddress string `json:"full_address"`
	Email       string `json:"email"`
	Password    string `json:"password,omitempty"`
}

func toUserBody(in gateway.UserInput) userBody {
	return userBody{
		Name:        in.Name,
		Profile:     in.Profile,
		Document:    in.Document,
		FullAddress: in.FullAddress,
		Email:       in.Email,
		Password:    in.Password,
	}
}

// List trae las cuentas de GET /users.
func (g *UserGateway) List(ctx context.Context) ([]entity.User, error) {
	var raw []userDTO
	if err := g.client.getJSON(ctx, "/users", &raw); err != nil {
		return nil, err
	}
	out := make([]entity.User, 0, len(raw))
	for _, u := range raw {
		out = append(out, u.toEntity())
	}
	return out, nil
}

// Register da de alta la cuenta en POST /register.
func (g *UserGateway) Register(ctx context.Context, in gateway.UserInput) (*entity.User, error) {
	var raw userDTO
	if err := g.client.sendJSON(ctx, "POST", "/register", toUserBody(in), &raw); err != nil {
		return nil, err
	}
	u := raw.toEntity()
	return &u, nil
}

// Update edita la cuenta en PATCH /users/{id}.
func (g *UserGateway) Update(ctx context.Context, id int, in gateway.UserInput) (*entity.User, error) {
	var raw userDTO
	if err := g.client.sendJSON(ctx, "PATCH", fmt.Sprintf("/users/%d", id), toUserBody(in), &raw); err != nil {
		return nil, err
	}
	u := raw.toEntity()
	return &u, nil
}

type toggleResponse struct {
	Status bool `json:"status"`
}

// ToggleStatus alterna activo/inactivo en PATCH /users/{id}/toggle-status.
func (g *UserGateway) ToggleStatus(ctx context.Context, id int) (bool, error) {
	var resp toggleResponse
	if err := g.client.sendJSON(ctx, "PATCH", fmt.Sprintf("/users/%d/toggle-status", id), nil, &resp); err != nil {
		return false, err
	}
	return resp.Status, nil
}

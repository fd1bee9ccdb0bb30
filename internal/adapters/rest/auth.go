package rest

import (
	"context"
	"net/http"

	"silent-auction-client/internal/domain/shared"
)

type userPayload struct {
	ID    string `json:"_id"`
	AltID string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (p userPayload) toDomain() shared.User {
	return shared.User{
		ID:    pickID(p.ID, p.AltID),
		Name:  p.Name,
		Email: p.Email,
		Role:  shared.Role(p.Role),
	}
}

// Login authenticates with email and password. A rejected login comes
// back as a TransportError carrying the backend's message.
func (c *Client) Login(ctx context.Context, email, password string) (*shared.User, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var envelope struct {
		User userPayload `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &envelope); err != nil {
		return nil, err
	}

	user := envelope.User.toDomain()
	return &user, nil
}

// Register creates a new account
func (c *Client) Register(ctx context.Context, name, email, password string, role shared.Role) error {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     string(role),
	}
	return c.doJSON(ctx, http.MethodPost, "/auth/register", body, nil)
}

// Package auth wraps the sign-in and sign-up endpoints
package auth

import (
	"context"

	"github.com/thenoetrevino/kanbo/internal/api"
	"github.com/thenoetrevino/kanbo/internal/api/endpoints"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// Service defines the authentication endpoints
type Service interface {
	SignIn(ctx context.Context, req models.SignInRequest) (*models.SignInResponse, error)
	SignUp(ctx context.Context, req models.SignUpRequest) (*models.SignUpResponse, error)
}

type service struct {
	client api.Requester
}

// NewService creates a new auth service
func NewService(client api.Requester) Service {
	return &service{client: client}
}

func (s *service) SignIn(ctx context.Context, req models.SignInRequest) (*models.SignInResponse, error) {
	var resp models.SignInResponse
	if err := s.client.Post(ctx, endpoints.SIGNIN, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *service) SignUp(ctx context.Context, req models.SignUpRequest) (*models.SignUpResponse, error) {
	var resp models.SignUpResponse
	if err := s.client.Post(ctx, endpoints.SIGNUP, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

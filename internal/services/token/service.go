// Package token persists the bearer token and reads the claims it carries
package token

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"

	"github.com/thenoetrevino/kanbo/internal/api"
	"github.com/thenoetrevino/kanbo/internal/storage"
)

// ErrMalformedToken is returned by Claims for a token that is not a JWT
var ErrMalformedToken = errors.New("malformed auth token")

// Claims are the fields the API embeds in its tokens
type Claims struct {
	UserID string `json:"userId"`
	Login  string `json:"login"`
	jwt.RegisteredClaims
}

// Service defines token persistence operations
type Service interface {
	api.TokenSource
	GetToken(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	RemoveToken(ctx context.Context) error
	Claims(token string) (*Claims, error)
}

type service struct {
	store  storage.Storage
	parser *jwt.Parser
}

// NewService creates a token service backed by store
func NewService(store storage.Storage) Service {
	return &service{
		store:  store,
		parser: jwt.NewParser(),
	}
}

// Token implements api.TokenSource.
func (s *service) Token(ctx context.Context) (string, error) {
	return s.GetToken(ctx)
}

func (s *service) GetToken(ctx context.Context) (string, error) {
	token, _, err := s.store.Get(ctx, storage.KeyToken)
	if err != nil {
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	return token, nil
}

func (s *service) SetToken(ctx context.Context, token string) error {
	return s.store.Set(ctx, storage.KeyToken, token)
}

func (s *service) RemoveToken(ctx context.Context) error {
	return s.store.Remove(ctx, storage.KeyToken)
}

// Claims decodes the token payload without verifying its signature.
// The client never holds the signing key; the server verifies on every request.
func (s *service) Claims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := s.parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return claims, nil
}

// Package user wraps the /users endpoints and the locally cached user data
package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/kanbo/internal/api"
	"github.com/thenoetrevino/kanbo/internal/api/endpoints"
	"github.com/thenoetrevino/kanbo/internal/models"
	"github.com/thenoetrevino/kanbo/internal/storage"
)

// Service defines the user endpoints and user-data cache operations
type Service interface {
	GetAllUsers(ctx context.Context) ([]models.UserResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.UserResponse, error)
	UpdateUser(ctx context.Context, id string, req models.SignUpRequest) (*models.UserResponse, error)
	DeleteUser(ctx context.Context, id string) error

	SetUserData(ctx context.Context, u models.User) error
	GetUserData(ctx context.Context) (models.User, bool, error)
	RemoveUserData(ctx context.Context) error
}

type service struct {
	client api.Requester
	store  storage.Storage
}

// NewService creates a new user service
func NewService(client api.Requester, store storage.Storage) Service {
	return &service{
		client: client,
		store:  store,
	}
}

func (s *service) GetAllUsers(ctx context.Context) ([]models.UserResponse, error) {
	var users []models.UserResponse
	if err := s.client.Get(ctx, endpoints.Users(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *service) GetUserByID(ctx context.Context, id string) (*models.UserResponse, error) {
	var u models.UserResponse
	if err := s.client.Get(ctx, endpoints.User(id), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *service) UpdateUser(ctx context.Context, id string, req models.SignUpRequest) (*models.UserResponse, error) {
	var u models.UserResponse
	if err := s.client.Put(ctx, endpoints.User(id), req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *service) DeleteUser(ctx context.Context, id string) error {
	return s.client.Delete(ctx, endpoints.User(id))
}

func (s *service) SetUserData(ctx context.Context, u models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode user data: %w", err)
	}
	return s.store.Set(ctx, storage.KeyUserData, string(data))
}

// GetUserData returns the cached user, found=false when nothing (or garbage) is stored
func (s *service) GetUserData(ctx context.Context) (models.User, bool, error) {
	raw, found, err := s.store.Get(ctx, storage.KeyUserData)
	if err != nil || !found {
		return models.User{}, false, err
	}

	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return models.User{}, false, nil
	}
	return u, true, nil
}

func (s *service) RemoveUserData(ctx context.Context) error {
	return s.store.Remove(ctx, storage.KeyUserData)
}

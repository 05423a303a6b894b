// Package column wraps the /boards/{boardId}/columns endpoints
package column

import (
	"context"

	"github.com/thenoetrevino/kanbo/internal/api"
	"github.com/thenoetrevino/kanbo/internal/api/endpoints"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// Service defines the column endpoints
type Service interface {
	GetAllColumns(ctx context.Context, boardID string) ([]models.Column, error)
	GetColumn(ctx context.Context, req models.RequestGetColumn) (*models.Column, error)
	CreateColumn(ctx context.Context, boardID string, req models.CreateColumnRequest) (*models.Column, error)
	UpdateColumn(ctx context.Context, req models.RequestGetColumn, body models.UpdateColumnRequest) (*models.Column, error)
	DeleteColumn(ctx context.Context, req models.RequestGetColumn) error
}

type service struct {
	client api.Requester
}

// NewService creates a new column service
func NewService(client api.Requester) Service {
	return &service{client: client}
}

func (s *service) GetAllColumns(ctx context.Context, boardID string) ([]models.Column, error) {
	if boardID == "" {
		return nil, ErrMissingBoardID
	}
	var columns []models.Column
	if err := s.client.Get(ctx, endpoints.Columns(boardID), &columns); err != nil {
		return nil, err
	}
	return columns, nil
}

func (s *service) GetColumn(ctx context.Context, req models.RequestGetColumn) (*models.Column, error) {
	var column models.Column
	if err := s.client.Get(ctx, endpoints.Column(req.BoardID, req.ColumnID), &column); err != nil {
		return nil, err
	}
	return &column, nil
}

func (s *service) CreateColumn(ctx context.Context, boardID string, req models.CreateColumnRequest) (*models.Column, error) {
	if boardID == "" {
		return nil, ErrMissingBoardID
	}
	var column models.Column
	if err := s.client.Post(ctx, endpoints.Columns(boardID), req, &column); err != nil {
		return nil, err
	}
	return &column, nil
}

func (s *service) UpdateColumn(ctx context.Context, req models.RequestGetColumn, body models.UpdateColumnRequest) (*models.Column, error) {
	var column models.Column
	if err := s.client.Put(ctx, endpoints.Column(req.BoardID, req.ColumnID), body, &column); err != nil {
		return nil, err
	}
	return &column, nil
}

func (s *service) DeleteColumn(ctx context.Context, req models.RequestGetColumn) error {
	return s.client.Delete(ctx, endpoints.Column(req.BoardID, req.ColumnID))
}

// Package board wraps the /boards endpoints
package board

import (
	"context"

	"github.com/thenoetrevino/kanbo/internal/api"
	"github.com/thenoetrevino/kanbo/internal/api/endpoints"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// Service defines the board endpoints
type Service interface {
	GetAllBoards(ctx context.Context) ([]models.Board, error)
	GetBoard(ctx context.Context, boardID string) (*models.Board, error)
	CreateBoard(ctx context.Context, req models.CreateBoardRequest) (*models.Board, error)
	UpdateBoard(ctx context.Context, boardID string, req models.UpdateBoardRequest) (*models.Board, error)
	DeleteBoard(ctx context.Context, boardID string) error
}

type service struct {
	client api.Requester
}

// NewService creates a new board service
func NewService(client api.Requester) Service {
	return &service{client: client}
}

func (s *service) GetAllBoards(ctx context.Context) ([]models.Board, error) {
	var boards []models.Board
	if err := s.client.Get(ctx, endpoints.Boards(), &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

func (s *service) GetBoard(ctx context.Context, boardID string) (*models.Board, error) {
	var board models.Board
	if err := s.client.Get(ctx, endpoints.Board(boardID), &board); err != nil {
		return nil, err
	}
	return &board, nil
}

func (s *service) CreateBoard(ctx context.Context, req models.CreateBoardRequest) (*models.Board, error) {
	var board models.Board
	if err := s.client.Post(ctx, endpoints.Boards(), req, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

func (s *service) UpdateBoard(ctx context.Context, boardID string, req models.UpdateBoardRequest) (*models.Board, error) {
	var board models.Board
	if err := s.client.Put(ctx, endpoints.Board(boardID), req, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

func (s *service) DeleteBoard(ctx context.Context, boardID string) error {
	return s.client.Delete(ctx, endpoints.Board(boardID))
}

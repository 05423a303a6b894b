// Package task wraps the /boards/{boardId}/columns/{columnId}/tasks endpoints
package task

import (
	"context"

	"github.com/thenoetrevino/kanbo/internal/api"
	"github.com/thenoetrevino/kanbo/internal/api/endpoints"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// Service defines the task endpoints
type Service interface {
	GetAllTasks(ctx context.Context, req models.RequestGetAllTasks) ([]models.Task, error)
	CreateTask(ctx context.Context, req models.RequestCreateTask) (*models.Task, error)
	GetTask(ctx context.Context, req models.RequestGetTask) (*models.Task, error)
	UpdateTask(ctx context.Context, req models.RequestUpdateTask) (*models.Task, error)
	DeleteTask(ctx context.Context, req models.RequestGetTask) error
}

type service struct {
	client api.Requester
}

// NewService creates a new task service
func NewService(client api.Requester) Service {
	return &service{client: client}
}

func (s *service) GetAllTasks(ctx context.Context, req models.RequestGetAllTasks) ([]models.Task, error) {
	if req.BoardID == "" || req.ColumnID == "" {
		return nil, ErrMissingIDs
	}
	var tasks []models.Task
	if err := s.client.Get(ctx, endpoints.Tasks(req.BoardID, req.ColumnID), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *service) CreateTask(ctx context.Context, req models.RequestCreateTask) (*models.Task, error) {
	if req.BoardID == "" || req.ColumnID == "" {
		return nil, ErrMissingIDs
	}
	var task models.Task
	if err := s.client.Post(ctx, endpoints.Tasks(req.BoardID, req.ColumnID), req.Body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *service) GetTask(ctx context.Context, req models.RequestGetTask) (*models.Task, error) {
	var task models.Task
	if err := s.client.Get(ctx, endpoints.Task(req.BoardID, req.ColumnID, req.TaskID), &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *service) UpdateTask(ctx context.Context, req models.RequestUpdateTask) (*models.Task, error) {
	body := req.Body
	// the API expects the owning board and column in the PUT body
	if body.BoardID == "" {
		body.BoardID = req.BoardID
	}
	if body.ColumnID == "" {
		body.ColumnID = req.ColumnID
	}

	var task models.Task
	if err := s.client.Put(ctx, endpoints.Task(req.BoardID, req.ColumnID, req.TaskID), body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *service) DeleteTask(ctx context.Context, req models.RequestGetTask) error {
	return s.client.Delete(ctx, endpoints.Task(req.BoardID, req.ColumnID, req.TaskID))
}

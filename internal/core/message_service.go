package core

import (
	"context"
	"fmt"

	"github.com/example/portfolio-api/internal/db"
	"github.com/example/portfolio-api/internal/models"
)

// MessageService handles contact messages: created from the public side,
// read and deleted by admins, never updated.
type MessageService struct {
	repo db.MessageRepository
}

func NewMessageService(repo db.MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

// Create stores a contact submission and returns its generated ID.
func (s *MessageService) Create(ctx context.Context, m models.Message) (string, error) {
	id, err := s.repo.Create(ctx, &m)
	if err != nil {
		return "", fmt.Errorf("create message: %w", err)
	}
	return id, nil
}

// List returns every message, newest first.
func (s *MessageService) List(ctx context.Context) ([]*models.Message, error) {
	return s.repo.List(ctx)
}

func (s *MessageService) GetByID(ctx context.Context, id string) (*models.Message, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MessageService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

package core

import (
	"context"
	"fmt"

	"github.com/example/portfolio-api/internal/db"
	"github.com/example/portfolio-api/internal/models"
)

// ExperienceService is the typed boundary around the experiences collection.
type ExperienceService struct {
	repo db.ExperienceRepository
}

func NewExperienceService(repo db.ExperienceRepository) *ExperienceService {
	return &ExperienceService{repo: repo}
}

// List returns every experience, newest first.
func (s *ExperienceService) List(ctx context.Context) ([]*models.Experience, error) {
	return s.repo.List(ctx)
}

// GetByID returns (nil, nil) when the experience does not exist.
func (s *ExperienceService) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts a new experience and returns its generated ID. The tech
// stack is de-duplicated here, at the edit boundary; storage does not
// enforce uniqueness.
func (s *ExperienceService) Create(ctx context.Context, exp models.Experience) (string, error) {
	exp.TechStack = dedupe(exp.TechStack)
	id, err := s.repo.Create(ctx, &exp)
	if err != nil {
		return "", fmt.Errorf("create experience: %w", err)
	}
	return id, nil
}

// Update merges the supplied fields; ID and createdAt stay immutable.
func (s *ExperienceService) Update(ctx context.Context, id string, u models.ExperienceUpdate) error {
	if u.TechStack != nil {
		u.TechStack = dedupe(u.TechStack)
	}
	return s.repo.Update(ctx, id, u.Map())
}

// Delete removes the experience; deleting a missing ID succeeds.
func (s *ExperienceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// dedupe removes duplicate entries while preserving first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

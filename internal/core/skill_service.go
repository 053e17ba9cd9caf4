package core

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/example/portfolio-api/internal/db"
	"github.com/example/portfolio-api/internal/models"
)

// ErrInvalidCategory is returned when a skill names a category outside the
// closed set.
var ErrInvalidCategory = errors.New("unknown skill category")

// SkillService is the typed boundary around the skills collection.
type SkillService struct {
	repo db.SkillRepository
}

func NewSkillService(repo db.SkillRepository) *SkillService {
	return &SkillService{repo: repo}
}

// List returns every skill ordered by category then name, both ascending.
func (s *SkillService) List(ctx context.Context) ([]*models.Skill, error) {
	skills, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(skills, func(i, j int) bool {
		if skills[i].Category != skills[j].Category {
			return skills[i].Category < skills[j].Category
		}
		return skills[i].Name < skills[j].Name
	})
	return skills, nil
}

func (s *SkillService) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	return s.repo.GetByID(ctx, id)
}

// Create rejects categories outside the closed set before touching storage.
func (s *SkillService) Create(ctx context.Context, skill models.Skill) (string, error) {
	if !models.ValidSkillCategory(skill.Category) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, skill.Category)
	}
	id, err := s.repo.Create(ctx, &skill)
	if err != nil {
		return "", fmt.Errorf("create skill: %w", err)
	}
	return id, nil
}

func (s *SkillService) Update(ctx context.Context, id string, u models.SkillUpdate) error {
	if u.Category != nil && !models.ValidSkillCategory(*u.Category) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, *u.Category)
	}
	return s.repo.Update(ctx, id, u.Map())
}

func (s *SkillService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

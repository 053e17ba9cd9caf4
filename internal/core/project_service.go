package core

import (
	"context"
	"fmt"

	"github.com/example/portfolio-api/internal/db"
	"github.com/example/portfolio-api/internal/models"
	"github.com/example/portfolio-api/internal/storage"
)

// ProjectService is the typed boundary around the projects collection, plus
// the project image flow against the object store.
type ProjectService struct {
	repo  db.ProjectRepository
	store storage.Store
}

func NewProjectService(repo db.ProjectRepository, store storage.Store) *ProjectService {
	return &ProjectService{repo: repo, store: store}
}

// List returns every project, newest first.
func (s *ProjectService) List(ctx context.Context) ([]*models.Project, error) {
	return s.repo.List(ctx)
}

// ListFeatured returns the featured subset of List, in the same order.
func (s *ProjectService) ListFeatured(ctx context.Context) ([]*models.Project, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	featured := []*models.Project{}
	for _, p := range all {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (*models.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, p models.Project) (string, error) {
	p.TechStack = dedupe(p.TechStack)
	id, err := s.repo.Create(ctx, &p)
	if err != nil {
		return "", fmt.Errorf("create project: %w", err)
	}
	return id, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, u models.ProjectUpdate) error {
	if u.TechStack != nil {
		u.TechStack = dedupe(u.TechStack)
	}
	return s.repo.Update(ctx, id, u.Map())
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// SetImage uploads an image for an existing project and points the project's
// imageUrl at it. The project document must exist first, so the object path
// is keyed by the real ID and never orphaned under a placeholder.
// Returns ("", nil) when the project does not exist.
func (s *ProjectService) SetImage(ctx context.Context, id, filename string, data []byte, contentType string) (string, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", nil
	}

	url, err := s.store.Upload(ctx, storage.ProjectImagePath(id, filename), data, contentType)
	if err != nil {
		return "", fmt.Errorf("upload project image: %w", err)
	}

	if err := s.repo.Update(ctx, id, map[string]interface{}{"imageUrl": url}); err != nil {
		return "", err
	}
	return url, nil
}

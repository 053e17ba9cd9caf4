package core

import (
	"context"
	"fmt"

	"github.com/example/portfolio-api/internal/db"
	"github.com/example/portfolio-api/internal/models"
	"github.com/example/portfolio-api/internal/storage"
)

// SettingsService manages the site settings singleton and the CV upload that
// feeds its cvUrl field.
type SettingsService struct {
	repo  db.SettingsRepository
	store storage.Store
}

func NewSettingsService(repo db.SettingsRepository, store storage.Store) *SettingsService {
	return &SettingsService{repo: repo, store: store}
}

// Get returns (nil, nil) when the singleton has not been written yet.
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	return s.repo.Get(ctx)
}

// Update merges the supplied fields into the singleton. If it does not exist
// yet, it is created with every unspecified text field defaulted to "".
func (s *SettingsService) Update(ctx context.Context, u models.SettingsUpdate) error {
	existing, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}
	if existing == nil {
		return s.repo.Set(ctx, u.WithDefaults())
	}
	return s.repo.Merge(ctx, u.Map())
}

// UploadCV stores the CV at its fixed path and points cvUrl at it.
func (s *SettingsService) UploadCV(ctx context.Context, data []byte, contentType string) (string, error) {
	url, err := s.store.Upload(ctx, storage.CVPath, data, contentType)
	if err != nil {
		return "", fmt.Errorf("upload cv: %w", err)
	}
	if err := s.Update(ctx, models.SettingsUpdate{CVURL: &url}); err != nil {
		return "", err
	}
	return url, nil
}

package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/example/portfolio-api/internal/db"
	"github.com/example/portfolio-api/internal/models"
)

// CertificationService is the typed boundary around the certifications collection.
type CertificationService struct {
	repo db.CertificationRepository
}

func NewCertificationService(repo db.CertificationRepository) *CertificationService {
	return &CertificationService{repo: repo}
}

// List returns every certification ordered by date descending. Dates are
// free text, so this is a byte-wise string comparison, not a date compare.
func (s *CertificationService) List(ctx context.Context) ([]*models.Certification, error) {
	certs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(certs, func(i, j int) bool {
		return certs[i].Date > certs[j].Date
	})
	return certs, nil
}

func (s *CertificationService) GetByID(ctx context.Context, id string) (*models.Certification, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CertificationService) Create(ctx context.Context, c models.Certification) (string, error) {
	id, err := s.repo.Create(ctx, &c)
	if err != nil {
		return "", fmt.Errorf("create certification: %w", err)
	}
	return id, nil
}

func (s *CertificationService) Update(ctx context.Context, id string, u models.CertificationUpdate) error {
	return s.repo.Update(ctx, id, u.Map())
}

func (s *CertificationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

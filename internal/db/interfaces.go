package db

import (
	"context"

	"github.com/example/portfolio-api/internal/models"
)

// Repositories return (nil, nil) from GetByID when the document does not
// exist; an error always means the operation itself failed. Update merges
// only the supplied fields. Delete is idempotent.

// ExperienceRepository defines storage operations for the experiences collection.
type ExperienceRepository interface {
	List(ctx context.Context) ([]*models.Experience, error)
	GetByID(ctx context.Context, id string) (*models.Experience, error)
	Create(ctx context.Context, exp *models.Experience) (string, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// ProjectRepository defines storage operations for the projects collection.
type ProjectRepository interface {
	List(ctx context.Context) ([]*models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) (string, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// SkillRepository defines storage operations for the skills collection.
type SkillRepository interface {
	List(ctx context.Context) ([]*models.Skill, error)
	GetByID(ctx context.Context, id string) (*models.Skill, error)
	Create(ctx context.Context, s *models.Skill) (string, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// CertificationRepository defines storage operations for the certifications collection.
type CertificationRepository interface {
	List(ctx context.Context) ([]*models.Certification, error)
	GetByID(ctx context.Context, id string) (*models.Certification, error)
	Create(ctx context.Context, c *models.Certification) (string, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// MessageRepository defines storage operations for the messages collection.
// Messages are create-only: there is deliberately no update method.
type MessageRepository interface {
	List(ctx context.Context) ([]*models.Message, error)
	GetByID(ctx context.Context, id string) (*models.Message, error)
	Create(ctx context.Context, m *models.Message) (string, error)
	Delete(ctx context.Context, id string) error
}

// SettingsRepository manages the settings singleton document.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.Settings, error)
	Set(ctx context.Context, s *models.Settings) error
	Merge(ctx context.Context, fields map[string]interface{}) error
}

// UserRepository reads identity-to-role documents. Provisioning happens
// out-of-band, so the interface is read-only.
type UserRepository interface {
	GetByID(ctx context.Context, uid string) (*models.User, error)
}

package core

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/example/portfolio-api/internal/models"
)

// SeedService fans a static data file out into the content services. It is a
// one-shot batch import, not a sync: there is no dedup against existing
// data, so repeated runs duplicate entries.
type SeedService struct {
	file           string
	settings       *SettingsService
	experiences    *ExperienceService
	projects       *ProjectService
	skills         *SkillService
	certifications *CertificationService
}

func NewSeedService(
	file string,
	settings *SettingsService,
	experiences *ExperienceService,
	projects *ProjectService,
	skills *SkillService,
	certifications *CertificationService,
) *SeedService {
	return &SeedService{
		file:           file,
		settings:       settings,
		experiences:    experiences,
		projects:       projects,
		skills:         skills,
		certifications: certifications,
	}
}

type seedFile struct {
	Settings       models.SettingsUpdate  `json:"settings"`
	Experiences    []models.Experience    `json:"experiences"`
	Projects       []models.Project       `json:"projects"`
	Skills         []models.Skill         `json:"skills"`
	Certifications []models.Certification `json:"certifications"`
}

// SeedResult reports how many entities each collection received.
type SeedResult struct {
	Experiences    int `json:"experiences"`
	Projects       int `json:"projects"`
	Skills         int `json:"skills"`
	Certifications int `json:"certifications"`
}

// Import reads the seed file and creates its content in file order:
// settings first, then experiences, projects, skills, certifications.
func (s *SeedService) Import(ctx context.Context) (*SeedResult, error) {
	raw, err := os.ReadFile(s.file)
	if err != nil {
		return nil, fmt.Errorf("read seed file '%s': %w", s.file, err)
	}

	var data seedFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file '%s': %w", s.file, err)
	}

	if err := s.settings.Update(ctx, data.Settings); err != nil {
		return nil, err
	}

	result := &SeedResult{}
	for _, exp := range data.Experiences {
		if _, err := s.experiences.Create(ctx, exp); err != nil {
			return nil, err
		}
		result.Experiences++
	}
	for _, p := range data.Projects {
		if _, err := s.projects.Create(ctx, p); err != nil {
			return nil, err
		}
		result.Projects++
	}
	for _, skill := range data.Skills {
		if _, err := s.skills.Create(ctx, skill); err != nil {
			return nil, err
		}
		result.Skills++
	}
	for _, cert := range data.Certifications {
		if _, err := s.certifications.Create(ctx, cert); err != nil {
			return nil, err
		}
		result.Certifications++
	}

	return result, nil
}

package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/example/portfolio-api/internal/models"
)

const skillsCollection = "skills"

type firestoreSkillRepository struct {
	client *firestore.Client
}

// NewFirestoreSkillRepository creates a SkillRepository backed by Firestore.
func NewFirestoreSkillRepository(client *firestore.Client) SkillRepository {
	return &firestoreSkillRepository{client: client}
}

// List fetches the collection unordered; the service layer sorts by category
// then name.
func (r *firestoreSkillRepository) List(ctx context.Context) ([]*models.Skill, error) {
	iter := r.client.Collection(skillsCollection).Documents(ctx)
	defer iter.Stop()

	skills := []*models.Skill{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list skills: %w", err)
		}
		skills = append(skills, models.SkillFromDoc(doc.Ref.ID, doc.Data()))
	}
	return skills, nil
}

func (r *firestoreSkillRepository) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	doc, err := r.client.Collection(skillsCollection).Doc(id).Get(ctx)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get skill '%s': %w", id, err)
	}
	return models.SkillFromDoc(doc.Ref.ID, doc.Data()), nil
}

func (r *firestoreSkillRepository) Create(ctx context.Context, s *models.Skill) (string, error) {
	docRef := r.client.Collection(skillsCollection).NewDoc()
	if _, err := docRef.Create(ctx, s); err != nil {
		return "", fmt.Errorf("failed to create skill: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestoreSkillRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	_, err := r.client.Collection(skillsCollection).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update skill '%s': %w", id, err)
	}
	return nil
}

func (r *firestoreSkillRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(skillsCollection).Doc(id).Delete(ctx)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete skill '%s': %w", id, err)
	}
	return nil
}

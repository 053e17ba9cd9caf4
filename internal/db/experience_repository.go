package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/example/portfolio-api/internal/models"
)

const experiencesCollection = "experiences"

type firestoreExperienceRepository struct {
	client *firestore.Client
}

// NewFirestoreExperienceRepository creates an ExperienceRepository backed by Firestore.
func NewFirestoreExperienceRepository(client *firestore.Client) ExperienceRepository {
	return &firestoreExperienceRepository{client: client}
}

// List fetches the whole collection, newest first. Collections are assumed
// small (dozens of items), so there is no pagination.
func (r *firestoreExperienceRepository) List(ctx context.Context) ([]*models.Experience, error) {
	iter := r.client.Collection(experiencesCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	experiences := []*models.Experience{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list experiences: %w", err)
		}
		experiences = append(experiences, models.ExperienceFromDoc(doc.Ref.ID, doc.Data()))
	}
	return experiences, nil
}

func (r *firestoreExperienceRepository) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	doc, err := r.client.Collection(experiencesCollection).Doc(id).Get(ctx)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get experience '%s': %w", id, err)
	}
	return models.ExperienceFromDoc(doc.Ref.ID, doc.Data()), nil
}

// Create inserts a new document with an auto-generated ID. CreatedAt is
// assigned by the server timestamp tag on the model.
func (r *firestoreExperienceRepository) Create(ctx context.Context, exp *models.Experience) (string, error) {
	docRef := r.client.Collection(experiencesCollection).NewDoc()
	if _, err := docRef.Create(ctx, exp); err != nil {
		return "", fmt.Errorf("failed to create experience: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestoreExperienceRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	_, err := r.client.Collection(experiencesCollection).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update experience '%s': %w", id, err)
	}
	return nil
}

func (r *firestoreExperienceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(experiencesCollection).Doc(id).Delete(ctx)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete experience '%s': %w", id, err)
	}
	return nil
}

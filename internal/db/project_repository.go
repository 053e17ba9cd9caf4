package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/example/portfolio-api/internal/models"
)

const projectsCollection = "projects"

type firestoreProjectRepository struct {
	client *firestore.Client
}

// NewFirestoreProjectRepository creates a ProjectRepository backed by Firestore.
func NewFirestoreProjectRepository(client *firestore.Client) ProjectRepository {
	return &firestoreProjectRepository{client: client}
}

func (r *firestoreProjectRepository) List(ctx context.Context) ([]*models.Project, error) {
	iter := r.client.Collection(projectsCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	projects := []*models.Project{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list projects: %w", err)
		}
		projects = append(projects, models.ProjectFromDoc(doc.Ref.ID, doc.Data()))
	}
	return projects, nil
}

func (r *firestoreProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	doc, err := r.client.Collection(projectsCollection).Doc(id).Get(ctx)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project '%s': %w", id, err)
	}
	return models.ProjectFromDoc(doc.Ref.ID, doc.Data()), nil
}

func (r *firestoreProjectRepository) Create(ctx context.Context, p *models.Project) (string, error) {
	docRef := r.client.Collection(projectsCollection).NewDoc()
	if _, err := docRef.Create(ctx, p); err != nil {
		return "", fmt.Errorf("failed to create project: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestoreProjectRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	_, err := r.client.Collection(projectsCollection).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update project '%s': %w", id, err)
	}
	return nil
}

func (r *firestoreProjectRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(projectsCollection).Doc(id).Delete(ctx)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete project '%s': %w", id, err)
	}
	return nil
}

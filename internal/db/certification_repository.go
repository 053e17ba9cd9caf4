package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/example/portfolio-api/internal/models"
)

const certificationsCollection = "certifications"

type firestoreCertificationRepository struct {
	client *firestore.Client
}

// NewFirestoreCertificationRepository creates a CertificationRepository backed by Firestore.
func NewFirestoreCertificationRepository(client *firestore.Client) CertificationRepository {
	return &firestoreCertificationRepository{client: client}
}

// List fetches the collection unordered; the service layer sorts by date
// descending.
func (r *firestoreCertificationRepository) List(ctx context.Context) ([]*models.Certification, error) {
	iter := r.client.Collection(certificationsCollection).Documents(ctx)
	defer iter.Stop()

	certifications := []*models.Certification{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list certifications: %w", err)
		}
		certifications = append(certifications, models.CertificationFromDoc(doc.Ref.ID, doc.Data()))
	}
	return certifications, nil
}

func (r *firestoreCertificationRepository) GetByID(ctx context.Context, id string) (*models.Certification, error) {
	doc, err := r.client.Collection(certificationsCollection).Doc(id).Get(ctx)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get certification '%s': %w", id, err)
	}
	return models.CertificationFromDoc(doc.Ref.ID, doc.Data()), nil
}

func (r *firestoreCertificationRepository) Create(ctx context.Context, c *models.Certification) (string, error) {
	docRef := r.client.Collection(certificationsCollection).NewDoc()
	if _, err := docRef.Create(ctx, c); err != nil {
		return "", fmt.Errorf("failed to create certification: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestoreCertificationRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	_, err := r.client.Collection(certificationsCollection).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update certification '%s': %w", id, err)
	}
	return nil
}

func (r *firestoreCertificationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(certificationsCollection).Doc(id).Delete(ctx)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete certification '%s': %w", id, err)
	}
	return nil
}

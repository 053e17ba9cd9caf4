package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/example/portfolio-api/internal/models"
)

const (
	settingsCollection = "settings"
	settingsDocID      = "public"
)

type firestoreSettingsRepository struct {
	client *firestore.Client
}

// NewFirestoreSettingsRepository creates a SettingsRepository backed by
// Firestore. The singleton lives at settings/public.
func NewFirestoreSettingsRepository(client *firestore.Client) SettingsRepository {
	return &firestoreSettingsRepository{client: client}
}

func (r *firestoreSettingsRepository) doc() *firestore.DocumentRef {
	return r.client.Collection(settingsCollection).Doc(settingsDocID)
}

// Get returns (nil, nil) when the singleton has not been written yet.
func (r *firestoreSettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	doc, err := r.doc().Get(ctx)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return models.SettingsFromDoc(doc.Data()), nil
}

// Set writes the full settings document, used for the first write.
func (r *firestoreSettingsRepository) Set(ctx context.Context, s *models.Settings) error {
	if _, err := r.doc().Set(ctx, s); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// Merge updates only the supplied fields of an existing document.
func (r *firestoreSettingsRepository) Merge(ctx context.Context, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if _, err := r.doc().Set(ctx, fields, firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}

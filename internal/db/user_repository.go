package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/example/portfolio-api/internal/models"
)

const usersCollection = "users"

type firestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a UserRepository backed by Firestore.
// User documents are keyed by the Firebase Auth UID.
func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	return &firestoreUserRepository{client: client}
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, uid string) (*models.User, error) {
	doc, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user '%s': %w", uid, err)
	}
	return models.UserFromDoc(doc.Ref.ID, doc.Data()), nil
}

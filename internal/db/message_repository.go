package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/example/portfolio-api/internal/models"
)

const messagesCollection = "messages"

type firestoreMessageRepository struct {
	client *firestore.Client
}

// NewFirestoreMessageRepository creates a MessageRepository backed by Firestore.
func NewFirestoreMessageRepository(client *firestore.Client) MessageRepository {
	return &firestoreMessageRepository{client: client}
}

func (r *firestoreMessageRepository) List(ctx context.Context) ([]*models.Message, error) {
	iter := r.client.Collection(messagesCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	messages := []*models.Message{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list messages: %w", err)
		}
		messages = append(messages, models.MessageFromDoc(doc.Ref.ID, doc.Data()))
	}
	return messages, nil
}

func (r *firestoreMessageRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	doc, err := r.client.Collection(messagesCollection).Doc(id).Get(ctx)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message '%s': %w", id, err)
	}
	return models.MessageFromDoc(doc.Ref.ID, doc.Data()), nil
}

func (r *firestoreMessageRepository) Create(ctx context.Context, m *models.Message) (string, error) {
	docRef := r.client.Collection(messagesCollection).NewDoc()
	if _, err := docRef.Create(ctx, m); err != nil {
		return "", fmt.Errorf("failed to create message: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestoreMessageRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(messagesCollection).Doc(id).Delete(ctx)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete message '%s': %w", id, err)
	}
	return nil
}

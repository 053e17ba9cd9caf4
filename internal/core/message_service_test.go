package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/portfolio-api/internal/models"
)

func TestMessageServiceCreateAndList(t *testing.T) {
	svc := NewMessageService(newFakeMessageRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Message{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Hello",
	})
	require.NoError(t, err)

	id2, err := svc.Create(ctx, models.Message{
		Name:    "Grace",
		Email:   "grace@example.com",
		Message: "Hi there",
	})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Grace", list[0].Name)
	assert.Equal(t, "Ada", list[1].Name)

	got, err := svc.GetByID(ctx, id2)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "grace@example.com", got.Email)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestMessageServiceDelete(t *testing.T) {
	svc := NewMessageService(newFakeMessageRepo())
	ctx := context.Background()

	id, err := svc.Create(ctx, models.Message{Name: "Ada", Email: "a@b.c", Message: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))
	require.NoError(t, svc.Delete(ctx, id))

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

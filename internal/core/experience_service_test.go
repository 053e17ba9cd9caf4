package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/portfolio-api/internal/models"
)

func strPtr(s string) *string { return &s }

func TestExperienceServiceCreateAndGet(t *testing.T) {
	svc := NewExperienceService(newFakeExperienceRepo())
	ctx := context.Background()

	id, err := svc.Create(ctx, models.Experience{
		Role:        "Staff Engineer",
		Company:     "Acme",
		StartDate:   "Jan 2022",
		EndDate:     "Present",
		Description: "Platform work",
		TechStack:   []string{"Go", "GCP"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Staff Engineer", got.Role)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, []string{"Go", "GCP"}, got.TechStack)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestExperienceServiceGetMissing(t *testing.T) {
	svc := NewExperienceService(newFakeExperienceRepo())

	got, err := svc.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestExperienceServiceCreateDedupesTechStack(t *testing.T) {
	svc := NewExperienceService(newFakeExperienceRepo())
	ctx := context.Background()

	id, err := svc.Create(ctx, models.Experience{
		Role:      "Engineer",
		TechStack: []string{"Go", "Rust", "Go", "Go", "Rust"},
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, got.TechStack)
}

func TestExperienceServicePartialUpdate(t *testing.T) {
	svc := NewExperienceService(newFakeExperienceRepo())
	ctx := context.Background()

	id, err := svc.Create(ctx, models.Experience{
		Role:      "Engineer",
		Company:   "Acme",
		StartDate: "2020",
	})
	require.NoError(t, err)

	before, err := svc.GetByID(ctx, id)
	require.NoError(t, err)

	err = svc.Update(ctx, id, models.ExperienceUpdate{Company: strPtr("Initech")})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Initech", got.Company)
	assert.Equal(t, "Engineer", got.Role)
	assert.Equal(t, "2020", got.StartDate)
	assert.Equal(t, before.CreatedAt, got.CreatedAt)
}

func TestExperienceServiceUpdateDedupesTechStack(t *testing.T) {
	svc := NewExperienceService(newFakeExperienceRepo())
	ctx := context.Background()

	id, err := svc.Create(ctx, models.Experience{Role: "Engineer"})
	require.NoError(t, err)

	err = svc.Update(ctx, id, models.ExperienceUpdate{
		TechStack: []string{"K8s", "K8s", "Terraform"},
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"K8s", "Terraform"}, got.TechStack)
}

func TestExperienceServiceListNewestFirst(t *testing.T) {
	svc := NewExperienceService(newFakeExperienceRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Experience{Role: "First"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.Experience{Role: "Second"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.Experience{Role: "Third"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Third", list[0].Role)
	assert.Equal(t, "Second", list[1].Role)
	assert.Equal(t, "First", list[2].Role)
}

func TestExperienceServiceDeleteIdempotent(t *testing.T) {
	svc := NewExperienceService(newFakeExperienceRepo())
	ctx := context.Background()

	id, err := svc.Create(ctx, models.Experience{Role: "Engineer"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))
	require.NoError(t, svc.Delete(ctx, id))

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

package auth

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/example/portfolio-api/internal/db"
	"github.com/example/portfolio-api/internal/models"
)

// RoleResolver resolves an authentication identity to its authorization role
// via the users collection. A missing user document resolves to the plain
// user role, never an error.
type RoleResolver interface {
	Resolve(ctx context.Context, uid string) (models.Role, error)
	Invalidate(uid string)
}

// cachingRoleResolver caches lookups with a short TTL. A revoked role stays
// effective for at most one TTL; there is no push revocation.
type cachingRoleResolver struct {
	users db.UserRepository
	cache *gocache.Cache
}

// NewRoleResolver creates a RoleResolver over the user repository with the
// given cache TTL.
func NewRoleResolver(users db.UserRepository, ttl time.Duration) RoleResolver {
	return &cachingRoleResolver{
		users: users,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (r *cachingRoleResolver) Resolve(ctx context.Context, uid string) (models.Role, error) {
	if v, ok := r.cache.Get(uid); ok {
		return v.(models.Role), nil
	}

	user, err := r.users.GetByID(ctx, uid)
	if err != nil {
		return models.RoleUser, err
	}

	role := models.RoleUser
	if user != nil {
		role = user.Role
	}
	r.cache.Set(uid, role, gocache.DefaultExpiration)
	return role, nil
}

func (r *cachingRoleResolver) Invalidate(uid string) {
	r.cache.Delete(uid)
}

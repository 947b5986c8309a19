package cache

import (
	"context"
	"strings"

	"github.com/riskibarqy/league-registry/internal/domain/user"
	basecache "github.com/riskibarqy/league-registry/internal/platform/cache"
)

const userKeyPrefix = "user:"

// UserRepository caches user lookups. Users are only ever created, so a
// create clears every cached lookup to drop stale misses.
type UserRepository struct {
	next  user.Repository
	cache *basecache.Store
}

func NewUserRepository(next user.Repository, cache *basecache.Store) *UserRepository {
	return &UserRepository{next: next, cache: cache}
}

func (r *UserRepository) Create(ctx context.Context, item user.User) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, userKeyPrefix)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	key := userKeyPrefix + "id:" + userID
	return r.load(ctx, key, func(ctx context.Context) (user.User, bool, error) {
		return r.next.GetByID(ctx, userID)
	})
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, bool, error) {
	key := userKeyPrefix + "username:" + strings.ToLower(strings.TrimSpace(username))
	return r.load(ctx, key, func(ctx context.Context) (user.User, bool, error) {
		return r.next.GetByUsername(ctx, username)
	})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	return r.next.GetByEmail(ctx, email)
}

func (r *UserRepository) ListByIDs(ctx context.Context, userIDs []string) ([]user.User, error) {
	return r.next.ListByIDs(ctx, userIDs)
}

func (r *UserRepository) load(ctx context.Context, key string, loader func(context.Context) (user.User, bool, error)) (user.User, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		return cachedUser{value: item, exists: exists}, nil
	})
	if err != nil {
		return user.User{}, false, err
	}

	cached, _ := v.(cachedUser)
	return cached.value, cached.exists, nil
}

type cachedUser struct {
	value  user.User
	exists bool
}

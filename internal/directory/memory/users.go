package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-planner/internal/directory"
	"task-planner/internal/model"
)

// UserSeed is one directory entry plus its role names, primary role first.
type UserSeed struct {
	User  model.User
	Roles []string
}

// implUserDirectory is an in-memory UserDirectory. Role lookups go through
// an expiring cache so hot paths (assignment checks, report authorization)
// avoid rescanning the seed under lock.
type implUserDirectory struct {
	mu    sync.RWMutex
	order []string
	users map[string]model.User
	roles map[string][]string

	roleCache *expirable.LRU[string, []string]
}

// NewUserDirectory creates a user directory seeded with the given users.
func NewUserDirectory(seeds []UserSeed) *implUserDirectory {
	d := &implUserDirectory{
		users: make(map[string]model.User, len(seeds)),
		roles: make(map[string][]string, len(seeds)),
		roleCache: expirable.NewLRU[string, []string](
			1000,
			nil,
			time.Minute*5,
		),
	}
	for _, seed := range seeds {
		d.order = append(d.order, seed.User.ID)
		d.users[seed.User.ID] = seed.User
		d.roles[seed.User.ID] = append([]string(nil), seed.Roles...)
	}
	return d
}

func (d *implUserDirectory) ListUsers(ctx context.Context) ([]model.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]model.User, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.users[id])
	}
	return out, nil
}

func (d *implUserDirectory) FindByID(ctx context.Context, id string) (model.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[id]
	if !ok {
		return model.User{}, directory.ErrUserNotFound
	}
	return u, nil
}

func (d *implUserDirectory) Roles(ctx context.Context, userID string) ([]string, error) {
	if roles, ok := d.roleCache.Get(userID); ok {
		return roles, nil
	}

	d.mu.RLock()
	roles, ok := d.roles[userID]
	d.mu.RUnlock()
	if !ok {
		return nil, directory.ErrUserNotFound
	}

	out := append([]string(nil), roles...)
	d.roleCache.Add(userID, out)
	return out, nil
}

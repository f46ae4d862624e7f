package statservice

import (
	"context"
	"sync"
	"time"

	"github.com/bigshare/bigpoints/internal/domain"
)

// snapshot caches the full user listing for a fixed TTL so repeated
// aggregation calls within a short window do not re-scan the users table.
// Expiry is the only invalidation.
type snapshot struct {
	mu        sync.Mutex
	users     []domain.User
	fetched   bool
	fetchedAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

func newSnapshot(ttl time.Duration) *snapshot {
	return &snapshot{
		ttl: ttl,
		now: time.Now,
	}
}

func (s *snapshot) get(ctx context.Context, fetch func(ctx context.Context) ([]domain.User, error)) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fetched && s.now().Sub(s.fetchedAt) < s.ttl {
		return s.users, nil
	}

	users, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	s.users = users
	s.fetched = true
	s.fetchedAt = s.now()
	return users, nil
}

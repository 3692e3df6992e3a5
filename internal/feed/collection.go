package feed

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/hanintown/townboard/internal/models"
	"github.com/hanintown/townboard/pkg/logging"
)

// Lister fetches the full post collection from the store
type Lister interface {
	ListAll(ctx context.Context) ([]models.Post, error)
}

// Collection owns the in-memory post collection. Every fetch is tagged with
// the generation that requested it; applying a result whose generation is no
// longer current is a no-op, so a superseded fetch can never clobber newer
// state.
type Collection struct {
	mu     sync.RWMutex
	posts  []models.Post
	gen    uint64
	lister Lister
	logger *zap.Logger
}

// NewCollection creates a collection backed by the given lister
func NewCollection(lister Lister) *Collection {
	return &Collection{
		lister: lister,
		logger: logging.WithComponent("feed-collection"),
	}
}

// Snapshot returns the current post collection
func (c *Collection) Snapshot() []models.Post {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.posts
}

// Begin starts a new fetch generation, invalidating in-flight fetches
func (c *Collection) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	return c.gen
}

// Apply installs fetched posts in one swap if the generation is still
// current. Returns false for a stale result.
func (c *Collection) Apply(gen uint64, posts []models.Post) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		c.logger.Debug("Discarding stale fetch result",
			zap.Uint64("fetch_gen", gen),
			zap.Uint64("current_gen", c.gen))
		return false
	}
	c.posts = posts
	return true
}

// Refresh fetches the full collection and installs it atomically. A read
// failure leaves the previous collection in place and degrades to the
// existing snapshot.
func (c *Collection) Refresh(ctx context.Context) ([]models.Post, error) {
	gen := c.Begin()
	posts, err := c.lister.ListAll(ctx)
	if err != nil {
		c.logger.Error("Failed to fetch post collection", zap.Error(err))
		return c.Snapshot(), err
	}
	c.Apply(gen, posts)
	return c.Snapshot(), nil
}

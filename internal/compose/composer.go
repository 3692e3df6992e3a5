// Package compose validates and submits new posts.
package compose

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hanintown/townboard/internal/feed"
	"github.com/hanintown/townboard/internal/models"
	"github.com/hanintown/townboard/internal/taxonomy"
	"github.com/hanintown/townboard/pkg/logging"
)

// Minimum trimmed lengths accepted on submit
const (
	MinTitleLen   = 2
	MinContentLen = 5
)

// ValidationError rejects a submission before any store call
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Creator inserts a post row into the store
type Creator interface {
	Create(ctx context.Context, post *models.Post) error
}

// Composer submits posts against a resolved region and refreshes the shared
// collection so readers never see a stale/fresh mix.
type Composer struct {
	store      Creator
	collection *feed.Collection
	logger     *zap.Logger
}

// NewComposer creates a composer over the given store and collection
func NewComposer(store Creator, collection *feed.Collection) *Composer {
	return &Composer{
		store:      store,
		collection: collection,
		logger:     logging.WithComponent("post-composer"),
	}
}

// Submit validates and inserts a new post, then refetches the full post
// collection in one swap. The caller must already be authenticated; a post
// without an author is rejected.
func (c *Composer) Submit(ctx context.Context, title, content string, region taxonomy.Region, userID string) (int64, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if len([]rune(title)) < MinTitleLen {
		return 0, &ValidationError{Field: "title", Reason: fmt.Sprintf("must be at least %d characters", MinTitleLen)}
	}
	if len([]rune(content)) < MinContentLen {
		return 0, &ValidationError{Field: "content", Reason: fmt.Sprintf("must be at least %d characters", MinContentLen)}
	}
	if userID == "" {
		return 0, &ValidationError{Field: "userId", Reason: "sign-in required"}
	}

	post := &models.Post{
		Title:     title,
		Content:   content,
		Region:    region.String(),
		AuthorID:  sql.NullString{String: userID, Valid: true},
		CreatedAt: time.Now().UTC(),
	}
	if err := c.store.Create(ctx, post); err != nil {
		c.logger.Error("Post insert failed",
			zap.String("region", post.Region), zap.Error(err))
		return 0, err
	}

	c.logger.Info("Post created",
		zap.Int64("post_id", post.ID),
		zap.String("region", post.Region))

	// Refresh failure keeps the previous collection; the insert already
	// succeeded, so the post ID is still returned.
	if _, err := c.collection.Refresh(ctx); err != nil {
		c.logger.Warn("Post collection refresh failed after insert", zap.Error(err))
	}

	return post.ID, nil
}

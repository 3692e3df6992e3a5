// Package counters aggregates per-post view/like/comment counts.
package counters

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hanintown/townboard/internal/cache"
	"github.com/hanintown/townboard/internal/models"
	"github.com/hanintown/townboard/pkg/logging"
)

// Repo provides the individual counter lookups
type Repo interface {
	ViewCount(ctx context.Context, postID int64) (int64, error)
	LikeCount(ctx context.Context, postID int64) (int64, error)
	CommentCount(ctx context.Context, postID int64) (int64, error)
}

// Service fans the three counter lookups out in parallel and joins before
// returning. Counts are cached briefly in redis when available.
type Service struct {
	repo   Repo
	cache  *cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewService creates a counter service. cache may be nil.
func NewService(repo Repo, redisCache *cache.Cache, ttl time.Duration) *Service {
	return &Service{
		repo:   repo,
		cache:  redisCache,
		ttl:    ttl,
		logger: logging.WithComponent("counters"),
	}
}

// Counts returns the post's counters. Individual lookup failures are logged
// and degrade to zero so the read path never fails outright.
func (s *Service) Counts(ctx context.Context, postID int64) models.PostCounters {
	key := fmt.Sprintf("counters:%d", postID)
	if cached, err := s.cache.Get(key); err == nil {
		var counts models.PostCounters
		if err := json.Unmarshal([]byte(cached), &counts); err == nil {
			return counts
		}
	}

	counts := models.PostCounters{PostID: postID}

	var wg sync.WaitGroup
	fetch := func(name string, dst *int64, fn func(context.Context, int64) (int64, error)) {
		defer wg.Done()
		n, err := fn(ctx, postID)
		if err != nil {
			s.logger.Warn("Counter lookup failed",
				zap.String("counter", name),
				zap.Int64("post_id", postID),
				zap.Error(err))
			return
		}
		*dst = n
	}

	wg.Add(3)
	go fetch("views", &counts.Views, s.repo.ViewCount)
	go fetch("likes", &counts.Likes, s.repo.LikeCount)
	go fetch("comments", &counts.Comments, s.repo.CommentCount)
	wg.Wait()

	if payload, err := json.Marshal(counts); err == nil {
		if err := s.cache.Set(key, payload, s.ttl); err != nil && err != cache.ErrCacheDisabled {
			s.logger.Debug("Counter cache write failed", zap.Error(err))
		}
	}

	return counts
}

package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanintown/townboard/internal/cache"
	"github.com/hanintown/townboard/internal/compose"
	"github.com/hanintown/townboard/internal/counters"
	"github.com/hanintown/townboard/internal/db"
	"github.com/hanintown/townboard/internal/feed"
	"github.com/hanintown/townboard/internal/profile"
	"github.com/hanintown/townboard/internal/taxonomy"
	"github.com/hanintown/townboard/pkg/config"
	"github.com/hanintown/townboard/pkg/logging"
)

// Router sets up API routes
type Router struct {
	table      *taxonomy.Table
	collection *feed.Collection
	composer   *compose.Composer
	resolver   *profile.Resolver
	counters   *counters.Service
	posts      *db.PostRepository
	cards      *db.CardRepository
	pageSize   int
	logger     *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(database *db.DB, redisCache *cache.Cache, table *taxonomy.Table, cfg *config.BoardConfig) *Router {
	repo := db.NewRepository(database.DB)
	postRepo := db.NewPostRepository(repo)
	collection := feed.NewCollection(postRepo)

	return &Router{
		table:      table,
		collection: collection,
		composer:   compose.NewComposer(postRepo, collection),
		resolver:   profile.NewResolver(db.NewProfileRepository(repo)),
		counters:   counters.NewService(db.NewCounterRepository(repo), redisCache, time.Duration(cfg.CounterTTLSec)*time.Second),
		posts:      postRepo,
		cards:      db.NewCardRepository(repo),
		pageSize:   cfg.PageSize,
		logger:     logging.GetLogger().With(zap.String("component", "api-router")),
	}
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check endpoints
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	api := engine.Group("/api")
	{
		api.GET("/feed", r.getFeed)
		api.GET("/boards", r.getBoards)
		api.POST("/posts", r.submitPost)
		api.GET("/posts/:id/counters", r.getPostCounters)
		api.GET("/cards", r.getCards)
		api.GET("/profile/:userId", r.getProfile)
		api.PUT("/profile/:userId", r.saveProfile)
		api.GET("/profile/:userId/posts", r.getProfilePosts)
		api.GET("/profile/:userId/likes", r.getProfileLikes)
	}
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "OK",
		"service": "townboard-api",
	})
}

package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanintown/townboard/internal/feed"
	"github.com/hanintown/townboard/internal/models"
	"github.com/hanintown/townboard/internal/navigation"
	"github.com/hanintown/townboard/pkg/telemetry"
)

// feedResponse is the paginated feed view plus the navigation state that
// produced it. Query is the canonical serialized form of the selection so
// clients can push it into the address bar.
type feedResponse struct {
	feed.Page
	State navigation.State `json:"state"`
	Query string           `json:"query"`
}

// getFeed handles GET /api/feed?category=&tab=&page=
func (r *Router) getFeed(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "api.get_feed")
	defer span.End()

	state := navigation.FromQuery(c.Request.URL.Query())
	if raw := c.Query("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			state.SetPage(page)
		}
	}

	// A read failure degrades to whatever collection is already in memory
	// rather than failing the view.
	posts, err := r.collection.Refresh(ctx)
	if err != nil {
		r.logger.Warn("Feed fetch degraded to cached collection", zap.Error(err))
	}
	if posts == nil {
		posts = []models.Post{}
	}

	page := feed.Build(r.table, posts, state, r.pageSize)

	c.JSON(http.StatusOK, feedResponse{
		Page:  page,
		State: state,
		Query: state.Query().Encode(),
	})
}

// getBoards handles GET /api/boards
func (r *Router) getBoards(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories":   r.table.Categories(),
		"extra_boards": r.table.ExtraBoards(),
	})
}

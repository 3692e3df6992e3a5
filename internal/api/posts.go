package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanintown/townboard/internal/compose"
	"github.com/hanintown/townboard/pkg/telemetry"
)

// submitPostRequest is the post composer payload. Region arrives in its
// canonical string form (the write screen's path segment) and is decoded
// through the taxonomy codec.
type submitPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Region  string `json:"region" binding:"required"`
	UserID  string `json:"user_id"`
}

// submitPost handles POST /api/posts
func (r *Router) submitPost(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "api.submit_post")
	defer span.End()

	var req submitPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewError(CodeInvalidRequest, "invalid request body"))
		return
	}

	region := r.table.Decode(req.Region)
	postID, err := r.composer.Submit(ctx, req.Title, req.Content, region, req.UserID)
	if err != nil {
		var verr *compose.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, NewError(CodeInvalidRequest, verr.Error()))
			return
		}
		r.logger.Error("Post submit failed", zap.String("region", req.Region), zap.Error(err))
		c.JSON(http.StatusBadGateway, NewError(CodeStoreFailure, "failed to save post"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post_id": postID})
}

// getPostCounters handles GET /api/posts/:id/counters
func (r *Router) getPostCounters(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "api.get_post_counters")
	defer span.End()

	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, NewError(CodeInvalidRequest, "invalid post id"))
		return
	}

	post, err := r.posts.GetByID(ctx, postID)
	if err != nil {
		r.logger.Warn("Post lookup failed", zap.Int64("post_id", postID), zap.Error(err))
	}
	if post == nil {
		c.JSON(http.StatusNotFound, NewError(CodeNotFound, "post not found"))
		return
	}

	c.JSON(http.StatusOK, r.counters.Counts(ctx, postID))
}

package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanintown/townboard/internal/models"
	"github.com/hanintown/townboard/internal/profile"
	"github.com/hanintown/townboard/pkg/telemetry"
)

// getProfile handles GET /api/profile/:userId. The authenticated email and
// account creation time come from the auth layer in front of this service
// and seed the synthesized default when neither table has a row.
func (r *Router) getProfile(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "api.get_profile")
	defer span.End()

	id := profile.Identity{
		UserID: c.Param("userId"),
		Email:  c.GetHeader("X-User-Email"),
	}
	if raw := c.GetHeader("X-User-Created-At"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			id.CreatedAt = t
		}
	}

	c.JSON(http.StatusOK, r.resolver.Resolve(ctx, id))
}

// saveProfileRequest carries the editable profile fields
type saveProfileRequest struct {
	Nickname     string `json:"nickname"`
	Email        string `json:"email" binding:"required"`
	Region       string `json:"region"`
	Age          *int64 `json:"age"`
	ProfileImage string `json:"profile_image"`
	JoinedAt     string `json:"joined_at"`
}

// saveProfile handles PUT /api/profile/:userId
func (r *Router) saveProfile(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "api.save_profile")
	defer span.End()

	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, NewError(CodeInvalidRequest, "missing user id"))
		return
	}

	var req saveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewError(CodeInvalidRequest, "invalid request body"))
		return
	}

	info := &models.UserInfo{
		UserID:   userID,
		Nickname: req.Nickname,
		Email:    req.Email,
		Region:   req.Region,
		JoinedAt: time.Now().UTC(),
	}
	if req.Age != nil {
		info.Age = sql.NullInt64{Int64: *req.Age, Valid: true}
	}
	if req.ProfileImage != "" {
		info.ProfileImage = sql.NullString{String: req.ProfileImage, Valid: true}
	}
	if req.JoinedAt != "" {
		if t, err := time.Parse(time.RFC3339, req.JoinedAt); err == nil {
			info.JoinedAt = t
		}
	}

	if err := r.resolver.Save(ctx, info); err != nil {
		r.logger.Error("Profile save failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusBadGateway, NewError(CodeStoreFailure, err.Error()))
		return
	}

	c.JSON(http.StatusOK, info)
}

// getProfilePosts handles GET /api/profile/:userId/posts
func (r *Router) getProfilePosts(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "api.get_profile_posts")
	defer span.End()

	posts, err := r.posts.ListByAuthor(ctx, c.Param("userId"))
	if err != nil {
		r.logger.Warn("My-posts lookup failed", zap.Error(err))
		posts = []models.Post{}
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// getProfileLikes handles GET /api/profile/:userId/likes
func (r *Router) getProfileLikes(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "api.get_profile_likes")
	defer span.End()

	posts, err := r.posts.ListLikedBy(ctx, c.Param("userId"))
	if err != nil {
		r.logger.Warn("Liked-posts lookup failed", zap.Error(err))
		posts = []models.Post{}
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

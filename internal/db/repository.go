package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hanintown/townboard/internal/models"
)

// Repository provides database access methods
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// PostRepository provides post-related database operations
type PostRepository struct {
	*Repository
}

// NewPostRepository creates a new post repository
func NewPostRepository(repo *Repository) *PostRepository {
	return &PostRepository{Repository: repo}
}

// ListAll retrieves the full post collection, newest first
func (r *PostRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// ListByAuthor retrieves posts written by a user, newest first
func (r *PostRepository) ListByAuthor(ctx context.Context, userID string) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListLikedBy retrieves posts a user has liked, newest first
func (r *PostRepository) ListLikedBy(ctx context.Context, userID string) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Joins("INNER JOIN post_likes ON post_likes.post_id = posts.id").
		Where("post_likes.user_id = ?", userID).
		Order("posts.created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Create creates a new post
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// CardRepository provides business card database operations
type CardRepository struct {
	*Repository
}

// NewCardRepository creates a new card repository
func NewCardRepository(repo *Repository) *CardRepository {
	return &CardRepository{Repository: repo}
}

// ListAll retrieves all business cards
func (r *CardRepository) ListAll(ctx context.Context) ([]models.BusinessCard, error) {
	var cards []models.BusinessCard
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// ListByRegions retrieves business cards whose region is in the given set
func (r *CardRepository) ListByRegions(ctx context.Context, regions []string) ([]models.BusinessCard, error) {
	var cards []models.BusinessCard
	if err := r.db.WithContext(ctx).
		Where("region IN ?", regions).
		Order("created_at DESC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// ProfileRepository provides access to the two physical profile tables.
// Callers outside the profile resolver must not use it directly.
type ProfileRepository struct {
	*Repository
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(repo *Repository) *ProfileRepository {
	return &ProfileRepository{Repository: repo}
}

// GetLower retrieves a profile from the lowercase-named table
func (r *ProfileRepository) GetLower(ctx context.Context, userID string) (*models.UserInfo, error) {
	var info models.UserInfo
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

// GetCased retrieves a profile from the alternately-cased table
func (r *ProfileRepository) GetCased(ctx context.Context, userID string) (*models.UserInfo, error) {
	var info models.CasedUserInfo
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	out := models.UserInfo(info)
	return &out, nil
}

// UpsertLower writes a profile into the lowercase-named table
func (r *ProfileRepository) UpsertLower(ctx context.Context, info *models.UserInfo) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(info).Error
}

// UpsertCased writes a profile into the alternately-cased table
func (r *ProfileRepository) UpsertCased(ctx context.Context, info *models.UserInfo) error {
	cased := models.CasedUserInfo(*info)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&cased).Error
}

// CounterRepository aggregates per-post counters
type CounterRepository struct {
	*Repository
}

// NewCounterRepository creates a new counter repository
func NewCounterRepository(repo *Repository) *CounterRepository {
	return &CounterRepository{Repository: repo}
}

// ViewCount returns the number of recorded views for a post
func (r *CounterRepository) ViewCount(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PostView{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// LikeCount returns the number of likes for a post
func (r *CounterRepository) LikeCount(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PostLike{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// CommentCount returns the number of comments for a post
func (r *CounterRepository) CommentCount(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PostComment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

package models

import (
	"database/sql"
	"time"
)

// Post represents a board post
type Post struct {
	ID        int64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Title     string         `gorm:"type:varchar(255);not null;column:title" json:"title"`
	Content   string         `gorm:"type:text;column:content" json:"content"`
	Region    string         `gorm:"type:varchar(64);not null;index:posts_region_idx;column:region" json:"region"`
	AuthorID  sql.NullString `gorm:"type:varchar(64);column:author_id" json:"author_id"`
	CreatedAt time.Time      `gorm:"not null;column:created_at" json:"created_at"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}

// PostCounters carries the lazily aggregated per-post counters
type PostCounters struct {
	PostID   int64 `json:"post_id"`
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
}

// PostLike records a like by a user on a post
type PostLike struct {
	PostID    int64     `gorm:"primaryKey;column:post_id"`
	UserID    string    `gorm:"type:varchar(64);primaryKey;column:user_id"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`
}

// TableName specifies the table name for PostLike
func (PostLike) TableName() string {
	return "post_likes"
}

// PostComment records a comment on a post
type PostComment struct {
	ID        int64          `gorm:"primaryKey;autoIncrement;column:id"`
	PostID    int64          `gorm:"not null;index;column:post_id"`
	UserID    sql.NullString `gorm:"type:varchar(64);column:user_id"`
	Content   string         `gorm:"type:text;not null;column:content"`
	CreatedAt time.Time      `gorm:"not null;column:created_at"`
}

// TableName specifies the table name for PostComment
func (PostComment) TableName() string {
	return "post_comments"
}

// PostView records a single view of a post
type PostView struct {
	ID       int64     `gorm:"primaryKey;autoIncrement;column:id"`
	PostID   int64     `gorm:"not null;index;column:post_id"`
	ViewedAt time.Time `gorm:"not null;column:viewed_at"`
}

// TableName specifies the table name for PostView
func (PostView) TableName() string {
	return "post_views"
}

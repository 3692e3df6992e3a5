package models

import (
	"database/sql"
	"time"
)

// UserInfo represents a user profile row in the lowercase-named table.
// A logical profile lives in exactly one of two physical tables that differ
// only in name casing, a leftover of a schema migration; the profile resolver
// hides the split from every caller.
type UserInfo struct {
	UserID       string         `gorm:"type:varchar(64);primaryKey;column:user_id" json:"user_id"`
	Nickname     string         `gorm:"type:varchar(64);not null;default:'';column:nickname" json:"nickname"`
	Username     sql.NullString `gorm:"type:varchar(64);column:username" json:"username"`
	Email        string         `gorm:"type:varchar(255);not null;column:email" json:"email"`
	Region       string         `gorm:"type:varchar(64);not null;default:'';column:region" json:"region"`
	Age          sql.NullInt64  `gorm:"column:age" json:"age"`
	ProfileImage sql.NullString `gorm:"type:varchar(1024);column:profile_image" json:"profile_image"`
	JoinedAt     time.Time      `gorm:"not null;column:joined_at" json:"joined_at"`
}

// TableName specifies the table name for UserInfo
func (UserInfo) TableName() string {
	return "userinfo"
}

// CasedUserInfo is the same profile row in the alternately-cased table.
// Quoted so Postgres preserves the case.
type CasedUserInfo UserInfo

// TableName specifies the table name for CasedUserInfo
func (CasedUserInfo) TableName() string {
	return `"UserInfo"`
}

package models

import (
	"database/sql"
	"time"
)

// BusinessCard represents a promotional business listing.
// Cards are read-only here; their lifecycle is managed by the admin tooling.
type BusinessCard struct {
	ID        int64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name      string         `gorm:"type:varchar(128);not null;column:name" json:"name"`
	Region    string         `gorm:"type:varchar(64);not null;index;column:region" json:"region"`
	ImageURL  sql.NullString `gorm:"type:varchar(1024);column:image_url" json:"image_url"`
	LinkURL   sql.NullString `gorm:"type:varchar(1024);column:link_url" json:"link_url"`
	CreatedAt time.Time      `gorm:"not null;column:created_at" json:"created_at"`
}

// TableName specifies the table name for BusinessCard
func (BusinessCard) TableName() string {
	return "business_cards"
}

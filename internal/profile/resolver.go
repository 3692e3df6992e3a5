// Package profile presents one logical profile record per user regardless of
// which of the two case-split physical tables holds it.
package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hanintown/townboard/internal/models"
	"github.com/hanintown/townboard/pkg/logging"
)

// Store is the dual-table profile storage. GetLower/GetCased return
// (nil, nil) when no row matches.
type Store interface {
	GetLower(ctx context.Context, userID string) (*models.UserInfo, error)
	GetCased(ctx context.Context, userID string) (*models.UserInfo, error)
	UpsertLower(ctx context.Context, info *models.UserInfo) error
	UpsertCased(ctx context.Context, info *models.UserInfo) error
}

// Identity carries the authenticated account facts used to synthesize a
// default profile when neither table has a row.
type Identity struct {
	UserID    string
	Email     string
	CreatedAt time.Time
}

// Resolver reconciles profile reads and writes across the two tables.
// Reads probe both tables unconditionally; writes try the lowercase table
// first and the cased table only after the first fails. Either table may be
// authoritative for a given account, so neither order may be simplified.
type Resolver struct {
	store  Store
	logger *zap.Logger
}

// NewResolver creates a resolver over the given store
func NewResolver(store Store) *Resolver {
	return &Resolver{
		store:  store,
		logger: logging.WithComponent("profile-resolver"),
	}
}

// Resolve returns the user's logical profile. A lookup miss in both tables
// is not an error: a default profile is synthesized in memory and not
// persisted until the user saves. Transport failures on either table are
// logged and treated as misses.
func (r *Resolver) Resolve(ctx context.Context, id Identity) *models.UserInfo {
	info, err := r.store.GetLower(ctx, id.UserID)
	if err != nil {
		r.logger.Warn("Lowercase profile lookup failed",
			zap.String("user_id", id.UserID), zap.Error(err))
	}
	if info == nil {
		info, err = r.store.GetCased(ctx, id.UserID)
		if err != nil {
			r.logger.Warn("Cased profile lookup failed",
				zap.String("user_id", id.UserID), zap.Error(err))
		}
	}
	if info == nil {
		return r.synthesize(id)
	}

	if strings.TrimSpace(info.Nickname) == "" {
		if info.Username.Valid && strings.TrimSpace(info.Username.String) != "" {
			info.Nickname = info.Username.String
		} else {
			info.Nickname = emailLocalPart(firstNonEmpty(info.Email, id.Email))
		}
	}
	return info
}

// Save upserts the profile: lowercase table first, cased table only when the
// first attempt fails. Only a double failure surfaces an error, carrying
// both causes.
func (r *Resolver) Save(ctx context.Context, info *models.UserInfo) error {
	lowerErr := r.store.UpsertLower(ctx, info)
	if lowerErr == nil {
		return nil
	}
	r.logger.Warn("Lowercase profile upsert failed, retrying cased table",
		zap.String("user_id", info.UserID), zap.Error(lowerErr))

	if casedErr := r.store.UpsertCased(ctx, info); casedErr != nil {
		return fmt.Errorf("profile save failed on both tables: userinfo: %v; UserInfo: %w", lowerErr, casedErr)
	}
	return nil
}

func (r *Resolver) synthesize(id Identity) *models.UserInfo {
	return &models.UserInfo{
		UserID:   id.UserID,
		Nickname: emailLocalPart(id.Email),
		Email:    id.Email,
		JoinedAt: id.CreatedAt,
	}
}

func emailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

package profile

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hanintown/townboard/internal/models"
)

type fakeStore struct {
	lower       *models.UserInfo
	cased       *models.UserInfo
	lowerGetErr error
	casedGetErr error
	lowerPutErr error
	casedPutErr error

	lowerGets, casedGets int
	lowerPuts, casedPuts int
}

func (f *fakeStore) GetLower(ctx context.Context, userID string) (*models.UserInfo, error) {
	f.lowerGets++
	return f.lower, f.lowerGetErr
}

func (f *fakeStore) GetCased(ctx context.Context, userID string) (*models.UserInfo, error) {
	f.casedGets++
	return f.cased, f.casedGetErr
}

func (f *fakeStore) UpsertLower(ctx context.Context, info *models.UserInfo) error {
	f.lowerPuts++
	return f.lowerPutErr
}

func (f *fakeStore) UpsertCased(ctx context.Context, info *models.UserInfo) error {
	f.casedPuts++
	return f.casedPutErr
}

func testIdentity() Identity {
	return Identity{
		UserID:    "u-1001",
		Email:     "minsu.kim@example.com",
		CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestResolveLowercaseTableWins(t *testing.T) {
	store := &fakeStore{
		lower: &models.UserInfo{UserID: "u-1001", Nickname: "민수", Email: "minsu.kim@example.com"},
		cased: &models.UserInfo{UserID: "u-1001", Nickname: "other"},
	}
	r := NewResolver(store)

	got := r.Resolve(context.Background(), testIdentity())
	if got.Nickname != "민수" {
		t.Errorf("Resolve() nickname = %q, want lowercase table's record", got.Nickname)
	}
	if store.casedGets != 0 {
		t.Errorf("cased table queried %d times after a lowercase hit, want 0", store.casedGets)
	}
}

func TestResolveFallsBackToCasedTable(t *testing.T) {
	tests := []struct {
		name        string
		lowerGetErr error
	}{
		{"lowercase miss", nil},
		{"lowercase transport failure", errors.New("dial tcp: connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{
				lowerGetErr: tt.lowerGetErr,
				cased:       &models.UserInfo{UserID: "u-1001", Nickname: "민수", Email: "minsu.kim@example.com"},
			}
			r := NewResolver(store)

			got := r.Resolve(context.Background(), testIdentity())
			if got.Nickname != "민수" {
				t.Errorf("Resolve() = %+v, want the cased table's record, not a default", got)
			}
			if store.lowerGets != 1 || store.casedGets != 1 {
				t.Errorf("lookups = (%d, %d), want both tables probed once", store.lowerGets, store.casedGets)
			}
		})
	}
}

func TestResolveSynthesizesDefault(t *testing.T) {
	store := &fakeStore{}
	r := NewResolver(store)
	id := testIdentity()

	got := r.Resolve(context.Background(), id)
	if got.Nickname != "minsu.kim" {
		t.Errorf("synthesized nickname = %q, want email local part", got.Nickname)
	}
	if got.Email != id.Email {
		t.Errorf("synthesized email = %q, want %q", got.Email, id.Email)
	}
	if !got.JoinedAt.Equal(id.CreatedAt) {
		t.Errorf("synthesized join date = %v, want account creation time", got.JoinedAt)
	}
	if store.lowerPuts != 0 || store.casedPuts != 0 {
		t.Error("synthesized profile was persisted, must wait for explicit save")
	}
}

func TestResolveNicknamePrecedence(t *testing.T) {
	tests := []struct {
		name string
		row  models.UserInfo
		want string
	}{
		{
			name: "nickname kept when set",
			row:  models.UserInfo{Nickname: "민수", Username: sql.NullString{String: "mskim", Valid: true}},
			want: "민수",
		},
		{
			name: "username fills empty nickname",
			row:  models.UserInfo{Username: sql.NullString{String: "mskim", Valid: true}},
			want: "mskim",
		},
		{
			name: "email local part is the last resort",
			row:  models.UserInfo{Email: "minsu.kim@example.com"},
			want: "minsu.kim",
		},
		{
			name: "blank nickname treated as empty",
			row:  models.UserInfo{Nickname: "   ", Email: "minsu.kim@example.com"},
			want: "minsu.kim",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := tt.row
			store := &fakeStore{lower: &row}
			r := NewResolver(store)

			got := r.Resolve(context.Background(), testIdentity())
			if got.Nickname != tt.want {
				t.Errorf("Resolve() nickname = %q, want %q", got.Nickname, tt.want)
			}
		})
	}
}

func TestSaveLowercaseFirst(t *testing.T) {
	store := &fakeStore{}
	r := NewResolver(store)

	if err := r.Save(context.Background(), &models.UserInfo{UserID: "u-1001"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if store.lowerPuts != 1 || store.casedPuts != 0 {
		t.Errorf("upserts = (%d, %d), want lowercase only on success", store.lowerPuts, store.casedPuts)
	}
}

func TestSaveFallsBackOnFailure(t *testing.T) {
	store := &fakeStore{lowerPutErr: errors.New("relation \"userinfo\" does not exist")}
	r := NewResolver(store)

	if err := r.Save(context.Background(), &models.UserInfo{UserID: "u-1001"}); err != nil {
		t.Fatalf("Save() error = %v, want fallback success with no surfaced error", err)
	}
	if store.lowerPuts != 1 || store.casedPuts != 1 {
		t.Errorf("upserts = (%d, %d), want cased table tried after failure", store.lowerPuts, store.casedPuts)
	}
}

func TestSaveDoubleFailure(t *testing.T) {
	store := &fakeStore{
		lowerPutErr: errors.New("lower boom"),
		casedPutErr: errors.New("cased boom"),
	}
	r := NewResolver(store)

	err := r.Save(context.Background(), &models.UserInfo{UserID: "u-1001"})
	if err == nil {
		t.Fatal("Save() error = nil, want double failure surfaced")
	}
	if !strings.Contains(err.Error(), "lower boom") || !strings.Contains(err.Error(), "cased boom") {
		t.Errorf("Save() error = %q, want both failure contexts", err.Error())
	}
}

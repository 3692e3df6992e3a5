package feed

import (
	"fmt"
	"testing"
	"time"

	"github.com/hanintown/townboard/internal/models"
	"github.com/hanintown/townboard/internal/navigation"
	"github.com/hanintown/townboard/internal/taxonomy"
)

func regionPosts(regions ...string) []models.Post {
	posts := make([]models.Post, len(regions))
	for i, region := range regions {
		posts[i] = models.Post{
			ID:        int64(i + 1),
			Title:     fmt.Sprintf("post %d", i+1),
			Region:    region,
			CreatedAt: time.Date(2026, 8, 1, 0, 0, int(i), 0, time.UTC),
		}
	}
	return posts
}

func TestFilter(t *testing.T) {
	table := taxonomy.Default()
	posts := regionPosts("업체추천-간판", "업체추천-전기설비", "커뮤니티-유머게시판")

	tests := []struct {
		name    string
		state   navigation.State
		wantIDs []int64
	}{
		{
			name:    "no selection passes everything",
			state:   navigation.State{Mode: navigation.ModeMain, Page: 1},
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "main only is an umbrella over its subs",
			state:   navigation.State{Mode: navigation.ModeCategory, Main: "업체추천", Page: 1},
			wantIDs: []int64{1, 2},
		},
		{
			name:    "main and sub match exactly",
			state:   navigation.State{Mode: navigation.ModeCategory, Main: "업체추천", Sub: "간판", Page: 1},
			wantIDs: []int64{1},
		},
		{
			name:    "unmatched sub yields nothing",
			state:   navigation.State{Mode: navigation.ModeCategory, Main: "커뮤니티", Sub: "자유게시판", Page: 1},
			wantIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(table, posts, tt.state)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Filter() returned %d posts, want %d", len(got), len(tt.wantIDs))
			}
			for i, p := range got {
				if p.ID != tt.wantIDs[i] {
					t.Errorf("Filter()[%d].ID = %d, want %d", i, p.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestFilterExtraBoard(t *testing.T) {
	table := taxonomy.Default()
	posts := regionPosts("공지사항", "업체추천-간판", "중고장터")

	state := navigation.State{Mode: navigation.ModeCategory, Main: "공지사항", Page: 1}
	got := Filter(table, posts, state)
	if len(got) != 1 || got[0].Region != "공지사항" {
		t.Errorf("Filter(extra board) = %v, want exactly the board's posts", got)
	}

	// A stray tab selection on an extra board must not change the result
	state.Sub = "간판"
	got = Filter(table, posts, state)
	if len(got) != 1 || got[0].Region != "공지사항" {
		t.Errorf("Filter(extra board with tab) = %v, want exact region match", got)
	}
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	posts := []models.Post{
		{ID: 1, CreatedAt: base},
		{ID: 2, CreatedAt: base.Add(time.Hour)},
		{ID: 3},                                 // zero timestamp sorts oldest
		{ID: 4, CreatedAt: base.Add(time.Hour)}, // tie with 2, stays after it
	}

	sorted := SortNewestFirst(posts)
	wantOrder := []int64{2, 4, 1, 3}
	for i, p := range sorted {
		if p.ID != wantOrder[i] {
			t.Errorf("SortNewestFirst()[%d].ID = %d, want %d", i, p.ID, wantOrder[i])
		}
	}

	// Input order must be untouched
	if posts[0].ID != 1 {
		t.Error("SortNewestFirst() mutated its input")
	}
}

func TestSortStability(t *testing.T) {
	same := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	posts := []models.Post{
		{ID: 10, CreatedAt: same},
		{ID: 20, CreatedAt: same},
		{ID: 30, CreatedAt: same},
	}

	sorted := SortNewestFirst(posts)
	for i, want := range []int64{10, 20, 30} {
		if sorted[i].ID != want {
			t.Errorf("equal timestamps reordered: got ID %d at %d, want %d", sorted[i].ID, i, want)
		}
	}
}

func TestPaginate(t *testing.T) {
	posts := make([]models.Post, 20)
	for i := range posts {
		posts[i] = models.Post{ID: int64(i + 1)}
	}

	tests := []struct {
		name           string
		page           int
		wantLen        int
		wantTotalPages int
	}{
		{"first page full", 1, 18, 2},
		{"second page remainder", 2, 2, 2},
		{"page past the end is empty", 3, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(posts, tt.page, 18)
			if len(page.Posts) != tt.wantLen {
				t.Errorf("Paginate(page=%d) returned %d posts, want %d", tt.page, len(page.Posts), tt.wantLen)
			}
			if page.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", page.TotalPages, tt.wantTotalPages)
			}
			if page.Total != 20 {
				t.Errorf("Total = %d, want 20", page.Total)
			}
		})
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	page := Paginate(nil, 1, 18)
	if page.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0 for an empty collection", page.TotalPages)
	}
	if len(page.Posts) != 0 {
		t.Errorf("Posts = %v, want empty", page.Posts)
	}
}

func TestPaginateSecondPageContents(t *testing.T) {
	posts := make([]models.Post, 20)
	for i := range posts {
		posts[i] = models.Post{ID: int64(i + 1)}
	}

	page := Paginate(posts, 2, 18)
	if page.Posts[0].ID != 19 || page.Posts[1].ID != 20 {
		t.Errorf("page 2 = %v, want posts 19 and 20", page.Posts)
	}
}

func TestBuild(t *testing.T) {
	table := taxonomy.Default()
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	posts := []models.Post{
		{ID: 1, Region: "업체추천-간판", CreatedAt: base},
		{ID: 2, Region: "업체추천-간판", CreatedAt: base.Add(time.Hour)},
		{ID: 3, Region: "커뮤니티-자유게시판", CreatedAt: base.Add(2 * time.Hour)},
	}

	state := navigation.State{Mode: navigation.ModeCategory, Main: "업체추천", Sub: "간판", Page: 1}
	page := Build(table, posts, state, 18)

	if len(page.Posts) != 2 {
		t.Fatalf("Build() returned %d posts, want 2", len(page.Posts))
	}
	if page.Posts[0].ID != 2 || page.Posts[1].ID != 1 {
		t.Errorf("Build() order = [%d %d], want newest first [2 1]", page.Posts[0].ID, page.Posts[1].ID)
	}
}

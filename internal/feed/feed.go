// Package feed filters, sorts and paginates the post collection against the
// current navigation selection.
package feed

import (
	"sort"

	"github.com/hanintown/townboard/internal/models"
	"github.com/hanintown/townboard/internal/navigation"
	"github.com/hanintown/townboard/internal/taxonomy"
)

// DefaultPageSize is the fixed number of posts per page
const DefaultPageSize = 18

// Page is one paginated view of the filtered collection
type Page struct {
	Posts      []models.Post `json:"posts"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Total      int           `json:"total"`
}

// Filter selects the posts visible under the current navigation state.
// No selection passes everything through; a main category without a sub tab
// is an umbrella over all of its sub categories; a full selection (or an
// extra board) matches by exact region.
func Filter(t *taxonomy.Table, posts []models.Post, st navigation.State) []models.Post {
	if !st.HasSelection() {
		return posts
	}

	region := st.Region(t)
	out := make([]models.Post, 0, len(posts))

	if region.Extra || st.Sub != "" {
		exact := region.String()
		for _, p := range posts {
			if p.Region == exact {
				out = append(out, p)
			}
		}
		return out
	}

	for _, p := range posts {
		if t.Decode(p.Region).Main == st.Main {
			out = append(out, p)
		}
	}
	return out
}

// SortNewestFirst orders posts by creation time, newest first. Posts with a
// zero timestamp sink to the end; equal timestamps keep their relative order.
func SortNewestFirst(posts []models.Post) []models.Post {
	out := append([]models.Post(nil), posts...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Paginate slices a filtered, sorted collection into the requested page.
// Pages are 1-indexed; a page past the end yields an empty page, and an
// empty collection yields zero total pages so the caller can render a
// distinct "no posts" state.
func Paginate(posts []models.Post, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(posts)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	if start >= total {
		return Page{Posts: []models.Post{}, Page: page, TotalPages: totalPages, Total: total}
	}
	end := start + size
	if end > total {
		end = total
	}
	return Page{Posts: posts[start:end], Page: page, TotalPages: totalPages, Total: total}
}

// Build runs the full read path: filter, sort, paginate
func Build(t *taxonomy.Table, posts []models.Post, st navigation.State, size int) Page {
	return Paginate(SortNewestFirst(Filter(t, posts, st)), st.Page, size)
}

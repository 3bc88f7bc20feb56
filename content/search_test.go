package content

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brothersphoto/site-backend/models"
)

func post(title, excerpt, content, category string, tags ...string) *models.BlogPost {
	return &models.BlogPost{
		Title:    title,
		Excerpt:  excerpt,
		Content:  content,
		Category: category,
		Tags:     tags,
	}
}

func TestFilterPosts(t *testing.T) {
	posts := []*models.BlogPost{
		post("Golden Hour Portraits", "Soft light", "Shooting at dusk", "portraits", "light", "outdoor"),
		post("Wedding Day Checklist", "Plan ahead", "Everything you need", "weddings", "planning"),
		post("Studio Lighting Basics", "Gear guide", "Strobes and softboxes", "tutorials", "light", "studio"),
	}

	tests := []struct {
		name       string
		filter     Filter
		wantTitles []string
	}{
		{
			name:       "no filter returns everything",
			filter:     Filter{},
			wantTitles: []string{"Golden Hour Portraits", "Wedding Day Checklist", "Studio Lighting Basics"},
		},
		{
			name:       "query matches title case-insensitively",
			filter:     Filter{Query: "GOLDEN"},
			wantTitles: []string{"Golden Hour Portraits"},
		},
		{
			name:       "query matches excerpt",
			filter:     Filter{Query: "plan ahead"},
			wantTitles: []string{"Wedding Day Checklist"},
		},
		{
			name:       "query matches content",
			filter:     Filter{Query: "softboxes"},
			wantTitles: []string{"Studio Lighting Basics"},
		},
		{
			name:       "query matches tags",
			filter:     Filter{Query: "studio"},
			wantTitles: []string{"Studio Lighting Basics"},
		},
		{
			name:       "whitespace-only query is no filter",
			filter:     Filter{Query: "   "},
			wantTitles: []string{"Golden Hour Portraits", "Wedding Day Checklist", "Studio Lighting Basics"},
		},
		{
			name:       "category filter",
			filter:     Filter{Category: "weddings"},
			wantTitles: []string{"Wedding Day Checklist"},
		},
		{
			name:       "tag filter matches any listed tag",
			filter:     Filter{Tags: []string{"light"}},
			wantTitles: []string{"Golden Hour Portraits", "Studio Lighting Basics"},
		},
		{
			name:       "category and tag filters intersect",
			filter:     Filter{Category: "tutorials", Tags: []string{"light"}},
			wantTitles: []string{"Studio Lighting Basics"},
		},
		{
			name:       "query and category intersect to nothing",
			filter:     Filter{Query: "golden", Category: "weddings"},
			wantTitles: []string{},
		},
		{
			name:       "unknown tag matches nothing",
			filter:     Filter{Tags: []string{"drone"}},
			wantTitles: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPosts(posts, tt.filter)
			titles := make([]string, 0, len(got))
			for _, p := range got {
				titles = append(titles, p.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestPaginate(t *testing.T) {
	posts := make([]*models.BlogPost, 23)
	for i := range posts {
		posts[i] = post(fmt.Sprintf("Post %d", i+1), "", "", "")
	}

	t.Run("first page", func(t *testing.T) {
		pagePosts, page := Paginate(posts, 1, 10)
		require.Len(t, pagePosts, 10)
		assert.Equal(t, "Post 1", pagePosts[0].Title)
		assert.Equal(t, "Post 10", pagePosts[9].Title)
		assert.Equal(t, 1, page.Number)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 23, page.TotalItems)
	})

	t.Run("last page is partial", func(t *testing.T) {
		pagePosts, page := Paginate(posts, 3, 10)
		require.Len(t, pagePosts, 3)
		assert.Equal(t, "Post 21", pagePosts[0].Title)
		assert.Equal(t, "Post 23", pagePosts[2].Title)
		assert.Equal(t, 3, page.Number)
	})

	t.Run("page zero clamps to one", func(t *testing.T) {
		pagePosts, page := Paginate(posts, 0, 10)
		require.Len(t, pagePosts, 10)
		assert.Equal(t, 1, page.Number)
	})

	t.Run("page past the end clamps to last", func(t *testing.T) {
		pagePosts, page := Paginate(posts, 4, 10)
		require.Len(t, pagePosts, 3)
		assert.Equal(t, 3, page.Number)
	})

	t.Run("empty list yields one empty page", func(t *testing.T) {
		pagePosts, page := Paginate(nil, 1, 10)
		assert.Empty(t, pagePosts)
		assert.Equal(t, 1, page.Number)
		assert.Equal(t, 1, page.TotalPages)
		assert.Equal(t, 0, page.TotalItems)
	})

	t.Run("zero per-page falls back to default", func(t *testing.T) {
		pagePosts, page := Paginate(posts, 1, 0)
		assert.Len(t, pagePosts, DefaultPerPage)
		assert.Equal(t, DefaultPerPage, page.PerPage)
	})
}

func TestCategories(t *testing.T) {
	posts := []*models.BlogPost{
		post("a", "", "", "portraits"),
		post("b", "", "", "weddings"),
		post("c", "", "", "portraits"),
		post("d", "", "", ""),
	}

	assert.Equal(t, []string{"portraits", "weddings"}, Categories(posts))
}

package content

import (
	"strings"

	"github.com/brothersphoto/site-backend/models"
)

// DefaultPerPage is the page size used by the blog listing.
const DefaultPerPage = 10

// Filter narrows a post list the way the search page does: a free-text query
// matched case-insensitively against title, excerpt, content and tags, an
// exact category, and a tag set where any overlap qualifies. All three are
// intersected; zero values mean "no filter".
type Filter struct {
	Query    string
	Category string
	Tags     []string
}

// FilterPosts applies f over posts and returns the matching subset in the
// original order.
func FilterPosts(posts []*models.BlogPost, f Filter) []*models.BlogPost {
	filtered := make([]*models.BlogPost, 0, len(posts))

	query := strings.ToLower(strings.TrimSpace(f.Query))

	for _, post := range posts {
		if query != "" && !matchesQuery(post, query) {
			continue
		}
		if f.Category != "" && post.Category != f.Category {
			continue
		}
		if len(f.Tags) > 0 && !hasAnyTag(post, f.Tags) {
			continue
		}
		filtered = append(filtered, post)
	}

	return filtered
}

func matchesQuery(post *models.BlogPost, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(post.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(post.Excerpt), lowerQuery) ||
		strings.Contains(strings.ToLower(post.Content), lowerQuery) {
		return true
	}
	for _, tag := range post.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	return false
}

func hasAnyTag(post *models.BlogPost, wanted []string) bool {
	for _, w := range wanted {
		for _, tag := range post.Tags {
			if tag == w {
				return true
			}
		}
	}
	return false
}

// Page describes one page of a paginated list.
type Page struct {
	Number     int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices posts into the requested page. The page number is clamped
// to [1, totalPages], so page 0 and pages past the end are not reachable.
func Paginate(posts []*models.BlogPost, page, perPage int) ([]*models.BlogPost, Page) {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	totalPages := (len(posts) + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(posts) {
		start = len(posts)
	}
	if end > len(posts) {
		end = len(posts)
	}

	return posts[start:end], Page{
		Number:     page,
		PerPage:    perPage,
		TotalItems: len(posts),
		TotalPages: totalPages,
	}
}

// Categories returns the distinct categories across posts, in first-seen
// order, for the search page's filter controls.
func Categories(posts []*models.BlogPost) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, post := range posts {
		if post.Category == "" || seen[post.Category] {
			continue
		}
		seen[post.Category] = true
		categories = append(categories, post.Category)
	}
	return categories
}

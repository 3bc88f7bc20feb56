package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "simple title",
			title: "Golden Hour Portraits",
			want:  "golden-hour-portraits",
		},
		{
			name:  "punctuation collapses to single hyphen",
			title: "Weddings, Engagements & More!",
			want:  "weddings-engagements-more",
		},
		{
			name:  "leading and trailing junk trimmed",
			title: "  --Behind the Lens--  ",
			want:  "behind-the-lens",
		},
		{
			name:  "digits preserved",
			title: "Top 10 Tips for 2024",
			want:  "top-10-tips-for-2024",
		},
		{
			name:  "already a slug",
			title: "already-a-slug",
			want:  "already-a-slug",
		},
		{
			name:  "empty title",
			title: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			title: "?!...",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.title)
			assert.Equal(t, tt.want, got)

			// Deterministic: deriving twice yields the same slug.
			assert.Equal(t, got, Slugify(tt.title))
		})
	}
}

func TestSlugifyShape(t *testing.T) {
	titles := []string{
		"A Day at the Beach",
		"___weird___input___",
		"CAPS AND Spaces",
		"émigré café", // non-ASCII letters are dropped, not transliterated
	}

	for _, title := range titles {
		slug := Slugify(title)
		if slug == "" {
			continue
		}
		assert.NotContains(t, slug, "--", "no hyphen runs in %q", slug)
		assert.NotEqual(t, byte('-'), slug[0], "no leading hyphen in %q", slug)
		assert.NotEqual(t, byte('-'), slug[len(slug)-1], "no trailing hyphen in %q", slug)
		for i := 0; i < len(slug); i++ {
			c := slug[i]
			ok := c == '-' || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
			assert.True(t, ok, "unexpected character %q in slug %q", c, slug)
		}
	}
}

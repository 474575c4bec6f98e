package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	DefaultCategory = "general"

	DefaultPostLimit     = 10
	DefaultFeaturedLimit = 3
	MaxPostLimit         = 50
)

type Post struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Content       string          `json:"content"`
	Excerpt       string          `json:"excerpt"`
	Author        string          `json:"author"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Published     bool            `json:"published"`
	Tags          []string        `json:"tags"`
	Category      string          `json:"category"`
	FeaturedImage *string         `json:"featured_image"`
	FeaturedVideo *string         `json:"featured_video"`
	ReadingTime   int             `json:"reading_time"`
	PaperType     *string         `json:"paper_type"`
	AcademicInfo  json.RawMessage `json:"academic_info"`
}

// PostInput carries the caller-supplied fields of a new post. Reading time is
// never accepted from the caller.
type PostInput struct {
	Title         string          `json:"title" binding:"required"`
	Content       string          `json:"content" binding:"required"`
	Excerpt       string          `json:"excerpt" binding:"required"`
	Author        string          `json:"author"`
	Published     *bool           `json:"published"`
	Tags          []string        `json:"tags"`
	Category      string          `json:"category"`
	FeaturedImage *string         `json:"featured_image"`
	FeaturedVideo *string         `json:"featured_video"`
	PaperType     *string         `json:"paper_type"`
	AcademicInfo  json.RawMessage `json:"academic_info"`
}

// Validate enforces the required text fields after trimming.
func (in *PostInput) Validate() error {
	var missing []string
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(in.Content) == "" {
		missing = append(missing, "content")
	}
	if strings.TrimSpace(in.Excerpt) == "" {
		missing = append(missing, "excerpt")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required field(s): %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

// PostPatch is a partial update. Absent fields are untouched; null clears
// optional fields and is rejected for required ones.
type PostPatch struct {
	Title         Optional[string]          `json:"title"`
	Content       Optional[string]          `json:"content"`
	Excerpt       Optional[string]          `json:"excerpt"`
	Author        Optional[string]          `json:"author"`
	Published     Optional[bool]            `json:"published"`
	Tags          Optional[[]string]        `json:"tags"`
	Category      Optional[string]          `json:"category"`
	FeaturedImage Optional[string]          `json:"featured_image"`
	FeaturedVideo Optional[string]          `json:"featured_video"`
	PaperType     Optional[string]          `json:"paper_type"`
	AcademicInfo  Optional[json.RawMessage] `json:"academic_info"`
}

// Validate rejects the whole patch when any required field is null or blank.
func (p *PostPatch) Validate() error {
	required := map[string]Optional[string]{
		"title":   p.Title,
		"content": p.Content,
		"excerpt": p.Excerpt,
	}
	for _, name := range []string{"title", "content", "excerpt"} {
		f := required[name]
		if f.Set && (f.Null || strings.TrimSpace(f.Value) == "") {
			return fmt.Errorf("%w: %s cannot be empty", ErrInvalidInput, name)
		}
	}
	if p.Published.Set && p.Published.Null {
		return fmt.Errorf("%w: published cannot be null", ErrInvalidInput)
	}
	return nil
}

// Apply copies the present fields onto post and reports whether content changed.
func (p *PostPatch) Apply(post *Post) (contentChanged bool) {
	if p.Title.HasValue() {
		post.Title = p.Title.Value
	}
	if p.Content.HasValue() {
		contentChanged = post.Content != p.Content.Value
		post.Content = p.Content.Value
	}
	if p.Excerpt.HasValue() {
		post.Excerpt = p.Excerpt.Value
	}
	if p.Author.Set {
		post.Author = p.Author.Value
	}
	if p.Published.HasValue() {
		post.Published = p.Published.Value
	}
	if p.Tags.Set {
		post.Tags = NormalizeTags(p.Tags.Value)
	}
	if p.Category.Set {
		post.Category = NormalizeCategory(p.Category.Value)
	}
	if p.FeaturedImage.Set {
		post.FeaturedImage = optionalString(p.FeaturedImage)
	}
	if p.FeaturedVideo.Set {
		post.FeaturedVideo = optionalString(p.FeaturedVideo)
	}
	if p.PaperType.Set {
		post.PaperType = optionalString(p.PaperType)
	}
	if p.AcademicInfo.Set {
		if p.AcademicInfo.Null {
			post.AcademicInfo = nil
		} else {
			post.AcademicInfo = p.AcademicInfo.Value
		}
	}
	return contentChanged
}

// PostFilter selects posts for listing. Zero values mean "no constraint".
type PostFilter struct {
	Category      string
	Tag           string
	Search        string
	PublishedOnly bool
	Skip          int
	Limit         int
}

// ClampLimit applies the default when limit is not positive and caps it at MaxPostLimit.
func ClampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxPostLimit {
		return MaxPostLimit
	}
	return limit
}

// NormalizeTags trims tags, drops blanks and duplicates, keeping first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// NormalizeCategory maps blank categories to DefaultCategory.
func NormalizeCategory(c string) string {
	c = strings.TrimSpace(c)
	if c == "" {
		return DefaultCategory
	}
	return c
}

func optionalString(o Optional[string]) *string {
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article represents a long-form blog post with its SEO metadata.
// Collection: articles
type Article struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
	Title      string             `bson:"title" json:"title"`
	Slug       string             `bson:"slug" json:"slug"`
	Excerpt    string             `bson:"excerpt" json:"excerpt"`
	Content    string             `bson:"content" json:"content"`
	CoverImage string             `bson:"cover_image" json:"cover_image"`
	Author     string             `bson:"author" json:"author"`
	Category   string             `bson:"category" json:"category"`
	Tags       []string           `bson:"tags" json:"tags"`

	IsPublished bool       `bson:"is_published" json:"is_published"`
	PublishedAt *time.Time `bson:"published_at,omitempty" json:"published_at,omitempty"`
	ViewCount   int64      `bson:"view_count" json:"view_count"`

	SEO ArticleSEO `bson:"seo" json:"seo"`
}

// ArticleSEO is the metadata bundle rendered into page heads and
// structured data. ReadingTimeMinutes is derived from the body word
// count at save time, never stored by the caller.
type ArticleSEO struct {
	MetaTitle          string   `bson:"meta_title" json:"meta_title"`
	MetaDescription    string   `bson:"meta_description" json:"meta_description"`
	FocusKeyword       string   `bson:"focus_keyword" json:"focus_keyword"`
	Keywords           []string `bson:"keywords" json:"keywords"`
	CanonicalURL       string   `bson:"canonical_url" json:"canonical_url"`
	OGImage            string   `bson:"og_image" json:"og_image"`
	ReadingTimeMinutes int      `bson:"reading_time_minutes" json:"reading_time_minutes"`
}

package dto

import (
	"time"

	"prompt-gallery/models"
)

type ArticleDTO struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Excerpt     string        `json:"excerpt"`
	Content     string        `json:"content"`
	CoverImage  string        `json:"cover_image"`
	Author      string        `json:"author"`
	Category    string        `json:"category"`
	Tags        []string      `json:"tags"`
	IsPublished bool          `json:"is_published"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`
	ViewCount   int64         `json:"view_count"`
	SEO         ArticleSEODTO `json:"seo"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type ArticleSEODTO struct {
	MetaTitle          string   `json:"meta_title"`
	MetaDescription    string   `json:"meta_description"`
	FocusKeyword       string   `json:"focus_keyword"`
	Keywords           []string `json:"keywords"`
	CanonicalURL       string   `json:"canonical_url"`
	OGImage            string   `json:"og_image"`
	ReadingTimeMinutes int      `json:"reading_time_minutes"`
}

func NewArticleDTO(a models.Article) ArticleDTO {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	keywords := a.SEO.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return ArticleDTO{
		ID:          a.ID.Hex(),
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		CoverImage:  a.CoverImage,
		Author:      a.Author,
		Category:    a.Category,
		Tags:        tags,
		IsPublished: a.IsPublished,
		PublishedAt: a.PublishedAt,
		ViewCount:   a.ViewCount,
		SEO: ArticleSEODTO{
			MetaTitle:          a.SEO.MetaTitle,
			MetaDescription:    a.SEO.MetaDescription,
			FocusKeyword:       a.SEO.FocusKeyword,
			Keywords:           keywords,
			CanonicalURL:       a.SEO.CanonicalURL,
			OGImage:            a.SEO.OGImage,
			ReadingTimeMinutes: a.SEO.ReadingTimeMinutes,
		},
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func NewArticleDTOs(articles []models.Article) []ArticleDTO {
	out := make([]ArticleDTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, NewArticleDTO(a))
	}
	return out
}

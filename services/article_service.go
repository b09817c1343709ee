package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"prompt-gallery/apperr"
	"prompt-gallery/config"
	"prompt-gallery/dto"
	"prompt-gallery/logger"
	"prompt-gallery/models"
	"prompt-gallery/repositories"
	"prompt-gallery/storage"
)

const articleMediaFolder = "articles"

// Average adult reading speed used to derive reading time from the
// body word count.
const wordsPerMinute = 200

type ArticleService struct {
	repo     *repositories.ArticleRepository
	uploader Uploader
	cfg      config.AppConfig
}

func NewArticleService(repo *repositories.ArticleRepository, uploader Uploader, cfg config.AppConfig) *ArticleService {
	return &ArticleService{repo: repo, uploader: uploader, cfg: cfg}
}

func (s *ArticleService) ListPublished(ctx context.Context) ([]dto.ArticleDTO, error) {
	articles, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewArticleDTOs(articles), nil
}

// GetBySlug returns the article and bumps its view counter.
func (s *ArticleService) GetBySlug(ctx context.Context, slugVal string) (*dto.ArticleDTO, error) {
	a, err := s.repo.FindBySlug(ctx, slugVal)
	if err != nil {
		return nil, mapMongoErr(err, "article")
	}
	if count, err := s.repo.IncrementViewCount(ctx, a.ID); err == nil {
		a.ViewCount = count
	}
	d := dto.NewArticleDTO(*a)
	return &d, nil
}

// ArticleInput carries the admin form fields shared by create and
// update.
type ArticleInput struct {
	Title           string
	Excerpt         string
	Content         string
	Author          string
	Category        string
	Tags            string
	IsPublished     bool
	MetaTitle       string
	MetaDescription string
	FocusKeyword    string
	Keywords        string
	CanonicalURL    string
	File            *storage.File
}

func (in ArticleInput) requiredFields() []requiredField {
	return []requiredField{
		{"title", in.Title},
		{"excerpt", in.Excerpt},
		{"content", in.Content},
		{"category", in.Category},
	}
}

// ReadingTimeMinutes derives reading time from a body's word count,
// rounded up.
func ReadingTimeMinutes(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

func (s *ArticleService) Create(ctx context.Context, in ArticleInput) (*dto.ArticleDTO, error) {
	if err := validateRequired(in.requiredFields()); err != nil {
		return nil, err
	}
	if err := checkUpload(in.File, s.cfg.Upload, "cover_image", true); err != nil {
		return nil, err
	}

	slugVal, err := uniqueSlug(ctx, in.Title, primitive.NilObjectID, s.repo.ExistsSlug)
	if err != nil {
		return nil, err
	}

	uploaded, err := s.uploader.Upload(ctx, *in.File, articleMediaFolder)
	if err != nil {
		return nil, apperr.NewUpstream("cover image upload", err)
	}

	author := strings.TrimSpace(in.Author)
	if author == "" {
		author = "Admin"
	}
	metaTitle := strings.TrimSpace(in.MetaTitle)
	if metaTitle == "" {
		metaTitle = strings.TrimSpace(in.Title)
	}
	metaDescription := strings.TrimSpace(in.MetaDescription)
	if metaDescription == "" {
		metaDescription = strings.TrimSpace(in.Excerpt)
	}

	a := &models.Article{
		Title:       strings.TrimSpace(in.Title),
		Slug:        slugVal,
		Excerpt:     strings.TrimSpace(in.Excerpt),
		Content:     strings.TrimSpace(in.Content),
		CoverImage:  uploaded.URL,
		Author:      author,
		Category:    strings.TrimSpace(in.Category),
		Tags:        parseTags(in.Tags),
		IsPublished: in.IsPublished,
		SEO: models.ArticleSEO{
			MetaTitle:          metaTitle,
			MetaDescription:    metaDescription,
			FocusKeyword:       strings.ToLower(strings.TrimSpace(in.FocusKeyword)),
			Keywords:           parseTags(in.Keywords),
			CanonicalURL:       strings.TrimSpace(in.CanonicalURL),
			OGImage:            uploaded.URL,
			ReadingTimeMinutes: ReadingTimeMinutes(in.Content),
		},
	}
	// Publish timestamp is set exactly once, on the first transition
	// to published.
	if a.IsPublished {
		now := time.Now()
		a.PublishedAt = &now
	}

	id, err := s.repo.Insert(ctx, a)
	if err != nil {
		return nil, err
	}
	a.ID = id

	logger.Log.Infof("article created: %s (%s)", a.Title, a.Slug)
	d := dto.NewArticleDTO(*a)
	return &d, nil
}

func (s *ArticleService) Update(ctx context.Context, idHex string, in ArticleInput) (*dto.ArticleDTO, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperr.NewNotFound("article")
	}
	if err := validateRequired(in.requiredFields()); err != nil {
		return nil, err
	}
	if err := checkUpload(in.File, s.cfg.Upload, "cover_image", false); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapMongoErr(err, "article")
	}

	slugVal, err := uniqueSlug(ctx, in.Title, id, s.repo.ExistsSlug)
	if err != nil {
		return nil, err
	}

	updates := bson.M{
		"title":                    strings.TrimSpace(in.Title),
		"slug":                     slugVal,
		"excerpt":                  strings.TrimSpace(in.Excerpt),
		"content":                  strings.TrimSpace(in.Content),
		"category":                 strings.TrimSpace(in.Category),
		"tags":                     parseTags(in.Tags),
		"is_published":             in.IsPublished,
		"seo.meta_title":           strings.TrimSpace(in.MetaTitle),
		"seo.meta_description":     strings.TrimSpace(in.MetaDescription),
		"seo.focus_keyword":        strings.ToLower(strings.TrimSpace(in.FocusKeyword)),
		"seo.keywords":             parseTags(in.Keywords),
		"seo.canonical_url":        strings.TrimSpace(in.CanonicalURL),
		"seo.reading_time_minutes": ReadingTimeMinutes(in.Content),
	}
	if author := strings.TrimSpace(in.Author); author != "" {
		updates["author"] = author
	}
	if in.File != nil {
		uploaded, err := s.uploader.Upload(ctx, *in.File, articleMediaFolder)
		if err != nil {
			return nil, apperr.NewUpstream("cover image upload", err)
		}
		updates["cover_image"] = uploaded.URL
		updates["seo.og_image"] = uploaded.URL
	}
	if in.IsPublished && existing.PublishedAt == nil {
		updates["published_at"] = time.Now()
	}

	a, err := s.repo.UpdateFields(ctx, id, updates)
	if err != nil {
		return nil, mapMongoErr(err, "article")
	}

	logger.Log.Infof("article updated: %s (%s)", a.Title, a.Slug)
	d := dto.NewArticleDTO(*a)
	return &d, nil
}

func (s *ArticleService) Delete(ctx context.Context, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return apperr.NewNotFound("article")
	}
	a, err := s.repo.Delete(ctx, id)
	if err != nil {
		return mapMongoErr(err, "article")
	}
	if a.CoverImage != "" {
		if err := s.uploader.Delete(ctx, a.CoverImage); err != nil {
			logger.Log.Warnf("failed to delete cover image for article %s: %v", a.Slug, err)
		}
	}
	logger.Log.Infof("article deleted: %s (%s)", a.Title, a.Slug)
	return nil
}

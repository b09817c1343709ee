package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"prompt-gallery/apperr"
	"prompt-gallery/config"
	"prompt-gallery/dto"
	"prompt-gallery/logger"
	"prompt-gallery/models"
	"prompt-gallery/repositories"
	"prompt-gallery/storage"
)

const itemMediaFolder = "items"

// ItemService encapsulates catalog business logic and DTO mapping.
type ItemService struct {
	repo     *repositories.ItemRepository
	uploader Uploader
	cfg      config.AppConfig
}

func NewItemService(repo *repositories.ItemRepository, uploader Uploader, cfg config.AppConfig) *ItemService {
	return &ItemService{repo: repo, uploader: uploader, cfg: cfg}
}

type ListItemsInput struct {
	Model        string
	Industry     string
	Topic        string
	MediaType    string
	TrendingOnly bool
	Search       string
	Page         int
	PageSize     int
}

func (s *ItemService) List(ctx context.Context, in ListItemsInput) (dto.Pagination[dto.ItemDTO], error) {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.PageSize <= 0 {
		in.PageSize = s.cfg.Catalog.DefaultPageSize
	}
	if max := s.cfg.Catalog.MaxPageSize; max > 0 && in.PageSize > max {
		in.PageSize = max
	}
	// Stored media types are lowercase; the "All" sentinel must survive
	// untouched so the repository recognizes it.
	mediaType := strings.ToLower(in.MediaType)
	if mediaType == "all" {
		mediaType = "All"
	}
	items, total, err := s.repo.List(ctx, repositories.ListItemsOptions{
		Model:        in.Model,
		Industry:     in.Industry,
		Topic:        in.Topic,
		MediaType:    mediaType,
		TrendingOnly: in.TrendingOnly,
		Search:       in.Search,
		Page:         in.Page,
		PageSize:     in.PageSize,
	})
	if err != nil {
		return dto.Pagination[dto.ItemDTO]{}, err
	}
	return dto.NewPagination(dto.NewItemDTOs(items), in.Page, in.PageSize, total), nil
}

// ListAll backs the collection-authoring picker: every item regardless
// of flags, capped to bound the response.
func (s *ItemService) ListAll(ctx context.Context) ([]dto.ItemDTO, error) {
	cap := int64(s.cfg.Catalog.AdminListCap)
	if cap <= 0 {
		cap = 500
	}
	items, err := s.repo.ListAll(ctx, cap)
	if err != nil {
		return nil, err
	}
	return dto.NewItemDTOs(items), nil
}

// Get resolves an item by slug, falling back to id lookup.
func (s *ItemService) Get(ctx context.Context, token string) (*dto.ItemDTO, error) {
	it, err := s.repo.FindBySlugOrID(ctx, token)
	if err != nil {
		return nil, mapMongoErr(err, "item")
	}
	d := dto.NewItemDTO(*it)
	return &d, nil
}

// ItemOfDay returns the featured item, falling through trending and
// recency. A nil result with nil error means the catalog is empty.
func (s *ItemService) ItemOfDay(ctx context.Context) (*dto.ItemDTO, error) {
	it, err := s.repo.FindItemOfDay(ctx)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	d := dto.NewItemDTO(*it)
	return &d, nil
}

// Related returns items sharing topic or model, ranked by copy count.
func (s *ItemService) Related(ctx context.Context, token string) ([]dto.ItemDTO, error) {
	it, err := s.repo.FindBySlugOrID(ctx, token)
	if err != nil {
		return nil, mapMongoErr(err, "item")
	}
	limit := int64(s.cfg.Catalog.RelatedLimit)
	if limit <= 0 {
		limit = 4
	}
	related, err := s.repo.FindRelated(ctx, it, limit)
	if err != nil {
		return nil, err
	}
	return dto.NewItemDTOs(related), nil
}

func (s *ItemService) IncrementCopyCount(ctx context.Context, idHex string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, apperr.NewNotFound("item")
	}
	count, err := s.repo.IncrementCopyCount(ctx, id)
	if err != nil {
		return 0, mapMongoErr(err, "item")
	}
	return count, nil
}

// ItemInput carries the admin form fields shared by create and update.
type ItemInput struct {
	Title          string
	Description    string
	PromptText     string
	NegativePrompt string
	AIModel        string
	Industry       string
	Topic          string
	MediaType      string
	Tags           string
	IsTrending     bool
	IsItemOfDay    bool
	File           *storage.File
}

func (in ItemInput) requiredFields() []requiredField {
	return []requiredField{
		{"title", in.Title},
		{"prompt_text", in.PromptText},
		{"ai_model", in.AIModel},
		{"industry", in.Industry},
		{"topic", in.Topic},
	}
}

func (s *ItemService) Create(ctx context.Context, in ItemInput) (*dto.ItemDTO, error) {
	if err := validateRequired(in.requiredFields()); err != nil {
		return nil, err
	}
	if err := checkUpload(in.File, s.cfg.Upload, "media", true); err != nil {
		return nil, err
	}

	slugVal, err := uniqueSlug(ctx, in.Title, primitive.NilObjectID, s.repo.ExistsSlug)
	if err != nil {
		return nil, err
	}

	uploaded, err := s.uploader.Upload(ctx, *in.File, itemMediaFolder)
	if err != nil {
		return nil, apperr.NewUpstream("media upload", err)
	}

	mediaType := strings.ToLower(strings.TrimSpace(in.MediaType))
	if mediaType == "" {
		mediaType = models.MediaTypeImage
	}

	it := &models.Item{
		Title:          strings.TrimSpace(in.Title),
		Slug:           slugVal,
		Description:    strings.TrimSpace(in.Description),
		PromptText:     strings.TrimSpace(in.PromptText),
		NegativePrompt: strings.TrimSpace(in.NegativePrompt),
		AIModel:        strings.TrimSpace(in.AIModel),
		Industry:       strings.TrimSpace(in.Industry),
		Topic:          strings.TrimSpace(in.Topic),
		MediaType:      mediaType,
		MediaURL:       uploaded.URL,
		Tags:           parseTags(in.Tags),
		IsTrending:     in.IsTrending,
		IsItemOfDay:    in.IsItemOfDay,
	}

	id, err := s.repo.Insert(ctx, it)
	if err != nil {
		return nil, err
	}
	it.ID = id

	// One statement flags this item and clears every other one.
	if in.IsItemOfDay {
		if err := s.repo.SetItemOfDay(ctx, id); err != nil {
			return nil, err
		}
	}

	logger.Log.Infof("item created: %s (%s)", it.Title, it.Slug)
	d := dto.NewItemDTO(*it)
	return &d, nil
}

func (s *ItemService) Update(ctx context.Context, idHex string, in ItemInput) (*dto.ItemDTO, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperr.NewNotFound("item")
	}
	if err := validateRequired(in.requiredFields()); err != nil {
		return nil, err
	}
	if err := checkUpload(in.File, s.cfg.Upload, "media", false); err != nil {
		return nil, err
	}

	slugVal, err := uniqueSlug(ctx, in.Title, id, s.repo.ExistsSlug)
	if err != nil {
		return nil, err
	}

	updates := bson.M{
		"title":           strings.TrimSpace(in.Title),
		"slug":            slugVal,
		"description":     strings.TrimSpace(in.Description),
		"prompt_text":     strings.TrimSpace(in.PromptText),
		"negative_prompt": strings.TrimSpace(in.NegativePrompt),
		"ai_model":        strings.TrimSpace(in.AIModel),
		"industry":        strings.TrimSpace(in.Industry),
		"topic":           strings.TrimSpace(in.Topic),
		"tags":            parseTags(in.Tags),
		"is_trending":     in.IsTrending,
		"is_item_of_day":  in.IsItemOfDay,
	}
	if mt := strings.ToLower(strings.TrimSpace(in.MediaType)); mt != "" {
		updates["media_type"] = mt
	}

	// File is optional on update; omission keeps the existing media.
	if in.File != nil {
		uploaded, err := s.uploader.Upload(ctx, *in.File, itemMediaFolder)
		if err != nil {
			return nil, apperr.NewUpstream("media upload", err)
		}
		updates["media_url"] = uploaded.URL
	}

	it, err := s.repo.UpdateFields(ctx, id, updates)
	if err != nil {
		return nil, mapMongoErr(err, "item")
	}

	if in.IsItemOfDay {
		if err := s.repo.SetItemOfDay(ctx, id); err != nil {
			return nil, err
		}
		it.IsItemOfDay = true
	}

	logger.Log.Infof("item updated: %s (%s)", it.Title, it.Slug)
	d := dto.NewItemDTO(*it)
	return &d, nil
}

// Delete removes the item, releases its stored media and pulls it out
// of every collection.
func (s *ItemService) Delete(ctx context.Context, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return apperr.NewNotFound("item")
	}
	it, err := s.repo.Delete(ctx, id)
	if err != nil {
		return mapMongoErr(err, "item")
	}
	if it.MediaURL != "" {
		if err := s.uploader.Delete(ctx, it.MediaURL); err != nil {
			// The catalog record is gone; an orphaned blob is only
			// worth a warning.
			logger.Log.Warnf("failed to delete media for item %s: %v", it.Slug, err)
		}
	}
	logger.Log.Infof("item deleted: %s (%s)", it.Title, it.Slug)
	return nil
}

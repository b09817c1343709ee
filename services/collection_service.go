package services

import (
	"context"
	"encoding/json"
	"strings"

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

const collectionMediaFolder = "collections"

type CollectionService struct {
	repo     *repositories.CollectionRepository
	uploader Uploader
	cfg      config.AppConfig
}

func NewCollectionService(repo *repositories.CollectionRepository, uploader Uploader, cfg config.AppConfig) *CollectionService {
	return &CollectionService{repo: repo, uploader: uploader, cfg: cfg}
}

func (s *CollectionService) ListPublished(ctx context.Context) ([]dto.CollectionDTO, error) {
	collections, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CollectionDTO, 0, len(collections))
	for _, c := range collections {
		items, err := s.repo.PopulateItems(ctx, c.ItemIDs)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.NewCollectionDTO(c, items))
	}
	return out, nil
}

// GetBySlug returns the populated collection and bumps its view
// counter.
func (s *CollectionService) GetBySlug(ctx context.Context, slugVal string) (*dto.CollectionDTO, error) {
	c, err := s.repo.FindBySlug(ctx, slugVal)
	if err != nil {
		return nil, mapMongoErr(err, "collection")
	}
	if count, err := s.repo.IncrementViewCount(ctx, c.ID); err == nil {
		c.ViewCount = count
	}
	items, err := s.repo.PopulateItems(ctx, c.ItemIDs)
	if err != nil {
		return nil, err
	}
	d := dto.NewCollectionDTO(*c, items)
	return &d, nil
}

func (s *CollectionService) IncrementDownloads(ctx context.Context, idHex string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, apperr.NewNotFound("collection")
	}
	count, err := s.repo.IncrementDownloads(ctx, id)
	if err != nil {
		return 0, mapMongoErr(err, "collection")
	}
	return count, nil
}

// CollectionInput carries the admin form fields shared by create and
// update. Items is the raw form value, either a JSON array of hex ids
// or a comma-separated list.
type CollectionInput struct {
	Title       string
	Description string
	Category    string
	Items       string
	IsPublished bool
	File        *storage.File
}

func (in CollectionInput) validate() error {
	var problems []string
	if len(strings.TrimSpace(in.Title)) < 3 {
		problems = append(problems, "title must be at least 3 characters")
	}
	if len(strings.TrimSpace(in.Description)) < 10 {
		problems = append(problems, "description must be at least 10 characters")
	}
	if strings.TrimSpace(in.Category) == "" {
		problems = append(problems, "category")
	}
	if len(problems) > 0 {
		return apperr.NewValidation(problems...)
	}
	return nil
}

// parseItemIDs accepts either a JSON array of hex ids or a
// comma-separated list. Invalid ids fail the whole request rather than
// being dropped silently.
func parseItemIDs(raw string) ([]primitive.ObjectID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, apperr.NewValidation("items must reference at least one item")
	}

	var hexIDs []string
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &hexIDs); err != nil {
			return nil, apperr.NewValidation("items must be a JSON array of item ids")
		}
	} else {
		hexIDs = strings.Split(raw, ",")
	}

	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, h := range hexIDs {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, apperr.NewValidation("items contains an invalid item id")
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, apperr.NewValidation("items must reference at least one item")
	}
	return ids, nil
}

func (s *CollectionService) Create(ctx context.Context, in CollectionInput) (*dto.CollectionDTO, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	itemIDs, err := parseItemIDs(in.Items)
	if err != nil {
		return nil, err
	}
	if err := checkUpload(in.File, s.cfg.Upload, "cover_image", true); err != nil {
		return nil, err
	}

	slugVal, err := uniqueSlug(ctx, in.Title, primitive.NilObjectID, s.repo.ExistsSlug)
	if err != nil {
		return nil, err
	}

	uploaded, err := s.uploader.Upload(ctx, *in.File, collectionMediaFolder)
	if err != nil {
		return nil, apperr.NewUpstream("cover image upload", err)
	}

	c := &models.Collection{
		Title:       strings.TrimSpace(in.Title),
		Slug:        slugVal,
		Description: strings.TrimSpace(in.Description),
		CoverImage:  uploaded.URL,
		Category:    strings.TrimSpace(in.Category),
		ItemIDs:     itemIDs,
		IsPublished: in.IsPublished,
	}

	id, err := s.repo.Insert(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id

	items, err := s.repo.PopulateItems(ctx, c.ItemIDs)
	if err != nil {
		return nil, err
	}

	logger.Log.Infof("collection created: %s (%s)", c.Title, c.Slug)
	d := dto.NewCollectionDTO(*c, items)
	return &d, nil
}

func (s *CollectionService) Update(ctx context.Context, idHex string, in CollectionInput) (*dto.CollectionDTO, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperr.NewNotFound("collection")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	itemIDs, err := parseItemIDs(in.Items)
	if err != nil {
		return nil, err
	}
	if err := checkUpload(in.File, s.cfg.Upload, "cover_image", false); err != nil {
		return nil, err
	}

	slugVal, err := uniqueSlug(ctx, in.Title, id, s.repo.ExistsSlug)
	if err != nil {
		return nil, err
	}

	updates := bson.M{
		"title":        strings.TrimSpace(in.Title),
		"slug":         slugVal,
		"description":  strings.TrimSpace(in.Description),
		"category":     strings.TrimSpace(in.Category),
		"items":        itemIDs,
		"is_published": in.IsPublished,
	}
	if in.File != nil {
		uploaded, err := s.uploader.Upload(ctx, *in.File, collectionMediaFolder)
		if err != nil {
			return nil, apperr.NewUpstream("cover image upload", err)
		}
		updates["cover_image"] = uploaded.URL
	}

	c, err := s.repo.UpdateFields(ctx, id, updates)
	if err != nil {
		return nil, mapMongoErr(err, "collection")
	}

	items, err := s.repo.PopulateItems(ctx, c.ItemIDs)
	if err != nil {
		return nil, err
	}

	logger.Log.Infof("collection updated: %s (%s)", c.Title, c.Slug)
	d := dto.NewCollectionDTO(*c, items)
	return &d, nil
}

func (s *CollectionService) Delete(ctx context.Context, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return apperr.NewNotFound("collection")
	}
	c, err := s.repo.Delete(ctx, id)
	if err != nil {
		return mapMongoErr(err, "collection")
	}
	if c.CoverImage != "" {
		if err := s.uploader.Delete(ctx, c.CoverImage); err != nil {
			logger.Log.Warnf("failed to delete cover image for collection %s: %v", c.Slug, err)
		}
	}
	logger.Log.Infof("collection deleted: %s (%s)", c.Title, c.Slug)
	return nil
}

package dto

import (
	"time"

	"prompt-gallery/models"
)

// CollectionDTO carries a collection with its membership populated into
// full item DTOs, in the stored order.
type CollectionDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CoverImage  string    `json:"cover_image"`
	Category    string    `json:"category"`
	Items       []ItemDTO `json:"items"`
	IsPublished bool      `json:"is_published"`
	ViewCount   int64     `json:"view_count"`
	Downloads   int64     `json:"downloads"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewCollectionDTO(c models.Collection, items []models.Item) CollectionDTO {
	return CollectionDTO{
		ID:          c.ID.Hex(),
		Title:       c.Title,
		Slug:        c.Slug,
		Description: c.Description,
		CoverImage:  c.CoverImage,
		Category:    c.Category,
		Items:       NewItemDTOs(items),
		IsPublished: c.IsPublished,
		ViewCount:   c.ViewCount,
		Downloads:   c.Downloads,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

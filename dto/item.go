package dto

import (
	"time"

	"prompt-gallery/models"
)

// ItemDTO exposes a catalog item to API consumers. IDs travel as hex
// strings to keep transport simple.
type ItemDTO struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	PromptText     string    `json:"prompt_text"`
	NegativePrompt string    `json:"negative_prompt"`
	AIModel        string    `json:"ai_model"`
	Industry       string    `json:"industry"`
	Topic          string    `json:"topic"`
	MediaType      string    `json:"media_type"`
	MediaURL       string    `json:"media_url"`
	Tags           []string  `json:"tags"`
	IsTrending     bool      `json:"is_trending"`
	IsItemOfDay    bool      `json:"is_item_of_day"`
	CopyCount      int64     `json:"copy_count"`
	ViewCount      int64     `json:"view_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewItemDTO constructs ItemDTO from models.Item
func NewItemDTO(it models.Item) ItemDTO {
	tags := it.Tags
	if tags == nil {
		tags = []string{}
	}
	return ItemDTO{
		ID:             it.ID.Hex(),
		Title:          it.Title,
		Slug:           it.Slug,
		Description:    it.Description,
		PromptText:     it.PromptText,
		NegativePrompt: it.NegativePrompt,
		AIModel:        it.AIModel,
		Industry:       it.Industry,
		Topic:          it.Topic,
		MediaType:      it.MediaType,
		MediaURL:       it.MediaURL,
		Tags:           tags,
		IsTrending:     it.IsTrending,
		IsItemOfDay:    it.IsItemOfDay,
		CopyCount:      it.CopyCount,
		ViewCount:      it.ViewCount,
		CreatedAt:      it.CreatedAt,
		UpdatedAt:      it.UpdatedAt,
	}
}

// NewItemDTOs maps a slice of models preserving order.
func NewItemDTOs(items []models.Item) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, NewItemDTO(it))
	}
	return out
}

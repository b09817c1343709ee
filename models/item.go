package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Media kinds an item can carry. The vocabulary for ai_model, industry
// and topic is open-ended; only media_type is constrained.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Item represents a catalog entry: a prompt text paired with the media
// it produced.
// Collection: items
type Item struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
	Title          string             `bson:"title" json:"title"`
	Slug           string             `bson:"slug" json:"slug"`
	Description    string             `bson:"description" json:"description"`
	PromptText     string             `bson:"prompt_text" json:"prompt_text"`
	NegativePrompt string             `bson:"negative_prompt" json:"negative_prompt"`
	AIModel        string             `bson:"ai_model" json:"ai_model"`
	Industry       string             `bson:"industry" json:"industry"`
	Topic          string             `bson:"topic" json:"topic"`
	MediaType      string             `bson:"media_type" json:"media_type"`
	MediaURL       string             `bson:"media_url" json:"media_url"`
	Tags           []string           `bson:"tags" json:"tags"`
	IsTrending     bool               `bson:"is_trending" json:"is_trending"`
	IsItemOfDay    bool               `bson:"is_item_of_day" json:"is_item_of_day"`
	CopyCount      int64              `bson:"copy_count" json:"copy_count"`
	ViewCount      int64              `bson:"view_count" json:"view_count"`
}

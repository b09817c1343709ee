package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection is a curated bundle of items. Membership is an ordered
// list of item ids; items themselves are unaware of it.
// Collection: collections
type Collection struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updated_at"`
	Title       string               `bson:"title" json:"title"`
	Slug        string               `bson:"slug" json:"slug"`
	Description string               `bson:"description" json:"description"`
	CoverImage  string               `bson:"cover_image" json:"cover_image"`
	Category    string               `bson:"category" json:"category"`
	ItemIDs     []primitive.ObjectID `bson:"items" json:"items"`
	IsPublished bool                 `bson:"is_published" json:"is_published"`
	ViewCount   int64                `bson:"view_count" json:"view_count"`
	Downloads   int64                `bson:"downloads" json:"downloads"`
}

package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"prompt-gallery/models"
)

type CollectionRepository struct {
	col   *mongo.Collection
	items *mongo.Collection
}

func NewCollectionRepository(db *mongo.Database) *CollectionRepository {
	return &CollectionRepository{
		col:   db.Collection("collections"),
		items: db.Collection("items"),
	}
}

// ListPublished returns published collections, newest first.
func (r *CollectionRepository) ListPublished(ctx context.Context) ([]models.Collection, error) {
	findOpts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.col.Find(ctx, bson.M{"is_published": true}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.Collection
	for cur.Next(ctx) {
		var c models.Collection
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		results = append(results, c)
	}
	return results, cur.Err()
}

func (r *CollectionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Collection, error) {
	var c models.Collection
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CollectionRepository) FindBySlug(ctx context.Context, slug string) (*models.Collection, error) {
	var c models.Collection
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ExistsSlug reports whether another collection already owns the slug.
func (r *CollectionRepository) ExistsSlug(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error) {
	filter := bson.M{"slug": slug}
	if !exclude.IsZero() {
		filter["_id"] = bson.M{"$ne": exclude}
	}
	err := r.col.FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return err == nil, err
}

// PopulateItems resolves the membership id list into item documents,
// preserving the stored order. Ids that no longer resolve are skipped.
func (r *CollectionRepository) PopulateItems(ctx context.Context, ids []primitive.ObjectID) ([]models.Item, error) {
	if len(ids) == 0 {
		return []models.Item{}, nil
	}
	cur, err := r.items.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	byID := make(map[primitive.ObjectID]models.Item, len(ids))
	for cur.Next(ctx) {
		var it models.Item
		if err := cur.Decode(&it); err != nil {
			return nil, err
		}
		byID[it.ID] = it
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	ordered := make([]models.Item, 0, len(ids))
	for _, id := range ids {
		if it, ok := byID[id]; ok {
			ordered = append(ordered, it)
		}
	}
	return ordered, nil
}

func (r *CollectionRepository) Insert(ctx context.Context, c *models.Collection) (primitive.ObjectID, error) {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if c.ItemIDs == nil {
		c.ItemIDs = []primitive.ObjectID{}
	}
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// UpdateFields updates specific fields and returns the updated document.
func (r *CollectionRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Collection, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		set[k] = v
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c models.Collection
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// IncrementViewCount increments view_count by 1 and returns the new value.
func (r *CollectionRepository) IncrementViewCount(ctx context.Context, id primitive.ObjectID) (int64, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c models.Collection
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"view_count": 1},
	}, opts).Decode(&c)
	if err != nil {
		return 0, err
	}
	return c.ViewCount, nil
}

// IncrementDownloads increments downloads by 1 and returns the new value.
func (r *CollectionRepository) IncrementDownloads(ctx context.Context, id primitive.ObjectID) (int64, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c models.Collection
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"downloads": 1},
	}, opts).Decode(&c)
	if err != nil {
		return 0, err
	}
	return c.Downloads, nil
}

// Delete removes the collection, returning the deleted document so the
// caller can release its cover image.
func (r *CollectionRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Collection, error) {
	var c models.Collection
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

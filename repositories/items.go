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

const (
	defaultPageSize = 24
	maxPageSize     = 100
)

type ItemRepository struct {
	col         *mongo.Collection
	collections *mongo.Collection
}

func NewItemRepository(db *mongo.Database) *ItemRepository {
	return &ItemRepository{
		col:         db.Collection("items"),
		collections: db.Collection("collections"),
	}
}

// ListItemsOptions is the filter bag for the catalog list endpoint.
// Empty or "All" categorical values mean no constraint on that
// dimension.
type ListItemsOptions struct {
	Model        string
	Industry     string
	Topic        string
	MediaType    string
	TrendingOnly bool
	Search       string
	Page         int
	PageSize     int
}

// BuildListFilter translates the option bag into a single Mongo filter.
// Categorical predicates AND together; a search term goes through the
// weighted text index.
func BuildListFilter(opt ListItemsOptions) bson.M {
	filter := bson.M{}
	categorical := map[string]string{
		"ai_model": opt.Model,
		"industry": opt.Industry,
		"topic":    opt.Topic,
	}
	for field, value := range categorical {
		if value != "" && value != "All" {
			filter[field] = value
		}
	}
	if opt.MediaType != "" && opt.MediaType != "All" {
		filter["media_type"] = opt.MediaType
	}
	if opt.TrendingOnly {
		filter["is_trending"] = true
	}
	if opt.Search != "" {
		filter["$text"] = bson.M{"$search": opt.Search}
	}
	return filter
}

// List returns one page of items plus the total count for the same
// filter, sorted by creation time descending.
func (r *ItemRepository) List(ctx context.Context, opt ListItemsOptions) ([]models.Item, int64, error) {
	filter := BuildListFilter(opt)

	if opt.Page <= 0 {
		opt.Page = 1
	}
	if opt.PageSize <= 0 {
		opt.PageSize = defaultPageSize
	}
	if opt.PageSize > maxPageSize {
		opt.PageSize = maxPageSize
	}
	skip := int64((opt.Page - 1) * opt.PageSize)
	limit := int64(opt.PageSize)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var results []models.Item
	for cur.Next(ctx) {
		var it models.Item
		if err := cur.Decode(&it); err != nil {
			return nil, 0, err
		}
		results = append(results, it)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// ListAll returns every item regardless of flags, newest first, capped
// to bound the admin picker response.
func (r *ItemRepository) ListAll(ctx context.Context, cap int64) ([]models.Item, error) {
	findOpts := options.Find().SetLimit(cap).SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.Item
	for cur.Next(ctx) {
		var it models.Item
		if err := cur.Decode(&it); err != nil {
			return nil, err
		}
		results = append(results, it)
	}
	return results, cur.Err()
}

// FindByID returns an item by its ObjectID
func (r *ItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Item, error) {
	var it models.Item
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&it); err != nil {
		return nil, err
	}
	return &it, nil
}

// FindBySlugOrID resolves by slug first and falls back to an identity
// lookup when the token parses as an ObjectID.
func (r *ItemRepository) FindBySlugOrID(ctx context.Context, token string) (*models.Item, error) {
	var it models.Item
	err := r.col.FindOne(ctx, bson.M{"slug": token}).Decode(&it)
	if err == nil {
		return &it, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}
	id, idErr := primitive.ObjectIDFromHex(token)
	if idErr != nil {
		return nil, mongo.ErrNoDocuments
	}
	return r.FindByID(ctx, id)
}

// ExistsSlug reports whether another item already owns the slug.
func (r *ItemRepository) ExistsSlug(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error) {
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

// ItemOfDayFilters is the fallback chain for the featured item lookup:
// the flagged item, then the latest trending item, then the latest item
// of any kind.
func ItemOfDayFilters() []bson.M {
	return []bson.M{
		{"is_item_of_day": true},
		{"is_trending": true},
		{},
	}
}

// FindItemOfDay walks the fallback chain and returns the first hit.
// Returns mongo.ErrNoDocuments only when the catalog is empty.
func (r *ItemRepository) FindItemOfDay(ctx context.Context) (*models.Item, error) {
	newestFirst := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	for _, filter := range ItemOfDayFilters() {
		var it models.Item
		err := r.col.FindOne(ctx, filter, newestFirst).Decode(&it)
		if err == nil {
			return &it, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, err
		}
	}
	return nil, mongo.ErrNoDocuments
}

// FindRelated returns items sharing topic or model with the given item,
// excluding itself, ranked by copy count descending.
func (r *ItemRepository) FindRelated(ctx context.Context, it *models.Item, limit int64) ([]models.Item, error) {
	filter := bson.M{
		"_id": bson.M{"$ne": it.ID},
		"$or": []bson.M{
			{"topic": it.Topic},
			{"ai_model": it.AIModel},
		},
	}
	findOpts := options.Find().SetLimit(limit).SetSort(bson.D{
		{Key: "copy_count", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.Item
	for cur.Next(ctx) {
		var rel models.Item
		if err := cur.Decode(&rel); err != nil {
			return nil, err
		}
		results = append(results, rel)
	}
	return results, cur.Err()
}

// Insert inserts a new item document.
func (r *ItemRepository) Insert(ctx context.Context, it *models.Item) (primitive.ObjectID, error) {
	now := time.Now()
	if it.CreatedAt.IsZero() {
		it.CreatedAt = now
	}
	it.UpdatedAt = now
	if it.Tags == nil {
		it.Tags = []string{}
	}
	res, err := r.col.InsertOne(ctx, it)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// UpdateFields updates specific fields of an item and returns the
// updated document.
func (r *ItemRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Item, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		set[k] = v
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var it models.Item
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&it); err != nil {
		return nil, err
	}
	return &it, nil
}

// ItemOfDayPipeline builds the update applied across the whole
// collection when the flag moves: one $set that compares each _id
// against the chosen id, so exactly one item ends up flagged.
func ItemOfDayPipeline(id primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{
			"is_item_of_day": bson.M{"$eq": bson.A{"$_id", id}},
		}}},
	}
}

// SetItemOfDay flags the given item and clears every other item in a
// single update statement, so concurrent admin writes cannot leave two
// items flagged.
func (r *ItemRepository) SetItemOfDay(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.UpdateMany(ctx, bson.M{}, ItemOfDayPipeline(id))
	return err
}

// IncrementCopyCount increments copy_count by 1 and returns the new value.
func (r *ItemRepository) IncrementCopyCount(ctx context.Context, id primitive.ObjectID) (int64, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var it models.Item
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"copy_count": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}, opts).Decode(&it)
	if err != nil {
		return 0, err
	}
	return it.CopyCount, nil
}

// Delete removes the item and pulls its id out of every collection's
// membership list, returning the deleted document so the caller can
// release its stored media.
func (r *ItemRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Item, error) {
	var it models.Item
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&it); err != nil {
		return nil, err
	}
	if _, err := r.collections.UpdateMany(ctx, bson.M{}, bson.M{
		"$pull": bson.M{"items": id},
	}); err != nil {
		return &it, err
	}
	return &it, nil
}

// SlugEntry is the projection used by the sitemap endpoints.
type SlugEntry struct {
	Slug      string    `bson:"slug"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// ListSlugs returns slug + last modification time for every item.
func (r *ItemRepository) ListSlugs(ctx context.Context) ([]SlugEntry, error) {
	findOpts := options.Find().SetProjection(bson.M{"slug": 1, "updated_at": 1})
	cur, err := r.col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []SlugEntry
	for cur.Next(ctx) {
		var e SlugEntry
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, cur.Err()
}

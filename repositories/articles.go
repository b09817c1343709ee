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

type ArticleRepository struct {
	col *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{col: db.Collection("articles")}
}

// ListPublished returns published articles, newest first.
func (r *ArticleRepository) ListPublished(ctx context.Context) ([]models.Article, error) {
	findOpts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.col.Find(ctx, bson.M{"is_published": true}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.Article
	for cur.Next(ctx) {
		var a models.Article
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		results = append(results, a)
	}
	return results, cur.Err()
}

func (r *ArticleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error) {
	var a models.Article
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArticleRepository) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var a models.Article
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ExistsSlug reports whether another article already owns the slug.
func (r *ArticleRepository) ExistsSlug(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error) {
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

func (r *ArticleRepository) Insert(ctx context.Context, a *models.Article) (primitive.ObjectID, error) {
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	if a.Tags == nil {
		a.Tags = []string{}
	}
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// UpdateFields updates specific fields and returns the updated document.
func (r *ArticleRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Article, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		set[k] = v
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var a models.Article
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// IncrementViewCount increments view_count by 1 and returns the new value.
func (r *ArticleRepository) IncrementViewCount(ctx context.Context, id primitive.ObjectID) (int64, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var a models.Article
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"view_count": 1},
	}, opts).Decode(&a)
	if err != nil {
		return 0, err
	}
	return a.ViewCount, nil
}

// Delete removes the article, returning the deleted document so the
// caller can release its cover image.
func (r *ArticleRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Article, error) {
	var a models.Article
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListPublishedSlugs returns slug + last modification time for every
// published article, used by the sitemap endpoint.
func (r *ArticleRepository) ListPublishedSlugs(ctx context.Context) ([]SlugEntry, error) {
	findOpts := options.Find().SetProjection(bson.M{"slug": 1, "updated_at": 1})
	cur, err := r.col.Find(ctx, bson.M{"is_published": true}, findOpts)
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

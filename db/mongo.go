package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"prompt-gallery/config"
	"prompt-gallery/logger"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init initializes the global Mongo client and database using config values.
func Init(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		cfg := config.GetConfig()
		if cfg.MongoURI == "" {
			initErr = fmt.Errorf("MONGO_URI is not set")
			return
		}
		dbName := cfg.MongoDBName
		if dbName == "" {
			dbName = "promptgallery"
		}

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		cl, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			initErr = err
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(dbName)

		// Ensure indexes for all collections
		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		logger.Log.Info("MongoDB connected and indexes ensured")
	})
	return initErr
}

func Client() *mongo.Client     { return client }
func Database() *mongo.Database { return db }

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// items: unique sparse slug, sort/filter compounds, weighted text index
	{
		items := d.Collection("items")
		if _, err := items.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("uniq_slug").SetUnique(true).SetSparse(true),
		}); err != nil {
			return err
		}
		compounds := []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_created_at_desc"),
			},
			{
				Keys:    bson.D{{Key: "media_type", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_media_type_created"),
			},
			{
				Keys:    bson.D{{Key: "ai_model", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_ai_model_created"),
			},
			{
				Keys:    bson.D{{Key: "industry", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_industry_created"),
			},
			{
				Keys:    bson.D{{Key: "topic", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_topic_created"),
			},
			{
				Keys:    bson.D{{Key: "is_trending", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_trending_created"),
			},
		}
		if _, err := items.Indexes().CreateMany(ctx, compounds); err != nil {
			return err
		}
		// Weighted full-text index powering the search parameter.
		if _, err := items.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "tags", Value: "text"},
				{Key: "ai_model", Value: "text"},
				{Key: "topic", Value: "text"},
				{Key: "industry", Value: "text"},
				{Key: "description", Value: "text"},
				{Key: "prompt_text", Value: "text"},
			},
			Options: options.Index().SetName("txt_items").SetWeights(bson.D{
				{Key: "title", Value: 10},
				{Key: "tags", Value: 8},
				{Key: "ai_model", Value: 5},
				{Key: "topic", Value: 5},
				{Key: "industry", Value: 3},
				{Key: "description", Value: 2},
				{Key: "prompt_text", Value: 1},
			}),
		}); err != nil {
			return err
		}
	}

	// articles: unique slug, publish/category/tags compounds, text index
	{
		articles := d.Collection("articles")
		if _, err := articles.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("uniq_slug").SetUnique(true),
		}); err != nil {
			return err
		}
		compounds := []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "is_published", Value: 1}, {Key: "published_at", Value: -1}},
				Options: options.Index().SetName("idx_published"),
			},
			{
				Keys:    bson.D{{Key: "category", Value: 1}, {Key: "is_published", Value: 1}},
				Options: options.Index().SetName("idx_category_published"),
			},
			{
				Keys:    bson.D{{Key: "tags", Value: 1}, {Key: "is_published", Value: 1}},
				Options: options.Index().SetName("idx_tags_published"),
			},
		}
		if _, err := articles.Indexes().CreateMany(ctx, compounds); err != nil {
			return err
		}
		if _, err := articles.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "content", Value: "text"},
				{Key: "excerpt", Value: "text"},
				{Key: "tags", Value: "text"},
			},
			Options: options.Index().SetName("txt_articles").SetWeights(bson.D{
				{Key: "title", Value: 10},
				{Key: "tags", Value: 5},
				{Key: "excerpt", Value: 3},
				{Key: "content", Value: 1},
			}),
		}); err != nil {
			return err
		}
	}

	// collections: unique slug, publish compounds, text index
	{
		cols := d.Collection("collections")
		if _, err := cols.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("uniq_slug").SetUnique(true),
		}); err != nil {
			return err
		}
		compounds := []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "category", Value: 1}, {Key: "is_published", Value: 1}},
				Options: options.Index().SetName("idx_category_published"),
			},
			{
				Keys:    bson.D{{Key: "is_published", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_published_created"),
			},
		}
		if _, err := cols.Indexes().CreateMany(ctx, compounds); err != nil {
			return err
		}
		if _, err := cols.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "description", Value: "text"},
			},
			Options: options.Index().SetName("txt_collections"),
		}); err != nil {
			return err
		}
	}
	return nil
}

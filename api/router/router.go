package router

import (
	"github.com/gin-gonic/gin"

	"prompt-gallery/api/handlers"
	"prompt-gallery/api/middleware"
	"prompt-gallery/config"
	"prompt-gallery/db"
	"prompt-gallery/generator"
	"prompt-gallery/repositories"
	"prompt-gallery/services"
	"prompt-gallery/storage"
)

func New(cfg config.AppConfig, store *storage.SpacesClient) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(middleware.RequestLogging())

	database := db.Database()
	itemRepo := repositories.NewItemRepository(database)
	articleRepo := repositories.NewArticleRepository(database)
	collectionRepo := repositories.NewCollectionRepository(database)

	itemSvc := services.NewItemService(itemRepo, store, cfg)
	articleSvc := services.NewArticleService(articleRepo, store, cfg)
	collectionSvc := services.NewCollectionService(collectionRepo, store, cfg)
	genClient := generator.NewClient(cfg)

	r.GET("/health", handlers.HealthHandler())
	r.GET("/sitemap-items.xml", handlers.ItemsSitemapHandler(itemRepo, cfg.Server.FrontendURL))
	r.GET("/sitemap-articles.xml", handlers.ArticlesSitemapHandler(articleRepo, cfg.Server.FrontendURL))

	publicLimit := middleware.NewRateLimiter(cfg.RateLimit.PublicPerSecond, cfg.RateLimit.PublicBurst)
	adminLimit := middleware.NewRateLimiter(cfg.RateLimit.AdminPerSecond, cfg.RateLimit.AdminBurst)

	api := r.Group("/api", publicLimit.Middleware())
	{
		api.GET("/items", handlers.ListItemsHandler(itemSvc))
		// item-of-day rides the wildcard; see GetItemHandler.
		api.GET("/items/:idOrSlug", handlers.GetItemHandler(itemSvc))
		api.GET("/items/:idOrSlug/related", handlers.RelatedItemsHandler(itemSvc))
		api.POST("/items/:id/copy", handlers.CopyItemHandler(itemSvc))

		api.GET("/articles", handlers.ListArticlesHandler(articleSvc))
		api.GET("/articles/:slug", handlers.GetArticleHandler(articleSvc))

		api.GET("/collections", handlers.ListCollectionsHandler(collectionSvc))
		api.GET("/collections/:slug", handlers.GetCollectionHandler(collectionSvc))
		api.POST("/collections/:id/download", handlers.DownloadCollectionHandler(collectionSvc))

		api.POST("/generate-prompt", handlers.GeneratePromptHandler(genClient))
		api.POST("/enhance-prompt", handlers.EnhancePromptHandler(genClient))
		api.POST("/generate-negative-prompt", handlers.NegativePromptHandler(genClient))
	}

	admin := r.Group("/api", adminLimit.Middleware(), middleware.AdminAuth(cfg.AdminSecret))
	{
		admin.GET("/items-all", handlers.ListAllItemsHandler(itemSvc))
		admin.POST("/items", handlers.CreateItemHandler(itemSvc))
		admin.PUT("/items/:id", handlers.UpdateItemHandler(itemSvc))
		admin.DELETE("/items/:id", handlers.DeleteItemHandler(itemSvc))

		admin.POST("/articles", handlers.CreateArticleHandler(articleSvc))
		admin.PUT("/articles/:id", handlers.UpdateArticleHandler(articleSvc))
		admin.DELETE("/articles/:id", handlers.DeleteArticleHandler(articleSvc))

		admin.POST("/collections", handlers.CreateCollectionHandler(collectionSvc))
		admin.PUT("/collections/:id", handlers.UpdateCollectionHandler(collectionSvc))
		admin.DELETE("/collections/:id", handlers.DeleteCollectionHandler(collectionSvc))
	}

	return r
}

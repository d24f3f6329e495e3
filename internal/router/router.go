package router

import (
	"time"

	"github.com/jmarqb/Microservice-Products-and-Categories/internal/config"
	"github.com/jmarqb/Microservice-Products-and-Categories/internal/event"
	"github.com/jmarqb/Microservice-Products-and-Categories/internal/handler"
	"github.com/jmarqb/Microservice-Products-and-Categories/internal/middleware"
	"github.com/jmarqb/Microservice-Products-and-Categories/internal/repository"
	"github.com/jmarqb/Microservice-Products-and-Categories/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis, with the
// event bus injected into both catalog services so neither imports the
// other's reconciliation logic.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, bus *event.Bus) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	// Constructors subscribe the reconciliation handlers for the process
	// lifetime; registration order fixes delivery order per event name.
	categorySvc := service.NewCategoryService(categoryRepo, bus)
	productSvc := service.NewProductService(productRepo, categoryRepo, bus, rdb,
		service.WithCacheTTL(time.Duration(cfg.ProductCacheTTLSeconds)*time.Second))
	searchSvc := service.NewSearchService(productRepo, categoryRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	productsH := handler.NewProductsHandler(productSvc)
	searchH := handler.NewSearchHandler(searchSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/search/:collection/:term", searchH.Find)

	// Protected routes — admin bearer token required
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	adminMW := middleware.RequireRole("admin")

	categories := r.Group("/categories", jwtMW, adminMW)
	{
		categories.POST("", categoriesH.Create)
		categories.GET("", categoriesH.FindAll)
		categories.GET("/:id", categoriesH.FindOne)
		categories.PATCH("/:id", categoriesH.Update)
		categories.DELETE("/:id", categoriesH.Remove)
	}

	product := r.Group("/product", jwtMW, adminMW)
	{
		product.POST("", productsH.Create)
		product.GET("", productsH.FindAll)
		product.GET("/:id", productsH.FindOne)
		product.PATCH("/:id", productsH.Update)
		product.DELETE("/:id", productsH.Remove)
	}

	return r
}

package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"github.com/babaygt/eatyq/internal/config"
	"github.com/babaygt/eatyq/internal/constants"
	"github.com/babaygt/eatyq/internal/database"
	"github.com/babaygt/eatyq/internal/handlers"
	"github.com/babaygt/eatyq/internal/middleware"
	"github.com/babaygt/eatyq/internal/repository"
	"github.com/babaygt/eatyq/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to MongoDB
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Ensure indexes (unique username/email, parent-pointer lookups)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(ctx, database.GetDB()); err != nil {
		cancel()
		log.Fatalf("Failed to create indexes: %v", err)
	}
	cancel()

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	itemRepo := repository.NewItemRepository(db)

	// Services
	cascade := services.NewCascadeService(menuRepo, categoryRepo, itemRepo)
	authService := services.NewAuthService(userRepo)
	menuService := services.NewMenuService(menuRepo, cascade)
	categoryService := services.NewCategoryService(categoryRepo, menuRepo, itemRepo, cascade)
	itemService := services.NewItemService(itemRepo, categoryRepo)

	// Image storage is optional; without CLOUDINARY_URL the image routes
	// answer 503
	var imageService *services.ImageService
	if cfg.CloudinaryURL != "" {
		var err error
		imageService, err = services.NewImageService(cfg.CloudinaryURL)
		if err != nil {
			log.Fatalf("Failed to initialize image storage: %v", err)
		}
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	menuHandler := handlers.NewMenuHandler(menuService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	itemHandler := handlers.NewItemHandler(itemService)
	publicHandler := handlers.NewPublicHandler(menuService, categoryService, cfg.PublicBaseURL)
	imageHandler := handlers.NewImageHandler(imageService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "EatYQ API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// User routes
		users := api.Group("/users")
		{
			users.POST("/register", authHandler.Register)
			users.POST("/login", authHandler.Login)
			users.POST("/logout", middleware.RequireAuth(), authHandler.Logout)
			users.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Menu routes (protected, ownership-scoped)
		menus := api.Group("/menus")
		menus.Use(middleware.RequireAuth())
		{
			menus.POST("", menuHandler.CreateMenu)
			menus.GET("", menuHandler.ListMenus)

			menu := menus.Group("/:menuId", middleware.RequireMenuOwnership(menuService))
			{
				menu.GET("", menuHandler.GetMenu)
				menu.PATCH("", menuHandler.UpdateMenu)
				menu.DELETE("", menuHandler.DeleteMenu)

				// Category routes, scoped to the owned menu
				menu.POST("/categories", categoryHandler.CreateCategory)
				menu.GET("/categories", categoryHandler.ListCategories)

				category := menu.Group("/categories/:categoryId", middleware.RequireCategoryInMenu(categoryService))
				{
					category.PUT("", categoryHandler.UpdateCategory)
					category.DELETE("", categoryHandler.DeleteCategory)

					// Item routes, scoped to the owned category
					category.POST("/items", itemHandler.CreateItem)
					category.GET("/items", itemHandler.ListItems)
					category.PUT("/items/:itemId", itemHandler.UpdateItem)
					category.DELETE("/items/:itemId", itemHandler.DeleteItem)
				}
			}
		}

		// Image upload proxy (protected)
		api.POST("/image", middleware.RequireAuth(), imageHandler.UploadImage)
		api.DELETE("/image/:publicId", middleware.RequireAuth(), imageHandler.DeleteImage)

		// Public read-only menu view (no auth)
		public := api.Group("/public")
		{
			public.GET("/menus/:menuId", publicHandler.GetPublicMenu)
			public.GET("/menus/:menuId/qr", publicHandler.GetMenuQR)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

package router

import (
	"net/http"

	"columns-cms/config"
	"columns-cms/handlers"
	"columns-cms/helper"
	"columns-cms/middleware"
	"columns-cms/models"
	"columns-cms/repositories"
	"columns-cms/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires repositories, services and handlers on db and returns the API engine.
func New(db *gorm.DB, cfg config.AppConfig) *gin.Engine {
	httpHelper := helper.NewHTTPHelper()
	middleware.HTTPHelper = httpHelper

	// Initialize repositories
	tx := repositories.NewTransactor(db)
	userRepo := repositories.NewUserRepository(db)
	columnRepo := repositories.NewColumnRepository(db)
	postRepo := repositories.NewPostRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo, userService)
	columnService := services.NewColumnService(tx, userRepo, columnRepo, subscriptionRepo)
	postService := services.NewPostService(userRepo, columnRepo, postRepo)
	subscriptionService := services.NewSubscriptionService(columnRepo, subscriptionRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	userHandler := handlers.NewUserHandler(userService, httpHelper)
	columnHandler := handlers.NewColumnHandler(columnService, subscriptionService, httpHelper)
	postHandler := handlers.NewPostHandler(postService, httpHelper)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(corsConfig(cfg)))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	coordinatorOnly := middleware.RequireRole(userService, models.RoleCoordinator)
	writerOnly := middleware.RequireRole(userService, models.RoleWriter)
	moderatorOnly := middleware.RequireRole(userService, models.RoleModerator)

	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public routes
		v1.GET("/columns", columnHandler.GetColumns)
		public := v1.Group("/public")
		{
			public.GET("/columns/:id/posts", postHandler.GetPublicPosts)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)
			protected.GET("/subscriptions", columnHandler.GetSubscriptions)

			users := protected.Group("/users", coordinatorOnly)
			{
				users.GET("", userHandler.GetUsers)
				users.PUT("/:id/role", userHandler.SetRole)
			}

			columns := protected.Group("/columns")
			{
				columns.POST("", coordinatorOnly, columnHandler.CreateColumn)
				columns.GET("/:id", columnHandler.GetColumn)
				columns.DELETE("/:id", coordinatorOnly, columnHandler.DeleteColumn)
				columns.POST("/:id/subscribe", columnHandler.Subscribe)
				columns.PUT("/:id/subscription", columnHandler.EnsureSubscription)
			}

			protected.GET("/writer/columns", writerOnly, columnHandler.GetWriterColumns)

			posts := protected.Group("/posts")
			{
				posts.POST("", writerOnly, postHandler.CreatePost)
				posts.GET("/:id", postHandler.GetPost)
			}

			moderator := protected.Group("/moderator", moderatorOnly)
			{
				moderator.GET("/posts", postHandler.GetModeratorPosts)
				moderator.PUT("/posts/:id/public", postHandler.MarkPublic)
			}
		}
	}

	return router
}

func corsConfig(cfg config.AppConfig) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader}
	c.ExposeHeaders = []string{middleware.RequestIDHeader}
	if len(cfg.CORSOrigins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSOrigins
	}
	return c
}

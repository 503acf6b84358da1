package main

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/mohit-bt/ayurveda-website/api"
	"github.com/mohit-bt/ayurveda-website/config"
	_ "github.com/mohit-bt/ayurveda-website/docs" // Import for side effect: registers swagger spec via init()
	"github.com/mohit-bt/ayurveda-website/store"
	"github.com/mohit-bt/ayurveda-website/utils"
)

// @title           Ayurveda Catalog API
// @version         1.0.0

// @description     REST API behind the ayurveda catalog website and its admin
// @description     panel: product CRUD, the singleton business profile, image
// @description     upload, and single-admin bearer-token authentication.
// @description     Data lives in flat JSON files next to the server binary.

// @host      localhost:3000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token from /api/auth/login.

// setupRouter assembles the Gin engine. Dependencies are passed explicitly
// so tests can wire the same routes against a temporary store.
func setupRouter(catalog *store.Store, cfg *config.Config) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	// Health check endpoint for deployment services
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
	})

	authMiddleware := utils.AuthMiddleware(cfg, catalog)

	apiGroup := router.Group("/api")
	{
		// Public catalog reads
		apiGroup.GET("/products", func(c *gin.Context) {
			api.ListProductsHandler(c, catalog, cfg)
		})
		apiGroup.GET("/products/:id", func(c *gin.Context) {
			api.GetProductHandler(c, catalog, cfg)
		})
		apiGroup.GET("/profile", func(c *gin.Context) {
			api.GetProfileHandler(c, catalog, cfg)
		})

		// Image upload
		apiGroup.POST("/upload", func(c *gin.Context) {
			api.UploadImageHandler(c, catalog, cfg)
		})

		// Mutations require a valid admin token
		apiGroup.POST("/products", authMiddleware, func(c *gin.Context) {
			api.CreateProductHandler(c, catalog, cfg)
		})
		apiGroup.PUT("/products", authMiddleware, func(c *gin.Context) {
			api.ReplaceProductHandler(c, catalog, cfg)
		})
		apiGroup.DELETE("/products/:id", authMiddleware, func(c *gin.Context) {
			api.DeleteProductHandler(c, catalog, cfg)
		})
		apiGroup.PUT("/profile", authMiddleware, func(c *gin.Context) {
			api.ReplaceProfileHandler(c, catalog, cfg)
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/login", func(c *gin.Context) {
				api.LoginHandler(c, catalog, cfg)
			})
			authGroup.GET("/verify", authMiddleware, func(c *gin.Context) {
				api.VerifyHandler(c, catalog, cfg)
			})
			// Logout is deliberately lenient about the presented token.
			authGroup.POST("/logout", func(c *gin.Context) {
				api.LogoutHandler(c, catalog, cfg)
			})
			authGroup.POST("/change-password", authMiddleware, func(c *gin.Context) {
				api.ChangePasswordHandler(c, catalog, cfg)
			})
		}
	}

	// Uploaded images are served as plain static files.
	router.Static("/uploads", cfg.UploadsDir)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.APIError{Error: "Route not found"})
	})

	return router
}

func main() {
	// Seed random number generator (for upload filename suffixes)
	rand.Seed(time.Now().UnixNano())

	// --- Configuration ---
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("CRITICAL: Failed to load configuration: %v", err)
	}

	// --- Store ---
	catalog, err := store.Open(cfg)
	if err != nil {
		log.Fatalf("CRITICAL: Failed to initialize store: %v", err)
	}

	// --- Router ---
	router := setupRouter(catalog, cfg)

	// --- Start Server ---
	listenAddr := fmt.Sprintf("%s:%s", cfg.ListenAddress, cfg.ListenPort)
	log.Printf("INFO: Starting server on %s", listenAddr)
	log.Printf("INFO: Website: http://localhost:%s  Admin API: http://localhost:%s/api", cfg.ListenPort, cfg.ListenPort)

	server := &http.Server{
		Addr:    listenAddr,
		Handler: router,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("CRITICAL: Server failed to start: %v", err)
	}
}

package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/shi-vam7902/Quick-poll-backend/internal/database"
	"github.com/shi-vam7902/Quick-poll-backend/internal/handlers"
	"github.com/shi-vam7902/Quick-poll-backend/internal/middleware"
)

type Server struct {
	db      database.Service
	handler *handlers.Handler
}

// NewServer creates and configures a new server
func NewServer() *http.Server {
	// Initialize database
	db := database.New()

	// Create unified handler
	handler := handlers.NewHandler(db.GetDB())

	// Create server instance
	newServer := &Server{
		db:      db,
		handler: handler,
	}

	// Configure Gin router
	router := newServer.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // local dev fallback
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("🚀 Server starting on port %s\n", port)
	fmt.Println("📝 Press Ctrl+C to stop the server")

	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration for mobile and web access
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "QuickPoll API is running"})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/users/register", s.handler.Auth.Register)
		api.POST("/users/login", s.handler.Auth.Login)

		// Poll routes (public)
		api.GET("/polls/active", s.handler.Poll.GetActivePolls)
		api.POST("/polls/vote", s.handler.Poll.VotePoll)
		api.GET("/polls/results", s.handler.Poll.GetResults)
		api.GET("/polls/:id", s.handler.Poll.GetPoll)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.RequireAuth())
		{
			protected.GET("/users/profile", s.handler.Auth.GetProfile)
			protected.PUT("/users/profile", s.handler.Auth.UpdateProfile)
		}

		// Admin routes (admin role required)
		admin := api.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			// Poll management
			admin.GET("/polls", s.handler.Poll.GetPolls)
			admin.POST("/polls", s.handler.Poll.CreatePoll)
			admin.PUT("/polls/:id", s.handler.Poll.UpdatePoll)
			admin.DELETE("/polls/:id", s.handler.Poll.DeletePoll)

			// User management
			admin.GET("/users", s.handler.User.GetUsers)
			admin.GET("/users/:id", s.handler.User.GetUser)
			admin.PUT("/users/:id", s.handler.User.UpdateUser)
			admin.DELETE("/users/:id", s.handler.User.DeleteUser)
		}
	}

	// 404 fallback
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return r
}

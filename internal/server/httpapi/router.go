package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Contacts API"})
	})
	r.GET("/api/health-check", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "Server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", s.register)
		authGroup.POST("/login", s.login)
		authGroup.GET("", s.requireAuth(), s.me)
	}

	contactsGroup := r.Group("/contacts", s.requireAuth())
	{
		contactsGroup.GET("", s.listContacts)
		contactsGroup.GET("/:id", s.getContact)
		contactsGroup.POST("", s.createContact)
		contactsGroup.PUT("/:id", s.updateContact)
		contactsGroup.DELETE("/:id", s.deleteContact)
	}

	uploadsGroup := r.Group("/api/uploads", s.requireAuth())
	{
		uploadsGroup.POST("", s.uploadFile)
		uploadsGroup.GET("", s.listFiles)
		uploadsGroup.DELETE("/:key", s.deleteFile)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found", "path": c.Request.URL.Path})
	})

	return r
}

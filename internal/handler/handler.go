package handler

import (
	"net/http"

	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/", h.health)

	auth := r.Group("/auth")
	{
		auth.POST("/login", h.authLogin)
	}

	posts := r.Group("/posts")
	{
		posts.GET("", h.postsGetAll)
		posts.POST("", h.adminMiddleware, h.postsCreate)
		posts.POST("/uploadImage", h.adminMiddleware, h.postsUploadImage)

		post := posts.Group("/:postID")
		{
			post.GET("", h.postsGetByID)
			post.PUT("", h.adminMiddleware, h.postsUpdate)
			post.DELETE("", h.adminMiddleware, h.postsDelete)
			post.POST("/like", h.postsLike)
		}
	}

	return r
}

func (h *Handler) health(c *gin.Context) {
	c.String(http.StatusOK, "Blog backend is running!")
}

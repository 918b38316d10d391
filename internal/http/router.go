package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/filmoteca/peliculas-api/internal/database"
)

// RouterConfig carries every dependency the router needs, improving
// testability and keeping the constructor signature stable.
type RouterConfig struct {
	Database       *database.Database
	UserStore      UserStore
	MovieStore     MovieStore
	FavoritesStore FavoritesStore
	Version        string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	usersController := NewUsersController(cfg.UserStore)
	moviesController := NewMoviesController(cfg.MovieStore)
	favoritesController := NewFavoritesController(cfg.FavoritesStore)

	// Service endpoints
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Bienvenido a la API de Películas",
			"version": cfg.Version,
			"endpoints_principales": gin.H{
				"usuarios":  "/api/usuarios",
				"peliculas": "/api/peliculas",
				"favoritos": "/api/favoritos",
			},
		})
	})
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// User endpoints, including the nested favorites routes
	usuarios := router.Group("/api/usuarios")
	{
		usuarios.GET("", usersController.List)
		usuarios.POST("", usersController.Create)
		usuarios.GET("/:id", usersController.Get)
		usuarios.PUT("/:id", usersController.Update)
		usuarios.DELETE("/:id", usersController.Delete)

		usuarios.GET("/:id/favoritos", favoritesController.ListByUser)
		usuarios.POST("/:id/favoritos/:peliculaID", favoritesController.Mark)
		usuarios.DELETE("/:id/favoritos/:peliculaID", favoritesController.Unmark)
		usuarios.GET("/:id/estadisticas", favoritesController.Stats)
	}

	// Movie endpoints
	peliculas := router.Group("/api/peliculas")
	{
		peliculas.GET("", moviesController.List)
		peliculas.POST("", moviesController.Create)
		peliculas.GET("/:id", moviesController.Get)
		peliculas.PUT("/:id", moviesController.Update)
		peliculas.DELETE("/:id", moviesController.Delete)
	}

	// Flat favorites collection
	favoritos := router.Group("/api/favoritos")
	{
		favoritos.GET("", favoritesController.List)
		favoritos.POST("", favoritesController.Create)
		favoritos.GET("/:id", favoritesController.Get)
		favoritos.DELETE("/:id", favoritesController.Delete)
	}

	return router
}

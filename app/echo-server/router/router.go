package router

import (
	"shopReco/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendHandler) {
	reco := api.Group("/recommendations")

	reco.GET("", handler.Recommend)
	reco.GET("/popular", handler.Popular)

	api.GET("/search", handler.Search)
	api.GET("/search-and-recommend", handler.SearchAndRecommend)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
}

func SetupInteractionRoutes(api *echo.Group, handler *rest.InteractionHandler) {
	api.POST("/interactions", handler.Record)
}

func SetupAdminRoutes(api *echo.Group, handler *rest.AdminHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin", authRequired, adminOnly)

	admin.POST("/reload", handler.ReloadSnapshot)
}

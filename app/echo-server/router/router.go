package router

import (
	"github.com/Neha-Agarwal-coder/shopingRecommendation/internal/middleware"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/recommendations")

	reco.GET("", handler.Recommend)
	reco.GET("/history", handler.History)
	reco.GET("/trending", handler.Trending)
	reco.GET("/similar", handler.Similar)
}

func SetCustomerRoutes(api *echo.Group, handler *rest.CustomerHandler) {
	customers := api.Group("/customers")

	customers.GET("", handler.ListCustomerIDs)
	customers.GET("/:id", handler.GetProfile)
}

func SetProductRoutes(api *echo.Group, handler *rest.ProductHandler) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/sample", handler.Sample)
}

func SetAdminRoutes(api *echo.Group, handler *rest.AdminHandler) {
	admin := api.Group("/admin", middleware.AuthMiddleware())

	admin.POST("/catalog/reload", handler.ReloadCatalog)
}

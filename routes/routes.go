package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"perfume-shop/controllers"
	"perfume-shop/handler"
)

type Controllers struct {
	Cart      *controllers.CartController
	Fragrance *controllers.FragranceController
	Content   *controllers.ContentController
	System    *controllers.SystemController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/", gin.WrapF(handler.Handler))
	router.GET("/health", ctrl.System.Health)
	router.GET("/test", ctrl.System.TestDatabase)

	api := router.Group("/api")
	{
		api.GET("/fragrances", ctrl.Fragrance.ListFragrances)
		api.GET("/fragrances/:slug", ctrl.Fragrance.GetFragrance)

		api.GET("/testimonials", ctrl.Content.ListTestimonials)
		api.POST("/subscribe", ctrl.Content.Subscribe)

		api.GET("/cart/:session_id", ctrl.Cart.GetCart)
		api.POST("/cart/:session_id/items/:slug", ctrl.Cart.UpsertItem)
		api.DELETE("/cart/:session_id/items/:slug", ctrl.Cart.RemoveItem)
		api.POST("/checkout", ctrl.Cart.Checkout)
	}
}

package routes

import (
	"storefront/configs"
	"storefront/controllers"
	"storefront/middlewares"
	"storefront/repository"
	"storefront/services"
	"storefront/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories over the read-only catalog
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)

	// Session state: one cart, one navigation state, one active order.
	// Built here once and injected everywhere; leaving the tracking view
	// cancels the pending status simulation.
	cartSvc := services.NewCartService()
	navSvc := services.NewNavigationService()
	orderSvc := services.NewOrderService(cartSvc, navSvc, cfg.TrackingStep)
	navSvc.OnLeaveTracking = orderSvc.StopTracking

	restCtrl := controllers.NewRestaurantController(restRepo)
	menuCtrl := controllers.NewMenuController(menuRepo)
	cartCtrl := controllers.NewCartController(cartSvc, menuRepo, restRepo)
	navCtrl := controllers.NewNavigationController(navSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	stream := ws.NewTrackStream(orderSvc)

	// Catalog
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/menu", menuCtrl.ListByRestaurant)
	r.GET("/restaurants/:id/categories", menuCtrl.Categories)
	r.GET("/cuisines", restCtrl.Cuisines)

	// Cart + checkout
	r.GET("/cart", cartCtrl.Get)
	limited := r.Group("", middlewares.RateLimit(20, 40))
	{
		limited.POST("/cart/items", cartCtrl.Add)
		limited.PATCH("/cart/items/:id", cartCtrl.UpdateQty)
		limited.DELETE("/cart/items/:id", cartCtrl.Remove)
		limited.DELETE("/cart", cartCtrl.Clear)
		limited.POST("/orders", orderCtrl.Create)
	}

	// Navigation
	r.GET("/navigation", navCtrl.Get)
	r.POST("/navigation", navCtrl.Navigate)
	r.PUT("/navigation/search", navCtrl.SetSearch)

	// Order tracking
	r.GET("/orders/current", orderCtrl.Current)
	r.GET("/orders/current/stream", stream.Handle)
}

// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/config"
	"github.com/your-org/storefront-api/internal/domain/cart"
	"github.com/your-org/storefront-api/internal/domain/catalog"
	"github.com/your-org/storefront-api/internal/domain/checkout"
	"github.com/your-org/storefront-api/internal/domain/session"
	"github.com/your-org/storefront-api/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-api/internal/interfaces/http/middleware"
)

// Deps bundles the injectable state containers and services the routes
// operate on. Handlers never reach for globals.
type Deps struct {
	Config   *config.Config
	Catalog  catalog.Catalog
	Carts    *cart.Manager
	Sessions *session.Manager
	Checkout *checkout.Service
	Logger   *logrus.Logger
}

// SetupRoutes wires all API routes
func SetupRoutes(rg *gin.RouterGroup, deps Deps) {
	setupProductRoutes(rg, deps)
	setupAuthRoutes(rg, deps)
	setupCartRoutes(rg, deps)
	setupCheckoutRoutes(rg, deps)
}

// setupProductRoutes sets up product browsing routes. Browsing is public.
func setupProductRoutes(rg *gin.RouterGroup, deps Deps) {
	productHandler := handlers.NewProductHandler(deps.Catalog)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/categories", productHandler.GetCategories)
		products.GET("/category/:category", productHandler.GetProductsByCategory)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// setupAuthRoutes sets up the simulated login routes
func setupAuthRoutes(rg *gin.RouterGroup, deps Deps) {
	authHandler := handlers.NewAuthHandler(deps.Sessions, deps.Config)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authHandler.Me)

		// Token-addressed variant of /me
		protected := auth.Group("")
		protected.Use(middleware.JWTAuth(deps.Config))
		{
			protected.GET("/profile", authHandler.Profile)
		}
	}
}

// setupCartRoutes sets up cart routes. Reading the cart is public; every
// mutating route sits behind the login gate. Login enforcement lives here
// at the route level, not inside the cart store.
func setupCartRoutes(rg *gin.RouterGroup, deps Deps) {
	cartHandler := handlers.NewCartHandler(deps.Carts, deps.Catalog, deps.Logger)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)

		protected := cartGroup.Group("")
		protected.Use(middleware.RequireLogin(deps.Sessions))
		{
			protected.POST("/items", cartHandler.AddItem)
			protected.PUT("/items/:id", cartHandler.UpdateItem)
			protected.DELETE("/items/:id", cartHandler.RemoveItem)
			protected.DELETE("", cartHandler.ClearCart)
		}
	}
}

// setupCheckoutRoutes sets up the simulated checkout route
func setupCheckoutRoutes(rg *gin.RouterGroup, deps Deps) {
	checkoutHandler := handlers.NewCheckoutHandler(deps.Carts, deps.Sessions, deps.Checkout)

	rg.POST("/checkout", middleware.RequireLogin(deps.Sessions), checkoutHandler.Checkout)
}

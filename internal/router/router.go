package router

import (
	"github.com/eatyapp/eaty-backend/config"
	"github.com/eatyapp/eaty-backend/internal/app/controller"
	"github.com/eatyapp/eaty-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	businessController *controller.BusinessController
	productController  *controller.ProductController
	orderController    *controller.OrderController
	reviewController   *controller.ReviewController
	recipeController   *controller.RecipeController
	notebookController *controller.NotebookController
	customerController *controller.CustomerController
	config             *config.Config
}

func NewRouter(
	businessController *controller.BusinessController,
	productController *controller.ProductController,
	orderController *controller.OrderController,
	reviewController *controller.ReviewController,
	recipeController *controller.RecipeController,
	notebookController *controller.NotebookController,
	customerController *controller.CustomerController,
	cfg *config.Config,
) *Router {
	return &Router{
		businessController: businessController,
		productController:  productController,
		orderController:    orderController,
		reviewController:   reviewController,
		recipeController:   recipeController,
		notebookController: notebookController,
		customerController: customerController,
		config:             cfg,
	}
}

// Setup wires the HTTP surface. Paths are the ones the mobile app and panel
// already ship with, so they are flat (no /api/v1 prefix) and a little
// irregular: /business/:email also serves routes where the parameter is a
// numeric id (menu, reviews); those handlers parse it themselves.
func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "EATY API is running",
		})
	})

	router.POST("/register/business", r.businessController.Register)

	auth := router.Group("/auth/business")
	{
		auth.POST("/login", r.businessController.Login)
		auth.POST("/reset-password", r.businessController.ResetPassword)
	}

	business := router.Group("/business")
	{
		business.GET("/:email", r.businessController.GetBusiness)
		business.PUT("/:email/profile", r.businessController.UpdateProfile)
		business.PUT("/:email/status", r.businessController.UpdateStatus)
		business.POST("/:email/products", r.productController.AddProduct)
		business.GET("/:email/menu", r.productController.GetMenu)
		business.GET("/:email/orders", r.orderController.GetBusinessOrders)
		business.GET("/:email/reviews", r.reviewController.GetBusinessReviews)
	}

	router.GET("/businesses/:category", r.businessController.ListByCategory)

	customers := router.Group("/customers")
	{
		customers.GET("/:email/profile", r.customerController.GetProfile)
		customers.PUT("/:email/profile", r.customerController.UpdateProfile)
		customers.GET("/:email/addresses", r.customerController.GetAddresses)
		customers.PUT("/:email/addresses", r.customerController.ReplaceAddresses)
	}

	orders := router.Group("/orders")
	{
		orders.POST("", r.orderController.PlaceOrder)
		orders.GET("/customer/:email", r.orderController.GetCustomerOrders)
		orders.POST("/:order_id/review", r.reviewController.CreateOrderReview)
		orders.PUT("/:order_id/status", r.orderController.UpdateStatus)
	}

	products := router.Group("/products")
	{
		products.POST("/reorder", r.productController.Reorder)
		products.PUT("/:product_id", r.productController.UpdateProduct)
		products.DELETE("/:product_id", r.productController.DeleteProduct)
	}

	recipes := router.Group("/recipes")
	{
		recipes.POST("", r.recipeController.CreateRecipe)
		recipes.GET("", r.recipeController.ListRecipes)
		recipes.GET("/:recipe_id", r.recipeController.GetRecipe)
		recipes.PUT("/:recipe_id", r.recipeController.UpdateRecipe)
		recipes.DELETE("/:recipe_id", r.recipeController.DeleteRecipe)
		recipes.POST("/:recipe_id/like", r.recipeController.ToggleLike)
		recipes.GET("/:recipe_id/comments", r.recipeController.ListComments)
		recipes.POST("/:recipe_id/comments", r.recipeController.CreateComment)
	}

	notebooks := router.Group("/recipe-notebooks")
	{
		notebooks.POST("", r.notebookController.CreateNotebook)
		notebooks.GET("", r.notebookController.ListNotebooks)
		notebooks.PUT("/:notebook_id", r.notebookController.UpdateNotebook)
		notebooks.DELETE("/:notebook_id", r.notebookController.DeleteNotebook)
		notebooks.POST("/:notebook_id/items", r.notebookController.AddRecipe)
		notebooks.DELETE("/:notebook_id/items/:recipe_id", r.notebookController.RemoveRecipe)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

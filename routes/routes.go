package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/newbienorbie/prostore/controllers"
	"github.com/newbienorbie/prostore/libs"
	"github.com/newbienorbie/prostore/middleware"
	"github.com/newbienorbie/prostore/models"
	"github.com/newbienorbie/prostore/repositories"
	"github.com/newbienorbie/prostore/services"
)

func SetupRoutes(router *gin.Engine) {
	userRepo := repositories.NewUserRepository()
	productRepo := repositories.NewProductRepository()
	cartRepo := repositories.NewCartRepository()
	orderRepo := repositories.NewOrderRepository()
	reviewRepo := repositories.NewReviewRepository()

	var mailer services.ReceiptSender
	if svc, err := models.NewEmailService(); err != nil {
		log.Printf("email disabled: %v", err)
	} else {
		mailer = svc
	}

	authService := services.NewAuthService(userRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo, userRepo, libs.NewPayPal(), mailer)
	userService := services.NewUserService(userRepo)
	reviewService := services.NewReviewService(reviewRepo, productRepo)

	authCtrl := controllers.NewAuthController(authService, cartService)
	cartCtrl := controllers.NewCartController(cartService)
	productCtrl := controllers.NewProductController(productService)
	orderCtrl := controllers.NewOrderController(orderService)
	userCtrl := controllers.NewUserController(userService)
	reviewCtrl := controllers.NewReviewController(reviewService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/sign-up", middleware.SessionCartMiddleware(), authCtrl.SignUp)
	router.POST("/auth/sign-in", middleware.SessionCartMiddleware(), authCtrl.SignIn)

	router.GET("/products", productCtrl.Search)
	router.GET("/products/latest", productCtrl.GetLatest)
	router.GET("/products/featured", productCtrl.GetFeatured)
	router.GET("/products/categories", productCtrl.GetCategories)
	router.GET("/products/slug/:slug", productCtrl.GetBySlug)
	router.GET("/products/:id", productCtrl.GetByID)
	router.GET("/products/:id/reviews", reviewCtrl.GetProductReviews)

	cart := router.Group("/cart")
	cart.Use(middleware.SessionCartMiddleware(), middleware.OptionalAuthMiddleware())
	{
		cart.GET("", cartCtrl.GetCart)
		cart.POST("/items", cartCtrl.AddItem)
		cart.DELETE("/items/:productId", cartCtrl.RemoveItem)
	}

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/auth/sign-out", authCtrl.SignOut)
		auth.GET("/auth/profile", userCtrl.GetProfile)
		auth.PATCH("/auth/profile", userCtrl.UpdateProfile)
		auth.PUT("/auth/profile/address", userCtrl.UpdateAddress)
		auth.PUT("/auth/profile/payment-method", userCtrl.UpdatePaymentMethod)

		auth.POST("/orders", orderCtrl.PlaceOrder)
		auth.GET("/orders", orderCtrl.GetMyOrders)
		auth.GET("/orders/:id", orderCtrl.GetOrder)
		auth.POST("/orders/:id/paypal", orderCtrl.CreatePayPalOrder)
		auth.POST("/orders/:id/paypal/capture", orderCtrl.CapturePayPalOrder)

		auth.POST("/products/:id/reviews", reviewCtrl.CreateReview)
		auth.GET("/products/:id/reviews/me", reviewCtrl.GetMyReview)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/overview", orderCtrl.GetOverview)

		admin.GET("/users", userCtrl.GetAllUsers)
		admin.GET("/users/:id", userCtrl.GetUserByID)
		admin.PATCH("/users/:id", userCtrl.UpdateUser)
		admin.DELETE("/users/:id", userCtrl.DeleteUser)

		admin.POST("/products", productCtrl.Create)
		admin.PATCH("/products/:id", productCtrl.Update)
		admin.DELETE("/products/:id", productCtrl.Delete)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.PATCH("/orders/:id/pay", orderCtrl.MarkPaid)
		admin.PATCH("/orders/:id/deliver", orderCtrl.MarkDelivered)
		admin.DELETE("/orders/:id", orderCtrl.Delete)
	}
}

package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/newbienorbie/prostore/config"
	_ "github.com/newbienorbie/prostore/docs"
	"github.com/newbienorbie/prostore/middleware"
	"github.com/newbienorbie/prostore/models"
	"github.com/newbienorbie/prostore/routes"
)

// @title Prostore API
// @version 1.0
// @description E-commerce storefront API: catalog, carts, checkout, orders and admin.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	models.InitRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

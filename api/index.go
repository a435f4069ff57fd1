package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/newbienorbie/prostore/config"
	"github.com/newbienorbie/prostore/middleware"
	"github.com/newbienorbie/prostore/models"
	"github.com/newbienorbie/prostore/routes"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.ConnectDB()
		models.InitRedis()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router)
	})
}

// Handler is the serverless entrypoint.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}

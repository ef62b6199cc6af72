package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/nwfth/forms-go/config"
	"github.com/nwfth/forms-go/db"
	"github.com/nwfth/forms-go/middleware"
	"github.com/nwfth/forms-go/minio"
	"github.com/nwfth/forms-go/routes"
)

func main() {
	config.LoadConfig()
	db.Init()
	middleware.Init()
	minio.InitMinio()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r)

	log.Printf("ℹ️ Server listening on port %s", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

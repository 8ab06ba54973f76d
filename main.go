package main

import (
	"fmt"

	"storefront/configs"
	"storefront/middlewares"
	"storefront/pkg/logger"
	"storefront/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	logger.Init()
	cfg := configs.LoadConfig()

	// Catalog DB (in-memory by default), migrate + seed
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()
	if err := configs.SeedCatalog(); err != nil {
		logger.Log.Fatalf("seed catalog failed: %v", err)
	}

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Log.Infof("storefront listening at %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Log.Fatal(err)
	}
}

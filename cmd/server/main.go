package main

import (
	"log"
	"net/http"

	"github.com/sirupsen/logrus"

	"tara_na/internal/config"
	"tara_na/internal/logger"
	"tara_na/internal/middleware"
	"tara_na/internal/routes"
	"tara_na/internal/store"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	cfg := config.Load()

	// Pick the data path once: live Postgres when endpoint and
	// credential are both configured, in-memory demo data otherwise.
	var st store.Store
	if cfg.LiveMode() {
		db, err := config.ConnectDB(cfg)
		if err != nil {
			log.Fatalf("database setup failed: %v", err)
		}
		st = store.NewLiveStore(db)
		logrus.Info("connected to live database")
	} else {
		log.Println("DB_HOST or DB_PASSWORD missing – serving demo in-memory data")
		logrus.Warn("database configuration missing, falling back to demo data")
		st = store.NewDemoStore()
	}

	// Setup Gin router
	r := routes.SetupRouter(st)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at :%s", cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}

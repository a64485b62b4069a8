package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/skathar/portfolio-backend/config"
	"github.com/skathar/portfolio-backend/routes"
	"github.com/skathar/portfolio-backend/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("database init: ", err)
	}
	log.Println("PostgreSQL connected & migrated successfully!")

	uploader := storage.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseBucket)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r = routes.SetupRouter(r, routes.Deps{
		DB:       db,
		Uploader: uploader,
		Cfg:      cfg,
	})

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Portfolio server is running")
	})

	log.Println("Server running at Port:" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

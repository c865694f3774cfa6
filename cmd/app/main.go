package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/cmd/fx/booking_fx"
	"voyago/cmd/fx/catalog_fx"
	"voyago/cmd/fx/db_fx"
	"voyago/cmd/fx/embedding_fx"
	"voyago/cmd/fx/intent_fx"
	"voyago/cmd/fx/ranking_fx"
	"voyago/cmd/fx/recommendation_fx"
	"voyago/internal/api/controllers"
	"voyago/internal/infra"
	"voyago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		catalog_fx.Module,
		intent_fx.Module,
		embedding_fx.Module,
		ranking_fx.Module,
		recommendation_fx.Module,
		booking_fx.Module,

		fx.Invoke(SeedCatalog),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func SeedCatalog(db *gorm.DB) {
	if err := infra.MigrateAndSeed(db); err != nil {
		log.Fatalf("Failed to prepare catalog: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8000"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	recommendationController *controllers.RecommendationController,
	bookingController *controllers.BookingController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, recommendationController, bookingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	recommendationController *controllers.RecommendationController,
	bookingController *controllers.BookingController) {

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Travel Agent API"})
	})

	api := r.Group("/api")
	api.POST("/travel-plan", recommendationController.ProcessTravelPlan)
	api.POST("/chat", recommendationController.Chat)
	api.GET("/recommendations/day/:day", recommendationController.GetRecommendationsForDay)
	api.POST("/book", bookingController.BookItem)
}

package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/luckybarber/booking-api/internal/config"
	dbpkg "github.com/luckybarber/booking-api/internal/db"
	googleinfra "github.com/luckybarber/booking-api/internal/infra/google"
	"github.com/luckybarber/booking-api/internal/middleware"
	"github.com/luckybarber/booking-api/internal/routes"
	"github.com/luckybarber/booking-api/internal/session"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := dbpkg.NewDB(cfg)

	ctx := context.Background()

	client, err := googleinfra.NewClient(ctx, cfg.CredentialsFile, cfg.TokenFile)
	if err != nil {
		log.Fatalf("failed to build google client: %v", err)
	}

	calendar, err := googleinfra.NewCalendar(ctx, client, cfg.CalendarID, cfg.Timezone)
	if err != nil {
		log.Fatalf("failed to build calendar service: %v", err)
	}

	ledger, err := googleinfra.NewSheetLedger(ctx, client, cfg.SheetID)
	if err != nil {
		log.Fatalf("failed to build sheets service: %v", err)
	}

	mailer, err := googleinfra.NewGmailMailer(ctx, client)
	if err != nil {
		log.Fatalf("failed to build gmail service: %v", err)
	}

	var sessions session.Store
	if cfg.RedisAddr != "" {
		sessions = session.NewRedis(cfg.RedisAddr)
	} else {
		log.Println("REDIS_ADDR empty, using in-memory session store")
		sessions = session.NewMemory()
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, calendar, ledger, mailer, sessions)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

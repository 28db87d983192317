package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookable/bookable-api/internal/config"
	dbpkg "github.com/bookable/bookable-api/internal/db"
	"github.com/bookable/bookable-api/internal/notify"
	"github.com/bookable/bookable-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	queue := notify.NewRedisQueue(cfg.RedisAddr, cfg.EmailQueue)
	notifier := notify.NewDispatcher(queue)

	mailer := notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)
	worker := notify.NewWorker(queue, mailer)
	go worker.Run(context.Background())

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, notifier)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

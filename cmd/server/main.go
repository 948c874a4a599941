package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"event-calendar-api/config"
	"event-calendar-api/internal/database"
	"event-calendar-api/internal/handler"
	"event-calendar-api/internal/repository"
	"event-calendar-api/internal/service"
	"event-calendar-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	log := logger.WithComponent("main")

	if err := database.RunMigrations(&cfg.Database); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	eventRepo := repository.NewEventRepository(pool)
	eventService := service.NewEventService(eventRepo, service.Options{
		StrictMonthEnd:      cfg.Events.StrictMonthEnd,
		DayIncludeOpenEnded: cfg.Events.DayIncludeOpenEnded,
	})
	eventHandler := handler.NewEventHandler(eventService, cfg.Events.RequestTimeout)

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	eventHandler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()
	log.Info("Server started", zap.String("addr", cfg.Server.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	log.Info("Server stopped")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bill-printing-app/config"
	"github.com/yeremiapane/bill-printing-app/database"
	"github.com/yeremiapane/bill-printing-app/kds"
	"github.com/yeremiapane/bill-printing-app/mq"
	"github.com/yeremiapane/bill-printing-app/router"
	"github.com/yeremiapane/bill-printing-app/services"
	"github.com/yeremiapane/bill-printing-app/utils"
)

// app is the wired service: storage, event publishers and the HTTP router.
type app struct {
	router  *gin.Engine
	hub     *kds.Hub
	closers []func() error
}

func (a *app) Close() {
	a.hub.CloseAll()
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			utils.ErrorLogger.Printf("Error during shutdown: %v", err)
		}
	}
}

func newApp(cfg *config.Config) (*app, error) {
	db, err := config.InitDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	if err := database.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return nil, fmt.Errorf("failed to seed admin user: %w", err)
	}

	a := &app{hub: kds.NewHub()}
	if sqlDB, err := db.DB(); err == nil {
		a.closers = append(a.closers, sqlDB.Close)
	}

	publishers := services.Publishers{a.hub}
	if cfg.AMQPURL != "" {
		conn, ch, err := mq.SetupConn(cfg.AMQPURL, 5)
		if err != nil {
			// Events still reach the kitchen display without the broker.
			utils.ErrorLogger.Printf("Order events will not be sent to RabbitMQ: %v", err)
		} else {
			a.closers = append(a.closers, conn.Close, ch.Close)
			publishers = append(publishers, mq.NewPublisher(ch))
			utils.InfoLogger.Printf("Publishing order events to exchange %q", mq.ExchangeName)
		}
	}

	orderService := services.NewOrderService(
		database.NewCatalogStore(db),
		database.NewOrderStore(db),
		publishers,
	)

	a.router = router.SetupRouter(router.Deps{
		Config: cfg,
		DB:     db,
		Orders: orderService,
		Hub:    a.hub,
	})
	return a, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}
	utils.InitLoggerWithLevel(cfg.LogLevel)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	a, err := newApp(cfg)
	if err != nil {
		utils.ErrorLogger.Fatal(err)
	}
	defer a.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	<-ctx.Done()
	utils.InfoLogger.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.ErrorLogger.Printf("Server forced to shutdown: %v", err)
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/mark1um/bus-seat-manage-api/internal/cache"
	intconfig "github.com/mark1um/bus-seat-manage-api/internal/config"
	intdb "github.com/mark1um/bus-seat-manage-api/internal/db"
	router "github.com/mark1um/bus-seat-manage-api/internal/http"
	"github.com/mark1um/bus-seat-manage-api/internal/http/handlers"
	"github.com/mark1um/bus-seat-manage-api/internal/repositories"
	"github.com/mark1um/bus-seat-manage-api/internal/utils"
)

func main() {
	env, err := intconfig.LoadEnv()
	if err != nil {
		utils.Log.Fatalf("load config: %v", err)
	}
	utils.InitLogger(env.Log.Level, env.Log.Format, os.Stdout)
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	ctx := context.Background()

	conn, err := intconfig.ConnectDB(ctx, env.DB)
	if err != nil {
		utils.Log.Fatalf("connect database: %v", err)
	}
	defer conn.Close()
	utils.Log.Info("database connected")

	if env.DB.Migrate {
		if err := intdb.Migrate(conn); err != nil {
			utils.Log.Fatalf("migrate: %v", err)
		}
	}

	opts := router.Options{
		AuthRequired:   env.Auth.Required,
		AllowedOrigins: env.CORSAllowedOrigins,
	}

	var rdb *redis.Client
	if env.Redis.Addr != "" {
		rdb, err = cache.NewClient(ctx, cache.Config{
			Addr:     env.Redis.Addr,
			Password: env.Redis.Password,
			DB:       env.Redis.DB,
		})
		if err != nil {
			utils.Log.Fatalf("connect redis: %v", err)
		}
		defer rdb.Close()
		opts.Idempotency = rdb
		utils.Log.WithField("addr", env.Redis.Addr).Info("idempotency replay enabled")
	}

	handler := &handlers.Handler{
		DB:         conn,
		Trips:      repositories.TripsRepository{DB: conn},
		Passengers: repositories.PassengerRepository{DB: conn},
		Users:      repositories.UserRepository{DB: conn},
		JWTSecret:  []byte(env.Auth.JWTSecret),
	}
	r := router.NewRouter(handler, opts)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		utils.Log.Infof("server listening on %s (auth required: %t)", env.AppAddr, env.Auth.Required)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	utils.Log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Log.Errorf("server shutdown failed: %v", err)
		return
	}

	utils.Log.Info("server stopped cleanly")
}

package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/rimrim990/delivery-service/internal/auth"
	"github.com/rimrim990/delivery-service/internal/delivery"
	"github.com/rimrim990/delivery-service/internal/httpapi"
	"github.com/rimrim990/delivery-service/internal/obs"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	_ = godotenv.Load()

	obs.Init()
	obs.InitBuildInfo(version, commit)

	dsn := os.Getenv("DELIVERY_PG_DSN")
	if dsn == "" {
		log.Fatal("DELIVERY_PG_DSN is required")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	issuer, err := auth.NewTokenIssuer(
		mustEnv("DELIVERY_JWT_SECRET"),
		mustEnv("DELIVERY_JWT_REFRESH_SECRET"),
		envInt("DELIVERY_JWT_EXPIRE_MIN", 10),
		envInt("DELIVERY_JWT_REFRESH_EXPIRE_MIN", 30),
	)
	if err != nil {
		log.Fatalf("token issuer: %v", err)
	}

	authSvc := auth.NewService(auth.NewPGUserStore(db), issuer)
	deliverySvc := delivery.NewService(delivery.NewPGStore(db))
	api := httpapi.New(authSvc, deliverySvc, httpapi.ReadyProbe{DB: db}, version)

	addr := os.Getenv("DELIVERY_HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting delivery-api %s on %s", version, srv.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	_ = db.Close()
	log.Println("Stopped")
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("%s is required", key)
	}
	return v
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}
	return n
}

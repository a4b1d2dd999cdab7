package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benhagg/cineniche/internal/infra/backendmock"
)

func main() {
	addr := getEnv("MOCK_API_ADDR", ":5232")
	secret := getEnv("MOCK_API_JWT_SECRET", "dev-only-secret")

	server := &http.Server{
		Addr:    addr,
		Handler: backendmock.New(secret).Router(),
	}

	go func() {
		log.Printf("mock API serving on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("mock API stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down mock API...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(ctx)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

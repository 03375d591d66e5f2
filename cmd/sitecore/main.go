package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ventrox/sitecore"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("sitecore: load .env: %v", err)
	}

	app := sitecore.New(sitecore.ConfigFromEnv())

	go func() {
		if err := app.Start(); err != nil {
			log.Fatalf("sitecore: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Shutdown(ctx); err != nil {
		log.Printf("sitecore: shutdown: %v", err)
	}
	if err := app.Close(); err != nil {
		log.Printf("sitecore: close store: %v", err)
	}
}

// main.go
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"go-storefront/config"
	"go-storefront/database"
	"go-storefront/graph"
	"go-storefront/routes"
	"go-storefront/utils"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if cfg.JWTSecret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to MongoDB
	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("failed to disconnect from database", "error", err)
		}
	}()

	store := database.NewMongo(client, cfg.MongoDatabase)
	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Error("failed to create indexes", "error", err)
		os.Exit(1)
	}

	mailer, err := utils.NewMailer(cfg)
	if err != nil {
		logger.Error("failed to initialize mailer", "error", err)
		os.Exit(1)
	}
	gateway := utils.NewStripeGateway(cfg)

	// Build the GraphQL schema around the root resolver
	resolver := graph.NewResolver(store, mailer, gateway, cfg, logger)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		logger.Error("failed to build schema", "error", err)
		os.Exit(1)
	}

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, schema, []byte(cfg.JWTSecret))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")
		cancel()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("error shutting down server", "error", err)
		}
	}()

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

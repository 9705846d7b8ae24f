package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"medcost-api/internal"
	"medcost-api/internal/auth"
	"medcost-api/internal/contacts"
	"medcost-api/internal/predict"
	"medcost-api/internal/users"
	"medcost-api/web"
)

func main() {
	log.SetFormatter(&log.TextFormatter{})

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	cfg, err := internal.LoadConfig()
	if err != nil {
		log.Warnf("configuration: %v (using defaults for those values)", err)
	}
	if err = internal.SetupLogging(cfg); err != nil {
		log.Errorf("log file: %v", err)
	}

	// connect to database; failures leave the API up in degraded mode
	database := &internal.DatabaseConnection{
		URI:     cfg.MongoURI,
		DB:      cfg.DB,
		Timeout: cfg.DBTimeout,
		Logger:  log.StandardLogger(),
	}
	if err = database.Connect(context.Background()); err != nil {
		log.Errorf("Failed to connect to database %s: %v", cfg.DB, err)
	} else if err = database.EnsureIndexes(context.Background()); err != nil {
		log.Errorf("Failed to ensure indexes: %v", err)
	}

	accounts := auth.NewService(users.NewRepository(database.MongoDB, cfg.DBTimeout))
	contactSvc := contacts.NewService(contacts.NewRepository(database.MongoDB, cfg.DBTimeout))
	predictor := predict.NewClient(cfg.PredictURL, cfg.PredictTimeout)

	r := web.NewRouter(accounts, contactSvc, predictor)
	r.DB = database
	r.CORSOrigins = cfg.CORSOrigins
	r.Init()

	done := handleSignals(r, database, cfg)

	log.Infof("Listening on %s", cfg.Listen)
	if err = r.Listen(cfg.Listen); err != nil {
		log.Error(err)
		return
	}
	<-done
}

// handleSignals shuts the server down on SIGINT/SIGTERM. The returned
// channel is closed once shutdown has finished.
func handleSignals(r *web.Router, database *internal.DatabaseConnection, cfg internal.Config) <-chan struct{} {
	done := make(chan struct{})
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer close(done)
		<-signals
		shutdown(r, database, cfg)
	}()
	return done
}

func shutdown(r *web.Router, database *internal.DatabaseConnection, cfg internal.Config) {
	fmt.Println()
	log.Warn("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := r.Shutdown(ctx); err != nil {
		log.Errorf("http shutdown: %v", err)
	}
	if err := database.Disconnect(ctx); err != nil {
		log.Errorf("database disconnect: %v", err)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/envelope-budget/backend/internal/controllers"
	"github.com/envelope-budget/backend/internal/models"
	"github.com/envelope-budget/backend/internal/router"
	"github.com/envelope-budget/backend/internal/store"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// A .env file is optional, the environment always takes precedence
	_ = godotenv.Load()

	port, ok := os.LookupEnv("PORT")
	if !ok {
		port = "3000"
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		apiURL = fmt.Sprintf("http://localhost:%s", port)
	}

	url, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Str("API_URL", apiURL).Msg("environment variable API_URL must be a valid URL")
	}

	r, teardown, err := router.Config(url)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	dsn, ok := os.LookupEnv("DB_PATH")
	if !ok {
		dsn = filepath.Join("data", "budget.db")
	}

	// Create the directory for the database file
	if dsn != ":memory:" {
		err = os.MkdirAll(filepath.Dir(dsn), os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	db, err := models.Connect(dsn)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(controllers.Controller{Store: store.New(db)}, r.Group("/"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("listen: %s", err)
		}
	}()
	log.Info().Str("port", port).Str("database", dsn).Msg("backend startup complete")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	if err := models.Close(db); err != nil {
		log.Error().Err(err).Msg("Could not close database")
	}

	log.Info().Msg("Server exiting")
}

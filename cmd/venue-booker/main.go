package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"venueBooker/internal/config"
	"venueBooker/internal/http-server/handlers/artist/createArtist"
	"venueBooker/internal/http-server/handlers/artist/editArtist"
	"venueBooker/internal/http-server/handlers/artist/getArtist"
	"venueBooker/internal/http-server/handlers/artist/listArtists"
	"venueBooker/internal/http-server/handlers/artist/searchArtists"
	"venueBooker/internal/http-server/handlers/fallback"
	"venueBooker/internal/http-server/handlers/home"
	"venueBooker/internal/http-server/handlers/show/createShow"
	"venueBooker/internal/http-server/handlers/show/listShows"
	"venueBooker/internal/http-server/handlers/venue/createVenue"
	"venueBooker/internal/http-server/handlers/venue/deleteVenue"
	"venueBooker/internal/http-server/handlers/venue/editVenue"
	"venueBooker/internal/http-server/handlers/venue/getVenue"
	"venueBooker/internal/http-server/handlers/venue/listVenues"
	"venueBooker/internal/http-server/handlers/venue/searchVenues"
	"venueBooker/internal/http-server/middleware/mwlogger"
	"venueBooker/internal/lib/logger/handlers/slogpretty"
	"venueBooker/internal/lib/logger/sl"
	"venueBooker/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const serviceName = "Fyyur"

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting venue booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := newRouter(log, storage)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func newRouter(log *slog.Logger, storage *postgres.Storage) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.NotFound(fallback.NotFound)
	router.MethodNotAllowed(fallback.MethodNotAllowed)

	router.Get("/", home.New(serviceName))

	router.Route("/venues", func(r chi.Router) {
		r.Get("/", listVenues.New(log, storage))
		r.Post("/search", searchVenues.New(log, storage))
		r.Get("/create", createVenue.NewForm(log))
		r.Post("/create", createVenue.New(log, storage))
		r.Get("/{id}", getVenue.New(log, storage))
		r.Delete("/{id}", deleteVenue.New(log, storage))
		r.Get("/{id}/edit", editVenue.NewForm(log, storage))
		r.Post("/{id}/edit", editVenue.New(log, storage))
	})

	router.Route("/artists", func(r chi.Router) {
		r.Get("/", listArtists.New(log, storage))
		r.Post("/search", searchArtists.New(log, storage))
		r.Get("/create", createArtist.NewForm(log))
		r.Post("/create", createArtist.New(log, storage))
		r.Get("/{id}", getArtist.New(log, storage))
		r.Get("/{id}/edit", editArtist.NewForm(log, storage))
		r.Post("/{id}/edit", editArtist.New(log, storage))
	})

	router.Route("/shows", func(r chi.Router) {
		r.Get("/", listShows.New(log, storage))
		r.Get("/create", createShow.NewForm(log))
		r.Post("/create", createShow.New(log, storage))
	})

	return router
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}

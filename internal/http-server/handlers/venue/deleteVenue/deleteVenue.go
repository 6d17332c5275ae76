package deleteVenue

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"venueBooker/internal/lib/api/request"
	"venueBooker/internal/lib/api/response"
	"venueBooker/internal/lib/flash"
	"venueBooker/internal/lib/logger/sl"
	"venueBooker/internal/storage"
	"venueBooker/internal/views"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueDeleter
type VenueDeleter interface {
	DeleteVenue(ctx context.Context, id int64) error
}

// New removes a venue and its shows.
func New(log *slog.Logger, deleter VenueDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.deleteVenue.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := request.ID(r, "id")
		if err != nil {
			log.Error("invalid venue id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid venue id"))

			return
		}

		log = log.With(slog.Int64("venue_id", id))

		err = deleter.DeleteVenue(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("venue not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("venue not found"))

			return
		}
		if err != nil {
			log.Error("failed to delete venue", sl.Err(err))
			flash.Write(w, flash.Failure(views.VenueNotDeleted))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(views.VenueNotDeleted))

			return
		}

		log.Info("venue deleted")

		flash.Write(w, flash.Success(views.VenueDeleted))
		w.Header().Set("Location", "/")
		render.JSON(w, r, response.Success(views.VenueDeleted))
	}
}

package getVenue

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"venueBooker/internal/lib/api/request"
	"venueBooker/internal/lib/api/response"
	"venueBooker/internal/lib/datefmt"
	"venueBooker/internal/lib/flash"
	"venueBooker/internal/lib/logger/sl"
	"venueBooker/internal/models"
	"venueBooker/internal/storage"
	"venueBooker/internal/views"
)

type VenueResponse struct {
	response.Response
	Venue views.VenueDetail `json:"venue"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueGetter
type VenueGetter interface {
	GetVenue(ctx context.Context, id int64) (*models.Venue, error)
}

// New serves a venue with its shows split around the current time. Show
// times are rendered in the format named by the datetime query parameter.
func New(log *slog.Logger, getter VenueGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.getVenue.New"

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

		venue, err := getter.GetVenue(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("venue not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("venue not found"))

			return
		}
		if err != nil {
			log.Error("failed to get venue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get venue"))

			return
		}

		format := datefmt.Keyword(r.URL.Query().Get("datetime"), datefmt.Short)

		responseOK(w, r, flash.Pop(w, r), views.NewVenueDetail(venue, time.Now(), format))
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, notice *flash.Notice, venue views.VenueDetail) {
	render.JSON(w, r, VenueResponse{
		Response: response.OK().WithFlash(notice),
		Venue:    venue,
	})
}

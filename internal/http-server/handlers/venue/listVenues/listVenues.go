package listVenues

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"venueBooker/internal/lib/api/response"
	"venueBooker/internal/lib/flash"
	"venueBooker/internal/lib/logger/sl"
	"venueBooker/internal/models"
	"venueBooker/internal/views"
)

type VenuesResponse struct {
	response.Response
	Areas []views.Area `json:"areas"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenuesGetter
type VenuesGetter interface {
	ListVenues(ctx context.Context) ([]models.Venue, error)
}

func New(log *slog.Logger, getter VenuesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.listVenues.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		venues, err := getter.ListVenues(r.Context())
		if err != nil {
			log.Error("failed to list venues", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list venues"))

			return
		}

		areas := views.GroupVenuesByArea(venues, time.Now())

		log.Info("venues listed", slog.Int("areas", len(areas)))

		responseOK(w, r, flash.Pop(w, r), areas)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, notice *flash.Notice, areas []views.Area) {
	render.JSON(w, r, VenuesResponse{
		Response: response.OK().WithFlash(notice),
		Areas:    areas,
	})
}

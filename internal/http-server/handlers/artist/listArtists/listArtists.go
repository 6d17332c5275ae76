package listArtists

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"venueBooker/internal/lib/api/response"
	"venueBooker/internal/lib/flash"
	"venueBooker/internal/lib/logger/sl"
	"venueBooker/internal/models"
	"venueBooker/internal/views"
)

type ArtistsResponse struct {
	response.Response
	Artists []views.ArtistListItem `json:"artists"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistsGetter
type ArtistsGetter interface {
	ListArtists(ctx context.Context) ([]models.Artist, error)
}

func New(log *slog.Logger, getter ArtistsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.listArtists.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		artists, err := getter.ListArtists(r.Context())
		if err != nil {
			log.Error("failed to list artists", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list artists"))

			return
		}

		log.Info("artists listed", slog.Int("count", len(artists)))

		responseOK(w, r, flash.Pop(w, r), views.ListArtists(artists))
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, notice *flash.Notice, artists []views.ArtistListItem) {
	render.JSON(w, r, ArtistsResponse{
		Response: response.OK().WithFlash(notice),
		Artists:  artists,
	})
}

package getArtist

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

type ArtistResponse struct {
	response.Response
	Artist views.ArtistDetail `json:"artist"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistGetter
type ArtistGetter interface {
	GetArtist(ctx context.Context, id int64) (*models.Artist, error)
}

// New serves an artist with its shows split around the current time. Show
// times are rendered in the format named by the datetime query parameter.
func New(log *slog.Logger, getter ArtistGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.getArtist.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := request.ID(r, "id")
		if err != nil {
			log.Error("invalid artist id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid artist id"))

			return
		}

		log = log.With(slog.Int64("artist_id", id))

		artist, err := getter.GetArtist(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("artist not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("artist not found"))

			return
		}
		if err != nil {
			log.Error("failed to get artist", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get artist"))

			return
		}

		format := datefmt.Keyword(r.URL.Query().Get("datetime"), datefmt.Short)

		responseOK(w, r, flash.Pop(w, r), views.NewArtistDetail(artist, time.Now(), format))
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, notice *flash.Notice, artist views.ArtistDetail) {
	render.JSON(w, r, ArtistResponse{
		Response: response.OK().WithFlash(notice),
		Artist:   artist,
	})
}

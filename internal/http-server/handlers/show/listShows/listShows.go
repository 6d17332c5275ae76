package listShows

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"venueBooker/internal/lib/api/response"
	"venueBooker/internal/lib/datefmt"
	"venueBooker/internal/lib/flash"
	"venueBooker/internal/lib/logger/sl"
	"venueBooker/internal/models"
	"venueBooker/internal/views"
)

type ShowsResponse struct {
	response.Response
	Shows []views.ShowListing `json:"shows"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ShowsGetter
type ShowsGetter interface {
	ListShows(ctx context.Context) ([]models.Show, error)
}

func New(log *slog.Logger, getter ShowsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.show.listShows.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		shows, err := getter.ListShows(r.Context())
		if err != nil {
			log.Error("failed to list shows", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list shows"))

			return
		}

		format := datefmt.Keyword(r.URL.Query().Get("datetime"), datefmt.Short)

		log.Info("shows listed", slog.Int("count", len(shows)))

		responseOK(w, r, flash.Pop(w, r), views.ListShows(shows, format))
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, notice *flash.Notice, shows []views.ShowListing) {
	render.JSON(w, r, ShowsResponse{
		Response: response.OK().WithFlash(notice),
		Shows:    shows,
	})
}

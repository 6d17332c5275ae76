package searchArtists

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"venueBooker/internal/forms"
	"venueBooker/internal/lib/api/request"
	"venueBooker/internal/lib/api/response"
	"venueBooker/internal/lib/logger/sl"
	"venueBooker/internal/models"
	"venueBooker/internal/views"
)

type SearchResponse struct {
	response.Response
	SearchTerm string              `json:"search_term"`
	Results    views.SearchResults `json:"results"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistSearcher
type ArtistSearcher interface {
	SearchArtists(ctx context.Context, term string) ([]models.Artist, error)
}

func New(log *slog.Logger, searcher ArtistSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.searchArtists.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req forms.SearchForm

		if err := request.Decode(r, &req); err != nil && !errors.Is(err, request.ErrEmptyBody) {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		artists, err := searcher.SearchArtists(r.Context(), req.SearchTerm)
		if err != nil {
			log.Error("failed to search artists", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to search artists"))

			return
		}

		results := views.SearchArtists(artists, time.Now())

		log.Info("artists searched", slog.String("term", req.SearchTerm), slog.Int("count", results.Count))

		responseOK(w, r, req.SearchTerm, results)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, term string, results views.SearchResults) {
	render.JSON(w, r, SearchResponse{
		Response:   response.OK(),
		SearchTerm: term,
		Results:    results,
	})
}

package createArtist

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"venueBooker/internal/forms"
	"venueBooker/internal/lib/api/request"
	"venueBooker/internal/lib/api/response"
	"venueBooker/internal/lib/flash"
	"venueBooker/internal/lib/logger/sl"
	"venueBooker/internal/models"
	"venueBooker/internal/views"
)

type ArtistResponse struct {
	response.Response
	ArtistID int64 `json:"artist_id"`
}

type FormResponse struct {
	response.Response
	Form    forms.ArtistForm `json:"form"`
	Choices forms.Choices    `json:"choices"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistCreator
type ArtistCreator interface {
	CreateArtist(ctx context.Context, artist *models.Artist) (int64, error)
}

func NewForm(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.createArtist.NewForm"

		log.Debug("artist form requested",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		render.JSON(w, r, FormResponse{
			Response: response.OK(),
			Form:     forms.ArtistForm{Genres: []string{}},
			Choices:  forms.DefaultChoices(),
		})
	}
}

// New lists a new artist. Artist names are not required to be unique.
func New(log *slog.Logger, creator ArtistCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.createArtist.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req forms.ArtistForm

		if err := request.Decode(r, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err := forms.Validate(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		id, err := creator.CreateArtist(r.Context(), req.Artist(0))
		if err != nil {
			log.Error("failed to add artist", sl.Err(err))

			msg := views.ArtistNotListed(req.Name)
			flash.Write(w, flash.Failure(msg))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(msg))

			return
		}

		log.Info("artist added", slog.Int64("id", id))

		responseOK(w, r, id, views.ArtistListed(req.Name))
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, id int64, msg string) {
	flash.Write(w, flash.Success(msg))
	w.Header().Set("Location", "/")

	render.JSON(w, r, ArtistResponse{
		Response: response.Success(msg),
		ArtistID: id,
	})
}

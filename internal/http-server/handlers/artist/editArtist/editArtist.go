package editArtist

import (
	"context"
	"errors"
	"fmt"
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
	"venueBooker/internal/storage"
	"venueBooker/internal/views"
)

type FormResponse struct {
	response.Response
	ArtistID int64            `json:"artist_id"`
	Form     forms.ArtistForm `json:"form"`
	Choices  forms.Choices    `json:"choices"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistEditor
type ArtistEditor interface {
	GetArtist(ctx context.Context, id int64) (*models.Artist, error)
	UpdateArtist(ctx context.Context, artist *models.Artist) error
}

func NewForm(log *slog.Logger, editor ArtistEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.editArtist.NewForm"

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

		artist, err := editor.GetArtist(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("artist not found", slog.Int64("artist_id", id))
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

		render.JSON(w, r, FormResponse{
			Response: response.OK(),
			ArtistID: artist.ID,
			Form:     forms.ArtistFormFrom(artist),
			Choices:  forms.DefaultChoices(),
		})
	}
}

func New(log *slog.Logger, editor ArtistEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.editArtist.New"

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

		var req forms.ArtistForm

		if err := request.Decode(r, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		if err := forms.Validate(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		err = editor.UpdateArtist(r.Context(), req.Artist(id))
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("artist not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("artist not found"))

			return
		}
		if err != nil {
			log.Error("failed to update artist", sl.Err(err))

			msg := views.ArtistNotUpdated(req.Name)
			flash.Write(w, flash.Failure(msg))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(msg))

			return
		}

		log.Info("artist updated")

		msg := views.ArtistUpdated(req.Name)
		flash.Write(w, flash.Success(msg))
		w.Header().Set("Location", fmt.Sprintf("/artists/%d", id))
		render.JSON(w, r, response.Success(msg))
	}
}

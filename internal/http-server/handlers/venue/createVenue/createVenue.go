package createVenue

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
	"venueBooker/internal/storage"
	"venueBooker/internal/views"
)

type VenueResponse struct {
	response.Response
	VenueID int64 `json:"venue_id"`
}

type FormResponse struct {
	response.Response
	Form    forms.VenueForm `json:"form"`
	Choices forms.Choices   `json:"choices"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueCreator
type VenueCreator interface {
	CreateVenue(ctx context.Context, venue *models.Venue) (int64, error)
}

// NewForm serves an empty venue form together with the allowed choices.
func NewForm(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.createVenue.NewForm"

		log.Debug("venue form requested",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		render.JSON(w, r, FormResponse{
			Response: response.OK(),
			Form:     forms.VenueForm{Genres: []string{}},
			Choices:  forms.DefaultChoices(),
		})
	}
}

func New(log *slog.Logger, creator VenueCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.createVenue.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req forms.VenueForm

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

		id, err := creator.CreateVenue(r.Context(), req.Venue(0))
		if errors.Is(err, storage.ErrVenueExists) {
			log.Info("venue already exists", slog.String("name", req.Name), slog.String("city", req.City))
			responseError(w, r, http.StatusConflict, views.VenueExists(req.Name))

			return
		}
		if err != nil {
			log.Error("failed to add venue", sl.Err(err))
			responseError(w, r, http.StatusInternalServerError, views.VenueNotListed(req.Name))

			return
		}

		log.Info("venue added", slog.Int64("id", id))

		responseOK(w, r, id, views.VenueListed(req.Name))
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, id int64, msg string) {
	flash.Write(w, flash.Success(msg))
	w.Header().Set("Location", "/")

	render.JSON(w, r, VenueResponse{
		Response: response.Success(msg),
		VenueID:  id,
	})
}

func responseError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	flash.Write(w, flash.Failure(msg))

	render.Status(r, status)
	render.JSON(w, r, response.Error(msg))
}

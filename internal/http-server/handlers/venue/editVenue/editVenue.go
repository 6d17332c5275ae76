package editVenue

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
	VenueID int64           `json:"venue_id"`
	Form    forms.VenueForm `json:"form"`
	Choices forms.Choices   `json:"choices"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueEditor
type VenueEditor interface {
	GetVenue(ctx context.Context, id int64) (*models.Venue, error)
	UpdateVenue(ctx context.Context, venue *models.Venue) error
}

// NewForm serves the edit form prefilled with the stored venue.
func NewForm(log *slog.Logger, editor VenueEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.editVenue.NewForm"

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

		venue, err := editor.GetVenue(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("venue not found", slog.Int64("venue_id", id))
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

		render.JSON(w, r, FormResponse{
			Response: response.OK(),
			VenueID:  venue.ID,
			Form:     forms.VenueFormFrom(venue),
			Choices:  forms.DefaultChoices(),
		})
	}
}

// New overwrites every editable field of the venue with the submission.
func New(log *slog.Logger, editor VenueEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.editVenue.New"

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

		var req forms.VenueForm

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

		err = editor.UpdateVenue(r.Context(), req.Venue(id))
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Info("venue not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("venue not found"))

			return
		case errors.Is(err, storage.ErrVenueExists):
			log.Info("venue already exists", slog.String("name", req.Name), slog.String("city", req.City))
			responseError(w, r, http.StatusConflict, views.VenueExists(req.Name))

			return
		case err != nil:
			log.Error("failed to update venue", sl.Err(err))
			responseError(w, r, http.StatusInternalServerError, views.VenueNotUpdated(req.Name))

			return
		}

		log.Info("venue updated")

		responseOK(w, r, id, views.VenueUpdated(req.Name))
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, id int64, msg string) {
	flash.Write(w, flash.Success(msg))
	w.Header().Set("Location", fmt.Sprintf("/venues/%d", id))

	render.JSON(w, r, response.Success(msg))
}

func responseError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	flash.Write(w, flash.Failure(msg))

	render.Status(r, status)
	render.JSON(w, r, response.Error(msg))
}

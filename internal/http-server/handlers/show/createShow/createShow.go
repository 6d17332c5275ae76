package createShow

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

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

// startTimeLayout prefills the form and is accepted back on submit.
const startTimeLayout = "2006-01-02 15:04:05"

type ShowResponse struct {
	response.Response
	ShowID int64 `json:"show_id"`
}

type FormResponse struct {
	response.Response
	Form forms.ShowForm `json:"form"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ShowCreator
type ShowCreator interface {
	CreateShow(ctx context.Context, show *models.Show) (*models.Show, error)
}

// NewForm serves an empty show form whose start time defaults to now.
func NewForm(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.show.createShow.NewForm"

		log.Debug("show form requested",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		render.JSON(w, r, FormResponse{
			Response: response.OK(),
			Form:     forms.ShowForm{StartTime: time.Now().UTC().Format(startTimeLayout)},
		})
	}
}

func New(log *slog.Logger, creator ShowCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.show.createShow.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req forms.ShowForm

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

		show, err := req.Show()
		if err != nil {
			log.Error("invalid start time", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("field StartTime is not a valid datetime"))

			return
		}

		created, err := creator.CreateShow(r.Context(), show)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, storage.ErrNotFound) {
				status = http.StatusNotFound
			}

			log.Error("failed to add show", sl.Err(err))
			flash.Write(w, flash.Failure(views.ShowNotListed))
			render.Status(r, status)
			render.JSON(w, r, response.Error(views.ShowNotListed))

			return
		}

		log.Info("show added", slog.Int64("id", created.ID))

		responseOK(w, r, created)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, show *models.Show) {
	msg := views.ShowListed(show)

	flash.Write(w, flash.Success(msg))
	w.Header().Set("Location", "/")

	render.JSON(w, r, ShowResponse{
		Response: response.Success(msg),
		ShowID:   show.ID,
	})
}

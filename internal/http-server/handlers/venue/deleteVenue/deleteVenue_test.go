package deleteVenue

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"venueBooker/internal/http-server/handlers/venue/deleteVenue/mocks"
	"venueBooker/internal/lib/flash"
	"venueBooker/internal/lib/logger/handlers/slogdiscard"
	"venueBooker/internal/storage"
)

func TestDeleteVenueHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		venueID        string
		mockSetup      func(m *mocks.VenueDeleter)
		expectedStatus int
		expectedBody   string
		expectedFlash  bool
	}{
		{
			name:    "Success",
			venueID: "2",
			mockSetup: func(m *mocks.VenueDeleter) {
				m.On("DeleteVenue", mock.Anything, int64(2)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"Venue was successfully deleted."}`,
			expectedFlash:  true,
		},
		{
			name:    "Venue not found",
			venueID: "2",
			mockSetup: func(m *mocks.VenueDeleter) {
				m.On("DeleteVenue", mock.Anything, int64(2)).
					Return(fmt.Errorf("storage.postgres.DeleteVenue: %w", storage.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"venue not found"}`,
		},
		{
			name:    "Storage failure",
			venueID: "2",
			mockSetup: func(m *mocks.VenueDeleter) {
				m.On("DeleteVenue", mock.Anything, int64(2)).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"An error occurred. Venue could not be deleted."}`,
			expectedFlash:  true,
		},
		{
			name:           "Invalid venue id",
			venueID:        "x",
			mockSetup:      func(m *mocks.VenueDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid venue id"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			deleter := mocks.NewVenueDeleter(t)
			tc.mockSetup(deleter)

			router := chi.NewRouter()
			router.Delete("/venues/{id}", New(logger, deleter))

			req := httptest.NewRequest(http.MethodDelete, "/venues/"+tc.venueID, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")

			var hasFlash bool
			for _, c := range rr.Result().Cookies() {
				hasFlash = hasFlash || c.Name == flash.CookieName
			}
			assert.Equal(t, tc.expectedFlash, hasFlash)
		})
	}
}

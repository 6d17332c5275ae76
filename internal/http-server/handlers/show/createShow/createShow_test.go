package createShow

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"venueBooker/internal/http-server/handlers/show/createShow/mocks"
	"venueBooker/internal/lib/flash"
	"venueBooker/internal/lib/logger/handlers/slogdiscard"
	"venueBooker/internal/models"
	"venueBooker/internal/storage"
)

func TestCreateShowHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	isShow := mock.MatchedBy(func(s *models.Show) bool {
		return s.ArtistID == 6 && s.VenueID == 3 && s.StartTime.Equal(start)
	})
	stored := &models.Show{
		ID:        5,
		VenueID:   3,
		ArtistID:  6,
		StartTime: start,
		Venue:     &models.Venue{ID: 3, Name: "Park Square Live Music & Coffee"},
		Artist:    &models.Artist{ID: 6, Name: "The Wild Sax Band"},
	}
	listed := "Show by The Wild Sax Band on 01/04/2035, 20:00 at Park Square Live Music & Coffee has been listed successfully!"

	testCases := []struct {
		name             string
		contentType      string
		requestBody      string
		mockSetup        func(m *mocks.ShowCreator)
		expectedStatus   int
		expectedBody     string
		expectedFlash    *flash.Notice
		expectedLocation string
	}{
		{
			name:        "Success from form",
			contentType: "application/x-www-form-urlencoded",
			requestBody: "artist_id=6&venue_id=3&start_time=2035-04-01+20%3A00%3A00",
			mockSetup: func(m *mocks.ShowCreator) {
				m.On("CreateShow", mock.Anything, isShow).Return(stored, nil)
			},
			expectedStatus:   http.StatusOK,
			expectedBody:     fmt.Sprintf(`{"status":"OK","message":%q,"show_id":5}`, listed),
			expectedFlash:    &flash.Notice{Kind: flash.KindSuccess, Message: listed},
			expectedLocation: "/",
		},
		{
			name:        "Success from JSON",
			contentType: "application/json",
			requestBody: `{"artist_id":6,"venue_id":3,"start_time":"2035-04-01T20:00:00Z"}`,
			mockSetup: func(m *mocks.ShowCreator) {
				m.On("CreateShow", mock.Anything, isShow).Return(stored, nil)
			},
			expectedStatus:   http.StatusOK,
			expectedBody:     fmt.Sprintf(`{"status":"OK","message":%q,"show_id":5}`, listed),
			expectedLocation: "/",
		},
		{
			name:        "Unknown artist or venue",
			contentType: "application/x-www-form-urlencoded",
			requestBody: "artist_id=6&venue_id=3&start_time=2035-04-01+20%3A00%3A00",
			mockSetup: func(m *mocks.ShowCreator) {
				m.On("CreateShow", mock.Anything, isShow).
					Return(nil, fmt.Errorf("storage.postgres.CreateShow: %w", storage.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"An error occurred. Show could not be listed."}`,
			expectedFlash:  &flash.Notice{Kind: flash.KindError, Message: "An error occurred. Show could not be listed."},
		},
		{
			name:        "Storage failure",
			contentType: "application/x-www-form-urlencoded",
			requestBody: "artist_id=6&venue_id=3&start_time=2035-04-01+20%3A00%3A00",
			mockSetup: func(m *mocks.ShowCreator) {
				m.On("CreateShow", mock.Anything, isShow).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"An error occurred. Show could not be listed."}`,
		},
		{
			name:           "Unparseable start time",
			contentType:    "application/x-www-form-urlencoded",
			requestBody:    "artist_id=6&venue_id=3&start_time=next+friday",
			mockSetup:      func(m *mocks.ShowCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field StartTime is not a valid datetime"}`,
		},
		{
			name:           "Non numeric artist id",
			contentType:    "application/x-www-form-urlencoded",
			requestBody:    "artist_id=six&venue_id=3&start_time=2035-04-01+20%3A00%3A00",
			mockSetup:      func(m *mocks.ShowCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing ids",
			contentType:    "application/x-www-form-urlencoded",
			requestBody:    "start_time=2035-04-01+20%3A00%3A00",
			mockSetup:      func(m *mocks.ShowCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field ArtistID is a required field, field VenueID is a required field"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			creator := mocks.NewShowCreator(t)
			tc.mockSetup(creator)

			req := httptest.NewRequest(http.MethodPost, "/shows/create", strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", tc.contentType)

			rr := httptest.NewRecorder()
			New(logger, creator).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			assert.Equal(t, tc.expectedLocation, rr.Header().Get("Location"))

			if tc.expectedFlash != nil {
				req := httptest.NewRequest(http.MethodGet, "/shows", nil)
				for _, c := range rr.Result().Cookies() {
					req.AddCookie(c)
				}

				notice, ok := flash.ReadAndClear(httptest.NewRecorder(), req)
				require.True(t, ok)
				assert.Equal(t, *tc.expectedFlash, notice)
			}
		})
	}
}

func TestNewFormDefaultsStartTime(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC().Truncate(time.Second)

	req := httptest.NewRequest(http.MethodGet, "/shows/create", nil)
	rr := httptest.NewRecorder()

	NewForm(slogdiscard.NewDiscardLogger()).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp FormResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	start, err := time.Parse(startTimeLayout, resp.Form.StartTime)
	require.NoError(t, err)
	assert.False(t, start.Before(before))
	assert.WithinDuration(t, before, start, time.Minute)
	assert.Zero(t, resp.Form.ArtistID)
}

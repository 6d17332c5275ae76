package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"venueBooker/internal/lib/logger/handlers/slogdiscard"
	"venueBooker/internal/models"
	"venueBooker/internal/storage/postgres"
)

type client struct {
	t       *testing.T
	handler http.Handler
	cookies []*http.Cookie
}

func newClient(t *testing.T) *client {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	for _, model := range []any{(*models.Venue)(nil), (*models.Artist)(nil), (*models.Show)(nil)} {
		_, err = db.NewCreateTable().Model(model).Exec(context.Background())
		require.NoError(t, err)
	}

	storage := postgres.New(db)
	t.Cleanup(func() { _ = storage.Close() })

	return &client{t: t, handler: newRouter(slogdiscard.NewDiscardLogger(), storage)}
}

// do sends the request carrying the cookies of earlier responses, like a
// browser would.
func (c *client) do(method, path string, form url.Values) (*httptest.ResponseRecorder, map[string]any) {
	c.t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	rr := httptest.NewRecorder()
	c.handler.ServeHTTP(rr, req)

	if set := rr.Result().Cookies(); len(set) > 0 {
		c.cookies = nil
		for _, cookie := range set {
			if cookie.MaxAge >= 0 {
				c.cookies = append(c.cookies, cookie)
			}
		}
	}

	var body map[string]any
	require.NoError(c.t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())

	return rr, body
}

func TestBookingFlow(t *testing.T) {
	c := newClient(t)

	rr, body := c.do(http.MethodGet, "/venues/create", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, body, "choices")

	rr, body = c.do(http.MethodPost, "/venues/create", url.Values{
		"name":           {"The Musical Hop"},
		"genres":         {"Jazz", "Reggae"},
		"address":        {"1015 Folsom Street"},
		"city":           {"San Francisco"},
		"state":          {"CA"},
		"seeking_talent": {"y"},
	})
	require.Equal(t, http.StatusOK, rr.Code, body)
	assert.Equal(t, "Venue The Musical Hop was successfully listed!", body["message"])
	assert.Equal(t, "/", rr.Header().Get("Location"))

	rr, body = c.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]any{"kind": "success", "message": "Venue The Musical Hop was successfully listed!"}, body["flash"])

	_, body = c.do(http.MethodGet, "/", nil)
	assert.NotContains(t, body, "flash")

	rr, body = c.do(http.MethodPost, "/venues/create", url.Values{
		"name":    {"The Musical Hop"},
		"genres":  {"Blues"},
		"address": {"2 Other Street"},
		"city":    {"San Francisco"},
		"state":   {"CA"},
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "Venue The Musical Hop already exists", body["error"])

	rr, _ = c.do(http.MethodPost, "/artists/create", url.Values{
		"name":   {"Guns N Petals"},
		"genres": {"Rock n Roll"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr, body = c.do(http.MethodPost, "/shows/create", url.Values{
		"artist_id":  {"1"},
		"venue_id":   {"1"},
		"start_time": {"2099-05-21 21:30:00"},
	})
	require.Equal(t, http.StatusOK, rr.Code, body)
	assert.Equal(t, "Show by Guns N Petals on 21/05/2099, 21:30 at The Musical Hop has been listed successfully!", body["message"])

	rr, body = c.do(http.MethodGet, "/venues", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	areas := body["areas"].([]any)
	require.Len(t, areas, 1)
	venues := areas[0].(map[string]any)["venues"].([]any)
	assert.Equal(t, float64(1), venues[0].(map[string]any)["num_upcoming_shows"])

	rr, body = c.do(http.MethodPost, "/venues/search", url.Values{"search_term": {"hop"}})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(1), body["results"].(map[string]any)["count"])

	rr, body = c.do(http.MethodGet, "/artists/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(1), body["artist"].(map[string]any)["upcoming_shows_count"])

	rr, _ = c.do(http.MethodDelete, "/venues/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr, _ = c.do(http.MethodGet, "/venues/1", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	_, body = c.do(http.MethodGet, "/shows", nil)
	assert.Empty(t, body["shows"])
}

func TestRouterFallbacks(t *testing.T) {
	c := newClient(t)

	rr, body := c.do(http.MethodGet, "/bookings", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Error", body["status"])

	rr, _ = c.do(http.MethodPut, "/venues/1", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr, _ = c.do(http.MethodDelete, "/artists/1", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

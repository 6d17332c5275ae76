package home

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"venueBooker/internal/lib/flash"
)

func TestHomeHandler(t *testing.T) {
	t.Parallel()

	handler := New("Fyyur")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"OK","name":"Fyyur"}`, rr.Body.String())

	pending := httptest.NewRecorder()
	flash.Write(pending, flash.Failure("Venue The Musical Hop already exists"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range pending.Result().Cookies() {
		req.AddCookie(c)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.JSONEq(t,
		`{"status":"OK","name":"Fyyur","flash":{"kind":"error","message":"Venue The Musical Hop already exists"}}`,
		rr.Body.String())
}

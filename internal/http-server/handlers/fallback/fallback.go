// Package fallback answers requests no route matched.
package fallback

import (
	"net/http"

	"github.com/go-chi/render"

	"venueBooker/internal/lib/api/response"
)

func NotFound(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, response.Error("not found"))
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusMethodNotAllowed)
	render.JSON(w, r, response.Error("method not allowed"))
}

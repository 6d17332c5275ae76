package home

import (
	"net/http"

	"github.com/go-chi/render"

	"venueBooker/internal/lib/api/response"
	"venueBooker/internal/lib/flash"
)

type HomeResponse struct {
	response.Response
	Name string `json:"name"`
}

// New serves the landing page. It is where a pending notice from the last
// write is shown when the client did not follow a Location header.
func New(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, HomeResponse{
			Response: response.OK().WithFlash(flash.Pop(w, r)),
			Name:     name,
		})
	}
}

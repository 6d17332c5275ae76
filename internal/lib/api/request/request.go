package request

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

var (
	ErrEmptyBody = errors.New("empty request body")
	ErrMissingID = errors.New("id is required")
	ErrInvalidID = errors.New("invalid id format")
)

// FormDecoder is implemented by request types that can be filled from an
// url-encoded HTML form submission.
type FormDecoder interface {
	DecodeForm(values url.Values) error
}

// Decode fills v from the request body. Form submissions go through
// v.DecodeForm so that repeated keys (multi-selects) survive; anything
// else is decoded as JSON.
func Decode(r *http.Request, v any) error {
	if isForm(r) {
		fd, ok := v.(FormDecoder)
		if !ok {
			return fmt.Errorf("%T cannot be decoded from a form", v)
		}

		if err := r.ParseForm(); err != nil {
			return err
		}

		return fd.DecodeForm(r.PostForm)
	}

	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	return render.DecodeJSON(r.Body, v)
}

func isForm(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}

	return mediaType == "application/x-www-form-urlencoded"
}

// Bool reads an HTML checkbox value. Browsers omit unchecked boxes.
func Bool(values url.Values, key string) bool {
	switch strings.ToLower(strings.TrimSpace(values.Get(key))) {
	case "y", "yes", "on", "true", "1":
		return true
	default:
		return false
	}
}

func Int64(values url.Values, key string) (int64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return n, nil
}

// Strings returns the non-empty values submitted under key.
func Strings(values url.Values, key string) []string {
	var out []string
	for _, v := range values[key] {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}

func String(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

// ID reads the positive integer route parameter named key.
func ID(r *http.Request, key string) (int64, error) {
	raw := chi.URLParam(r, key)
	if raw == "" {
		return 0, ErrMissingID
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}

	return id, nil
}

package request

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testForm struct {
	Name    string   `json:"name"`
	Genres  []string `json:"genres"`
	Seeking bool     `json:"seeking"`
	Count   int64    `json:"count"`
}

func (f *testForm) DecodeForm(values url.Values) error {
	f.Name = String(values, "name")
	f.Genres = Strings(values, "genres")
	f.Seeking = Bool(values, "seeking")

	var err error
	f.Count, err = Int64(values, "count")

	return err
}

func TestDecodeForm(t *testing.T) {
	t.Parallel()

	body := "name=+The+Musical+Hop+&genres=Jazz&genres=Swing&genres=&seeking=y&count=3"
	req := httptest.NewRequest(http.MethodPost, "/venues/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

	var f testForm
	require.NoError(t, Decode(req, &f))

	assert.Equal(t, "The Musical Hop", f.Name)
	assert.Equal(t, []string{"Jazz", "Swing"}, f.Genres)
	assert.True(t, f.Seeking)
	assert.Equal(t, int64(3), f.Count)
}

func TestDecodeFormInvalidInt(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("count=three"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var f testForm
	assert.Error(t, Decode(req, &f))
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Hop","genres":["Jazz"],"seeking":true}`))
	req.Header.Set("Content-Type", "application/json")

	var f testForm
	require.NoError(t, Decode(req, &f))

	assert.Equal(t, "Hop", f.Name)
	assert.Equal(t, []string{"Jazz"}, f.Genres)
	assert.True(t, f.Seeking)
}

func TestDecodeInvalidJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`invalid json`))

	var f testForm
	assert.Error(t, Decode(req, &f))
}

func TestDecodeFormUnsupportedTarget(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var target struct{ Name string }
	assert.Error(t, Decode(req, &target))
}

func TestBool(t *testing.T) {
	t.Parallel()

	values := url.Values{"a": {"on"}, "b": {"false"}, "c": {"TRUE"}}

	assert.True(t, Bool(values, "a"))
	assert.False(t, Bool(values, "b"))
	assert.True(t, Bool(values, "c"))
	assert.False(t, Bool(values, "missing"))
}

func TestID(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		param   string
		want    int64
		wantErr error
	}{
		{name: "Valid", param: "42", want: 42},
		{name: "Missing", param: "", wantErr: ErrMissingID},
		{name: "Not a number", param: "abc", wantErr: ErrInvalidID},
		{name: "Zero", param: "0", wantErr: ErrInvalidID},
		{name: "Negative", param: "-3", wantErr: ErrInvalidID},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rctx := chi.NewRouteContext()
			if tc.param != "" {
				rctx.URLParams.Add("id", tc.param)
			}
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			id, err := ID(req, "id")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}

package forms

import "net/url"

// SearchForm is the single-field search box shared by the venue and artist
// pages. An empty term matches everything.
type SearchForm struct {
	SearchTerm string `json:"search_term"`
}

func (f *SearchForm) DecodeForm(values url.Values) error {
	f.SearchTerm = values.Get("search_term")

	return nil
}

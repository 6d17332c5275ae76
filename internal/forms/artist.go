package forms

import (
	"net/url"

	"venueBooker/internal/lib/api/request"
	"venueBooker/internal/models"
)

type ArtistForm struct {
	Name               string   `json:"name" validate:"required"`
	Genres             []string `json:"genres" validate:"required,min=1,dive,genre"`
	City               string   `json:"city" validate:"required"`
	State              string   `json:"state" validate:"required,state"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website" validate:"omitempty,url"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

func (f *ArtistForm) DecodeForm(values url.Values) error {
	f.Name = request.String(values, "name")
	f.Genres = request.Strings(values, "genres")
	f.City = request.String(values, "city")
	f.State = request.String(values, "state")
	f.Phone = request.String(values, "phone")
	f.Website = request.String(values, "website")
	f.FacebookLink = request.String(values, "facebook_link")
	f.ImageLink = request.String(values, "image_link")
	f.SeekingVenue = request.Bool(values, "seeking_venue")
	f.SeekingDescription = request.String(values, "seeking_description")

	return nil
}

func (f *ArtistForm) Artist(id int64) *models.Artist {
	return &models.Artist{
		ID:                 id,
		Name:               f.Name,
		Genres:             append([]string{}, f.Genres...),
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Website:            f.Website,
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

func ArtistFormFrom(a *models.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		Genres:             append([]string{}, a.Genres...),
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		ImageLink:          a.ImageLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

package forms

import (
	"net/url"

	"venueBooker/internal/lib/api/request"
	"venueBooker/internal/models"
)

type VenueForm struct {
	Name               string   `json:"name" validate:"required"`
	Genres             []string `json:"genres" validate:"required,min=1,dive,genre"`
	Address            string   `json:"address" validate:"required"`
	City               string   `json:"city" validate:"required"`
	State              string   `json:"state" validate:"required,state"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website" validate:"omitempty,url"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

func (f *VenueForm) DecodeForm(values url.Values) error {
	f.Name = request.String(values, "name")
	f.Genres = request.Strings(values, "genres")
	f.Address = request.String(values, "address")
	f.City = request.String(values, "city")
	f.State = request.String(values, "state")
	f.Phone = request.String(values, "phone")
	f.Website = request.String(values, "website")
	f.FacebookLink = request.String(values, "facebook_link")
	f.ImageLink = request.String(values, "image_link")
	f.SeekingTalent = request.Bool(values, "seeking_talent")
	f.SeekingDescription = request.String(values, "seeking_description")

	return nil
}

// Venue builds a complete row from the form. Every column is taken from the
// form, so an edit replaces the stored record wholesale.
func (f *VenueForm) Venue(id int64) *models.Venue {
	return &models.Venue{
		ID:                 id,
		Name:               f.Name,
		Genres:             append([]string{}, f.Genres...),
		Address:            f.Address,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Website:            f.Website,
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

func VenueFormFrom(v *models.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		Genres:             append([]string{}, v.Genres...),
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		ImageLink:          v.ImageLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

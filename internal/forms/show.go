package forms

import (
	"net/url"

	"venueBooker/internal/lib/api/request"
	"venueBooker/internal/lib/datefmt"
	"venueBooker/internal/models"
)

type ShowForm struct {
	ArtistID  int64  `json:"artist_id" validate:"required,gt=0"`
	VenueID   int64  `json:"venue_id" validate:"required,gt=0"`
	StartTime string `json:"start_time" validate:"required"`
}

func (f *ShowForm) DecodeForm(values url.Values) error {
	var err error

	if f.ArtistID, err = request.Int64(values, "artist_id"); err != nil {
		return err
	}

	if f.VenueID, err = request.Int64(values, "venue_id"); err != nil {
		return err
	}

	f.StartTime = request.String(values, "start_time")

	return nil
}

// Show parses the submitted start time and builds the row to insert.
func (f *ShowForm) Show() (*models.Show, error) {
	start, err := datefmt.Parse(f.StartTime)
	if err != nil {
		return nil, err
	}

	return &models.Show{
		ArtistID:  f.ArtistID,
		VenueID:   f.VenueID,
		StartTime: start,
	}, nil
}

package views

import (
	"fmt"

	"venueBooker/internal/lib/datefmt"
	"venueBooker/internal/models"
)

func VenueListed(name string) string {
	return fmt.Sprintf("Venue %s was successfully listed!", name)
}

func VenueExists(name string) string {
	return fmt.Sprintf("Venue %s already exists", name)
}

func VenueNotListed(name string) string {
	return fmt.Sprintf("An error occurred. Venue %s could not be listed.", name)
}

func ArtistListed(name string) string {
	return fmt.Sprintf("Artist %s was successfully listed!", name)
}

func ArtistNotListed(name string) string {
	return fmt.Sprintf("An error occurred. Artist %s could not be listed.", name)
}

const ShowNotListed = "An error occurred. Show could not be listed."

// ShowListed names the artist, the start time and the venue of a stored
// show. The show must carry its Venue and Artist.
func ShowListed(s *models.Show) string {
	var artist, venue string
	if s.Artist != nil {
		artist = s.Artist.Name
	}
	if s.Venue != nil {
		venue = s.Venue.Name
	}

	return fmt.Sprintf("Show by %s on %s at %s has been listed successfully!",
		artist, datefmt.FormatTime(s.StartTime, datefmt.Short), venue)
}

func VenueUpdated(name string) string {
	return fmt.Sprintf("Venue %s was successfully updated!", name)
}

func VenueNotUpdated(name string) string {
	return fmt.Sprintf("An error occurred. Venue %s could not be updated.", name)
}

func ArtistUpdated(name string) string {
	return fmt.Sprintf("Artist %s was successfully updated!", name)
}

func ArtistNotUpdated(name string) string {
	return fmt.Sprintf("An error occurred. Artist %s could not be updated.", name)
}

const (
	VenueDeleted    = "Venue was successfully deleted."
	VenueNotDeleted = "An error occurred. Venue could not be deleted."
)

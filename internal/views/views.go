// Package views turns stored venues, artists and shows into the page
// models served by the listing site. Every function takes the reference
// time explicitly; a show is upcoming when it starts strictly after now.
package views

import (
	"sort"
	"time"

	"venueBooker/internal/lib/datefmt"
	"venueBooker/internal/models"
)

type Summary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

type SearchResults struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

type ArtistListItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// VenueShow is a show seen from a venue's page.
type VenueShow struct {
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistShow is a show seen from an artist's page.
type ArtistShow struct {
	VenueID        int64  `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type VenueDetail struct {
	models.Venue
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

type ArtistDetail struct {
	models.Artist
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

type ShowListing struct {
	ID              int64  `json:"id"`
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// SplitShows partitions shows into those that started at or before now and
// those that start after it, keeping the input order within each half.
func SplitShows(shows []*models.Show, now time.Time) (past, upcoming []*models.Show) {
	for _, s := range shows {
		if s == nil {
			continue
		}

		if s.IsUpcoming(now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}

	return past, upcoming
}

func CountUpcoming(shows []*models.Show, now time.Time) int {
	n := 0
	for _, s := range shows {
		if s != nil && s.IsUpcoming(now) {
			n++
		}
	}

	return n
}

// GroupVenuesByArea buckets venues under their own (city, state) pair.
// Areas are ordered by city then state; venues keep their input order.
func GroupVenuesByArea(venues []models.Venue, now time.Time) []Area {
	type key struct{ city, state string }

	index := make(map[key]int)
	areas := make([]Area, 0)

	for i := range venues {
		v := &venues[i]
		k := key{city: v.City, state: v.State}

		pos, ok := index[k]
		if !ok {
			pos = len(areas)
			index[k] = pos
			areas = append(areas, Area{City: v.City, State: v.State, Venues: make([]Summary, 0, 1)})
		}

		areas[pos].Venues = append(areas[pos].Venues, Summary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: CountUpcoming(v.Shows, now),
		})
	}

	sort.SliceStable(areas, func(i, j int) bool {
		if areas[i].City != areas[j].City {
			return areas[i].City < areas[j].City
		}
		return areas[i].State < areas[j].State
	})

	return areas
}

func SearchVenues(venues []models.Venue, now time.Time) SearchResults {
	res := SearchResults{Count: len(venues), Data: make([]Summary, 0, len(venues))}
	for i := range venues {
		res.Data = append(res.Data, Summary{
			ID:               venues[i].ID,
			Name:             venues[i].Name,
			NumUpcomingShows: CountUpcoming(venues[i].Shows, now),
		})
	}

	return res
}

func SearchArtists(artists []models.Artist, now time.Time) SearchResults {
	res := SearchResults{Count: len(artists), Data: make([]Summary, 0, len(artists))}
	for i := range artists {
		res.Data = append(res.Data, Summary{
			ID:               artists[i].ID,
			Name:             artists[i].Name,
			NumUpcomingShows: CountUpcoming(artists[i].Shows, now),
		})
	}

	return res
}

func ListArtists(artists []models.Artist) []ArtistListItem {
	items := make([]ArtistListItem, 0, len(artists))
	for _, a := range artists {
		items = append(items, ArtistListItem{ID: a.ID, Name: a.Name})
	}

	return items
}

// NewVenueDetail splits the venue's shows around now and renders start
// times with the datefmt keyword format.
func NewVenueDetail(v *models.Venue, now time.Time, format string) VenueDetail {
	past, upcoming := SplitShows(v.Shows, now)

	detail := VenueDetail{
		Venue:              *v,
		PastShows:          make([]VenueShow, 0, len(past)),
		UpcomingShows:      make([]VenueShow, 0, len(upcoming)),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	detail.Venue.Shows = nil

	for _, s := range past {
		detail.PastShows = append(detail.PastShows, venueShow(s, format))
	}
	for _, s := range upcoming {
		detail.UpcomingShows = append(detail.UpcomingShows, venueShow(s, format))
	}

	return detail
}

func NewArtistDetail(a *models.Artist, now time.Time, format string) ArtistDetail {
	past, upcoming := SplitShows(a.Shows, now)

	detail := ArtistDetail{
		Artist:             *a,
		PastShows:          make([]ArtistShow, 0, len(past)),
		UpcomingShows:      make([]ArtistShow, 0, len(upcoming)),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	detail.Artist.Shows = nil

	for _, s := range past {
		detail.PastShows = append(detail.PastShows, artistShow(s, format))
	}
	for _, s := range upcoming {
		detail.UpcomingShows = append(detail.UpcomingShows, artistShow(s, format))
	}

	return detail
}

func ListShows(shows []models.Show, format string) []ShowListing {
	items := make([]ShowListing, 0, len(shows))
	for i := range shows {
		s := &shows[i]

		item := ShowListing{
			ID:        s.ID,
			VenueID:   s.VenueID,
			ArtistID:  s.ArtistID,
			StartTime: datefmt.FormatTime(s.StartTime, format),
		}
		if s.Venue != nil {
			item.VenueName = s.Venue.Name
		}
		if s.Artist != nil {
			item.ArtistName = s.Artist.Name
			item.ArtistImageLink = s.Artist.ImageLink
		}

		items = append(items, item)
	}

	return items
}

func venueShow(s *models.Show, format string) VenueShow {
	vs := VenueShow{
		ArtistID:  s.ArtistID,
		StartTime: datefmt.FormatTime(s.StartTime, format),
	}
	if s.Artist != nil {
		vs.ArtistName = s.Artist.Name
		vs.ArtistImageLink = s.Artist.ImageLink
	}

	return vs
}

func artistShow(s *models.Show, format string) ArtistShow {
	as := ArtistShow{
		VenueID:   s.VenueID,
		StartTime: datefmt.FormatTime(s.StartTime, format),
	}
	if s.Venue != nil {
		as.VenueName = s.Venue.Name
		as.VenueImageLink = s.Venue.ImageLink
	}

	return as
}

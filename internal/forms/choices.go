package forms

import "slices"

var Genres = []string{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theatre",
	"Pop",
	"Punk",
	"R&B",
	"Reggae",
	"Rock n Roll",
	"Soul",
	"Other",
}

var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

// Choices lists the values accepted by the select inputs of the venue and
// artist forms.
type Choices struct {
	Genres []string `json:"genres"`
	States []string `json:"states"`
}

func DefaultChoices() Choices {
	return Choices{
		Genres: slices.Clone(Genres),
		States: slices.Clone(States),
	}
}

func isGenre(s string) bool {
	return slices.Contains(Genres, s)
}

func isState(s string) bool {
	return slices.Contains(States, s)
}

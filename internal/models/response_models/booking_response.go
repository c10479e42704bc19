package response_models

type Summary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

type SearchResult struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

type EntityRef struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	ImageLink *string `json:"image_link,omitempty"`
}

type VenueShow struct {
	ArtistID        uint    `json:"artist_id"`
	ArtistName      string  `json:"artist_name"`
	ArtistImageLink *string `json:"artist_image_link"`
	StartTime       string  `json:"start_time"`
}

type VenueDetail struct {
	ID                 uint        `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	Address            string      `json:"address"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Phone              *string     `json:"phone"`
	Website            *string     `json:"website"`
	FacebookLink       *string     `json:"facebook_link"`
	SeekingTalent      bool        `json:"seeking_talent"`
	SeekingDescription string      `json:"seeking_description"`
	ImageLink          *string     `json:"image_link"`
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

type ArtistShow struct {
	VenueID        uint    `json:"venue_id"`
	VenueName      string  `json:"venue_name"`
	VenueImageLink *string `json:"venue_image_link"`
	StartTime      string  `json:"start_time"`
}

type ArtistDetail struct {
	ID                 uint         `json:"id"`
	Name               string       `json:"name"`
	Genres             []string     `json:"genres"`
	City               string       `json:"city"`
	State              string       `json:"state"`
	Phone              *string      `json:"phone"`
	Website            *string      `json:"website"`
	FacebookLink       *string      `json:"facebook_link"`
	SeekingVenue       bool         `json:"seeking_venue"`
	SeekingDescription string       `json:"seeking_description"`
	ImageLink          *string      `json:"image_link"`
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

type Show struct {
	ID              uint    `json:"id"`
	VenueID         uint    `json:"venue_id"`
	VenueName       string  `json:"venue_name"`
	ArtistID        uint    `json:"artist_id"`
	ArtistName      string  `json:"artist_name"`
	ArtistImageLink *string `json:"artist_image_link"`
	StartTime       string  `json:"start_time"`
}

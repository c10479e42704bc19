package request_models

type VenueRequest struct {
	Name               string   `json:"name" validate:"required"`
	City               string   `json:"city" validate:"required"`
	State              string   `json:"state" validate:"required"`
	Address            string   `json:"address" validate:"required"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url"`
	Website            string   `json:"website" validate:"omitempty,url"`
	Genres             []string `json:"genres"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

type ArtistRequest struct {
	Name               string   `json:"name" validate:"required"`
	City               string   `json:"city" validate:"required"`
	State              string   `json:"state" validate:"required"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link" validate:"omitempty,url"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,url"`
	Website            string   `json:"website" validate:"omitempty,url"`
	Genres             []string `json:"genres"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

type SearchRequest struct {
	SearchTerm string `json:"search_term"`
	City       string `json:"search_by_city"`
	State      string `json:"search_by_state"`
}

type ShowRequest struct {
	ArtistID  FlexInt `json:"artist_id" validate:"required,min=1"`
	VenueID   FlexInt `json:"venue_id" validate:"required,min=1"`
	StartTime string  `json:"start_time" validate:"required"`
}

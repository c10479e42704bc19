package db_models

import "time"

type Genre struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:120;uniqueIndex;not null"`
}

type Venue struct {
	ID                 uint    `gorm:"primaryKey"`
	Name               string  `gorm:"uniqueIndex;not null"`
	City               string  `gorm:"size:120;not null"`
	State              string  `gorm:"size:120;not null"`
	Address            string  `gorm:"size:120;not null"`
	Phone              *string `gorm:"size:120;uniqueIndex"`
	ImageLink          *string `gorm:"size:500;uniqueIndex"`
	FacebookLink       *string `gorm:"size:120;uniqueIndex"`
	Website            *string `gorm:"size:120"`
	SeekingTalent      bool
	SeekingDescription string
	CreatedAt          time.Time `gorm:"autoCreateTime"`

	Genres []Genre `gorm:"many2many:venue_genres"`
	Shows  []Show  `gorm:"constraint:OnDelete:CASCADE"`
}

type Artist struct {
	ID                 uint    `gorm:"primaryKey"`
	Name               string  `gorm:"uniqueIndex;not null"`
	City               string  `gorm:"size:120;not null"`
	State              string  `gorm:"size:120;not null"`
	Phone              *string `gorm:"size:120;uniqueIndex"`
	ImageLink          *string `gorm:"size:500;uniqueIndex"`
	FacebookLink       *string `gorm:"size:120;uniqueIndex"`
	Website            *string `gorm:"size:120"`
	SeekingVenue       bool
	SeekingDescription string
	CreatedAt          time.Time `gorm:"autoCreateTime"`

	Genres []Genre `gorm:"many2many:artist_genres"`
	Shows  []Show  `gorm:"constraint:OnDelete:CASCADE"`
}

type Show struct {
	ID        uint      `gorm:"primaryKey"`
	ArtistID  uint      `gorm:"not null;index"`
	VenueID   uint      `gorm:"not null;index"`
	StartTime time.Time `gorm:"not null;index"`

	Artist Artist
	Venue  Venue
}

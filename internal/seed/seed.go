// Package seed loads categories, questions and booking fixtures from a YAML
// document. Applying the same document twice leaves the store unchanged.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"fyyurtrivia/internal/models/db_models"
	"fyyurtrivia/internal/repositories"
	"fyyurtrivia/pkg/utils"
)

type Document struct {
	Categories []string   `yaml:"categories"`
	Questions  []Question `yaml:"questions"`
	Venues     []Venue    `yaml:"venues"`
	Artists    []Artist   `yaml:"artists"`
	Shows      []Show     `yaml:"shows"`
}

// Question names its category by name, not id.
type Question struct {
	Question   string `yaml:"question"`
	Answer     string `yaml:"answer"`
	Category   string `yaml:"category"`
	Difficulty int    `yaml:"difficulty"`
}

type Venue struct {
	Name               string   `yaml:"name"`
	City               string   `yaml:"city"`
	State              string   `yaml:"state"`
	Address            string   `yaml:"address"`
	Phone              string   `yaml:"phone"`
	ImageLink          string   `yaml:"image_link"`
	FacebookLink       string   `yaml:"facebook_link"`
	Website            string   `yaml:"website"`
	Genres             []string `yaml:"genres"`
	SeekingTalent      bool     `yaml:"seeking_talent"`
	SeekingDescription string   `yaml:"seeking_description"`
}

type Artist struct {
	Name               string   `yaml:"name"`
	City               string   `yaml:"city"`
	State              string   `yaml:"state"`
	Phone              string   `yaml:"phone"`
	ImageLink          string   `yaml:"image_link"`
	FacebookLink       string   `yaml:"facebook_link"`
	Website            string   `yaml:"website"`
	Genres             []string `yaml:"genres"`
	SeekingVenue       bool     `yaml:"seeking_venue"`
	SeekingDescription string   `yaml:"seeking_description"`
}

// Show references its artist and venue by name.
type Show struct {
	Artist    string `yaml:"artist"`
	Venue     string `yaml:"venue"`
	StartTime string `yaml:"start_time"`
}

// Result counts the rows Apply inserted.
type Result struct {
	Categories int
	Questions  int
	Venues     int
	Artists    int
	Shows      int
}

func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &doc, nil
}

// Apply inserts every record of doc that is not stored yet, in one
// transaction. Categories, venues and artists are matched by name, questions
// by text and shows by artist, venue and start time.
func Apply(ctx context.Context, db *gorm.DB, doc *Document, log *zap.Logger) (Result, error) {
	var res Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories, err := seedCategories(tx, doc.Categories, &res)
		if err != nil {
			return err
		}
		if err := seedQuestions(tx, doc.Questions, categories, &res); err != nil {
			return err
		}
		venues, err := seedVenues(tx, doc.Venues, &res)
		if err != nil {
			return err
		}
		artists, err := seedArtists(tx, doc.Artists, &res)
		if err != nil {
			return err
		}
		return seedShows(tx, doc.Shows, artists, venues, &res)
	})
	if err != nil {
		return Result{}, err
	}

	log.Info("seed applied",
		zap.Int("categories", res.Categories),
		zap.Int("questions", res.Questions),
		zap.Int("venues", res.Venues),
		zap.Int("artists", res.Artists),
		zap.Int("shows", res.Shows))
	return res, nil
}

// findOrCreate looks dest up with cond and inserts it when absent. It reports
// whether a row was inserted.
func findOrCreate(tx *gorm.DB, dest any, cond any, create func() error) (bool, error) {
	err := tx.Where(cond).First(dest).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := create(); err != nil {
		return false, err
	}
	return true, nil
}

func seedCategories(tx *gorm.DB, names []string, res *Result) (map[string]uint, error) {
	ids := make(map[string]uint, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errors.New("category name is empty")
		}
		category := db_models.Category{}
		created, err := findOrCreate(tx, &category, db_models.Category{Name: name}, func() error {
			category = db_models.Category{Name: name}
			return tx.Create(&category).Error
		})
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}
		if created {
			res.Categories++
		}
		ids[name] = category.ID
	}
	return ids, nil
}

func seedQuestions(tx *gorm.DB, questions []Question, categories map[string]uint, res *Result) error {
	for _, q := range questions {
		categoryID, ok := categories[q.Category]
		if !ok {
			var category db_models.Category
			if err := tx.Where(db_models.Category{Name: q.Category}).First(&category).Error; err != nil {
				return fmt.Errorf("question %q: unknown category %q", q.Question, q.Category)
			}
			categoryID = category.ID
		}
		if strings.TrimSpace(q.Question) == "" || strings.TrimSpace(q.Answer) == "" || q.Difficulty < 1 {
			return fmt.Errorf("question %q: question, answer and difficulty are required", q.Question)
		}

		existing := db_models.Question{}
		created, err := findOrCreate(tx, &existing, db_models.Question{Question: q.Question}, func() error {
			return tx.Create(&db_models.Question{
				Question:   q.Question,
				Answer:     q.Answer,
				CategoryID: categoryID,
				Difficulty: q.Difficulty,
			}).Error
		})
		if err != nil {
			return fmt.Errorf("question %q: %w", q.Question, err)
		}
		if created {
			res.Questions++
		}
	}
	return nil
}

func seedVenues(tx *gorm.DB, venues []Venue, res *Result) (map[string]uint, error) {
	ids := make(map[string]uint, len(venues))
	for _, v := range venues {
		venue := db_models.Venue{}
		created, err := findOrCreate(tx, &venue, db_models.Venue{Name: v.Name}, func() error {
			genres, err := repositories.ResolveGenres(tx, v.Genres)
			if err != nil {
				return err
			}
			venue = db_models.Venue{
				Name:               v.Name,
				City:               v.City,
				State:              v.State,
				Address:            v.Address,
				Phone:              optional(v.Phone),
				ImageLink:          optional(v.ImageLink),
				FacebookLink:       optional(v.FacebookLink),
				Website:            optional(v.Website),
				SeekingTalent:      v.SeekingTalent,
				SeekingDescription: v.SeekingDescription,
				Genres:             genres,
			}
			return tx.Create(&venue).Error
		})
		if err != nil {
			return nil, fmt.Errorf("venue %q: %w", v.Name, err)
		}
		if created {
			res.Venues++
		}
		ids[v.Name] = venue.ID
	}
	return ids, nil
}

func seedArtists(tx *gorm.DB, artists []Artist, res *Result) (map[string]uint, error) {
	ids := make(map[string]uint, len(artists))
	for _, a := range artists {
		artist := db_models.Artist{}
		created, err := findOrCreate(tx, &artist, db_models.Artist{Name: a.Name}, func() error {
			genres, err := repositories.ResolveGenres(tx, a.Genres)
			if err != nil {
				return err
			}
			artist = db_models.Artist{
				Name:               a.Name,
				City:               a.City,
				State:              a.State,
				Phone:              optional(a.Phone),
				ImageLink:          optional(a.ImageLink),
				FacebookLink:       optional(a.FacebookLink),
				Website:            optional(a.Website),
				SeekingVenue:       a.SeekingVenue,
				SeekingDescription: a.SeekingDescription,
				Genres:             genres,
			}
			return tx.Create(&artist).Error
		})
		if err != nil {
			return nil, fmt.Errorf("artist %q: %w", a.Name, err)
		}
		if created {
			res.Artists++
		}
		ids[a.Name] = artist.ID
	}
	return ids, nil
}

func seedShows(tx *gorm.DB, shows []Show, artists, venues map[string]uint, res *Result) error {
	for _, s := range shows {
		artistID, ok := artists[s.Artist]
		if !ok {
			return fmt.Errorf("show: unknown artist %q", s.Artist)
		}
		venueID, ok := venues[s.Venue]
		if !ok {
			return fmt.Errorf("show: unknown venue %q", s.Venue)
		}
		start, err := utils.ParseShowTime(s.StartTime)
		if err != nil {
			return fmt.Errorf("show %s at %s: %w", s.Artist, s.Venue, err)
		}

		var count int64
		err = tx.Model(&db_models.Show{}).
			Where("artist_id = ? AND venue_id = ? AND start_time = ?", artistID, venueID, start).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := tx.Omit("Artist", "Venue").Create(&db_models.Show{ArtistID: artistID, VenueID: venueID, StartTime: start}).Error; err != nil {
			return fmt.Errorf("show %s at %s: %w", s.Artist, s.Venue, err)
		}
		res.Shows++
	}
	return nil
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

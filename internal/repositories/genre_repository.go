package repositories

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"fyyurtrivia/internal/models/db_models"
)

// ResolveGenres returns a Genre row for every distinct non-blank name,
// creating the ones that do not exist yet. Call it inside the transaction
// that attaches the genres.
func ResolveGenres(tx *gorm.DB, names []string) ([]db_models.Genre, error) {
	seen := make(map[string]struct{}, len(names))
	genres := make([]db_models.Genre, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		var genre db_models.Genre
		if err := tx.Where(db_models.Genre{Name: name}).FirstOrCreate(&genre).Error; err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	return genres, nil
}

// SummaryFilter narrows venue and artist listings. Empty fields match all.
type SummaryFilter struct {
	NameContains string
	City         string
	State        string
}

// Summary is a venue or artist row with its number of upcoming shows.
type Summary struct {
	ID               uint
	Name             string
	City             string
	State            string
	NumUpcomingShows int64
}

func listSummaries(db *gorm.DB, table, showColumn string, filter SummaryFilter, now time.Time) ([]Summary, error) {
	query := db.Table(table).
		Select(table+".id, "+table+".name, "+table+".city, "+table+".state, COUNT(shows.id) AS num_upcoming_shows").
		Joins("LEFT JOIN shows ON shows."+showColumn+" = "+table+".id AND shows.start_time >= ?", now).
		Group(table + ".id, " + table + ".name, " + table + ".city, " + table + ".state")

	if filter.NameContains != "" {
		query = query.Where("LOWER("+table+`.name) LIKE LOWER(?) ESCAPE '\'`, containsPattern(filter.NameContains))
	}
	if filter.City != "" {
		query = query.Where(table+".city = ?", filter.City)
	}
	if filter.State != "" {
		query = query.Where(table+".state = ?", filter.State)
	}

	var rows []Summary
	err := query.Order(table + ".state, " + table + ".city, " + table + ".name").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

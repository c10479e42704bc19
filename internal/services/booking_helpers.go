package services

import (
	"strings"

	"fyyurtrivia/internal/models/db_models"
	"fyyurtrivia/internal/models/request_models"
	"fyyurtrivia/internal/models/response_models"
	"fyyurtrivia/internal/repositories"
)

// RecentLimit is how many venues and artists the home listing shows.
const RecentLimit = 10

// optionalString maps blank form values to NULL so unique columns stay
// free for other rows.
func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func genreNames(genres []db_models.Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}

func toSummaries(rows []repositories.Summary) []response_models.Summary {
	out := make([]response_models.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, response_models.Summary{
			ID:               row.ID,
			Name:             row.Name,
			NumUpcomingShows: row.NumUpcomingShows,
		})
	}
	return out
}

func toSummaryFilter(req request_models.SearchRequest) repositories.SummaryFilter {
	return repositories.SummaryFilter{
		NameContains: strings.TrimSpace(req.SearchTerm),
		City:         strings.TrimSpace(req.City),
		State:        strings.TrimSpace(req.State),
	}
}

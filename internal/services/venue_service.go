package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"fyyurtrivia/internal/models/db_models"
	"fyyurtrivia/internal/models/request_models"
	"fyyurtrivia/internal/models/response_models"
	"fyyurtrivia/internal/repositories"
	"fyyurtrivia/pkg/utils"
)

type VenueServiceInterface interface {
	ListByArea(ctx context.Context) ([]response_models.Area, error)
	Search(ctx context.Context, req request_models.SearchRequest) (response_models.SearchResult, error)
	GetVenue(ctx context.Context, id uint) (response_models.VenueDetail, error)
	ListRecent(ctx context.Context) ([]response_models.EntityRef, error)
	CreateVenue(ctx context.Context, req request_models.VenueRequest) (response_models.VenueDetail, error)
	UpdateVenue(ctx context.Context, id uint, req request_models.VenueRequest) (response_models.VenueDetail, error)
	DeleteVenue(ctx context.Context, id uint) error
}

type VenueService struct {
	venueRepo repositories.VenueRepository
	now       utils.Clock
	log       *zap.Logger
}

func NewVenueService(venueRepo repositories.VenueRepository, now utils.Clock, log *zap.Logger) VenueServiceInterface {
	if now == nil {
		now = utils.SystemClock
	}
	return &VenueService{venueRepo: venueRepo, now: now, log: log}
}

// ListByArea groups venues by city and state, preserving the repository's
// state, city, name ordering.
func (s *VenueService) ListByArea(ctx context.Context) ([]response_models.Area, error) {
	rows, err := s.venueRepo.Summaries(ctx, repositories.SummaryFilter{}, s.now())
	if err != nil {
		return nil, storeError(s.log, "list venues", err)
	}

	areas := make([]response_models.Area, 0)
	index := make(map[[2]string]int)
	for _, row := range rows {
		key := [2]string{row.City, row.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, response_models.Area{City: row.City, State: row.State, Venues: []response_models.Summary{}})
		}
		areas[i].Venues = append(areas[i].Venues, response_models.Summary{
			ID:               row.ID,
			Name:             row.Name,
			NumUpcomingShows: row.NumUpcomingShows,
		})
	}
	return areas, nil
}

func (s *VenueService) Search(ctx context.Context, req request_models.SearchRequest) (response_models.SearchResult, error) {
	rows, err := s.venueRepo.Summaries(ctx, toSummaryFilter(req), s.now())
	if err != nil {
		return response_models.SearchResult{}, storeError(s.log, "search venues", err)
	}
	return response_models.SearchResult{Count: len(rows), Data: toSummaries(rows)}, nil
}

func (s *VenueService) GetVenue(ctx context.Context, id uint) (response_models.VenueDetail, error) {
	venue, err := s.venueRepo.GetByIDWithShows(ctx, id)
	if err != nil {
		return response_models.VenueDetail{}, storeError(s.log, "get venue", err)
	}
	if venue == nil {
		return response_models.VenueDetail{}, utils.ErrVenueNotFound
	}
	return s.toVenueDetail(venue), nil
}

func (s *VenueService) ListRecent(ctx context.Context) ([]response_models.EntityRef, error) {
	venues, err := s.venueRepo.ListRecent(ctx, RecentLimit)
	if err != nil {
		return nil, storeError(s.log, "list recent venues", err)
	}
	refs := make([]response_models.EntityRef, 0, len(venues))
	for _, v := range venues {
		refs = append(refs, response_models.EntityRef{ID: v.ID, Name: v.Name, ImageLink: v.ImageLink})
	}
	return refs, nil
}

func (s *VenueService) CreateVenue(ctx context.Context, req request_models.VenueRequest) (response_models.VenueDetail, error) {
	req = normalizeVenueRequest(req)
	if err := validateInput(req); err != nil {
		return response_models.VenueDetail{}, err
	}

	venue := &db_models.Venue{}
	applyVenueRequest(venue, req)
	if err := s.venueRepo.Create(ctx, venue, req.Genres); err != nil {
		return response_models.VenueDetail{}, storeError(s.log, "create venue", err)
	}
	s.log.Info("venue listed", zap.Uint("venue_id", venue.ID), zap.String("name", venue.Name))
	return s.GetVenue(ctx, venue.ID)
}

func (s *VenueService) UpdateVenue(ctx context.Context, id uint, req request_models.VenueRequest) (response_models.VenueDetail, error) {
	req = normalizeVenueRequest(req)
	if err := validateInput(req); err != nil {
		return response_models.VenueDetail{}, err
	}

	venue, err := s.venueRepo.GetByIDWithShows(ctx, id)
	if err != nil {
		return response_models.VenueDetail{}, storeError(s.log, "get venue", err)
	}
	if venue == nil {
		return response_models.VenueDetail{}, utils.ErrVenueNotFound
	}

	applyVenueRequest(venue, req)
	if err := s.venueRepo.Update(ctx, venue, req.Genres); err != nil {
		return response_models.VenueDetail{}, storeError(s.log, "update venue", err)
	}
	return s.GetVenue(ctx, id)
}

func (s *VenueService) DeleteVenue(ctx context.Context, id uint) error {
	deleted, err := s.venueRepo.Delete(ctx, id)
	if err != nil {
		return storeError(s.log, "delete venue", err)
	}
	if !deleted {
		return utils.ErrVenueNotFound
	}
	s.log.Info("venue deleted", zap.Uint("venue_id", id))
	return nil
}

func (s *VenueService) toVenueDetail(v *db_models.Venue) response_models.VenueDetail {
	detail := response_models.VenueDetail{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             genreNames(v.Genres),
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          []response_models.VenueShow{},
		UpcomingShows:      []response_models.VenueShow{},
	}

	now := s.now()
	for _, show := range v.Shows {
		item := response_models.VenueShow{
			ArtistID:        show.ArtistID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       utils.FormatShowTime(show.StartTime),
		}
		if utils.IsUpcoming(show.StartTime, now) {
			detail.UpcomingShows = append(detail.UpcomingShows, item)
		} else {
			detail.PastShows = append(detail.PastShows, item)
		}
	}
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail
}

func normalizeVenueRequest(req request_models.VenueRequest) request_models.VenueRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.City = strings.TrimSpace(req.City)
	req.State = strings.TrimSpace(req.State)
	req.Address = strings.TrimSpace(req.Address)
	req.ImageLink = strings.TrimSpace(req.ImageLink)
	req.FacebookLink = strings.TrimSpace(req.FacebookLink)
	req.Website = strings.TrimSpace(req.Website)
	return req
}

func applyVenueRequest(v *db_models.Venue, req request_models.VenueRequest) {
	v.Name = req.Name
	v.City = req.City
	v.State = req.State
	v.Address = req.Address
	v.Phone = optionalString(req.Phone)
	v.ImageLink = optionalString(req.ImageLink)
	v.FacebookLink = optionalString(req.FacebookLink)
	v.Website = optionalString(req.Website)
	v.SeekingTalent = req.SeekingTalent
	v.SeekingDescription = strings.TrimSpace(req.SeekingDescription)
}

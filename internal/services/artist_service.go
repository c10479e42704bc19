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

type ArtistServiceInterface interface {
	ListArtists(ctx context.Context) ([]response_models.EntityRef, error)
	Search(ctx context.Context, req request_models.SearchRequest) (response_models.SearchResult, error)
	GetArtist(ctx context.Context, id uint) (response_models.ArtistDetail, error)
	ListRecent(ctx context.Context) ([]response_models.EntityRef, error)
	CreateArtist(ctx context.Context, req request_models.ArtistRequest) (response_models.ArtistDetail, error)
	UpdateArtist(ctx context.Context, id uint, req request_models.ArtistRequest) (response_models.ArtistDetail, error)
}

type ArtistService struct {
	artistRepo repositories.ArtistRepository
	now        utils.Clock
	log        *zap.Logger
}

func NewArtistService(artistRepo repositories.ArtistRepository, now utils.Clock, log *zap.Logger) ArtistServiceInterface {
	if now == nil {
		now = utils.SystemClock
	}
	return &ArtistService{artistRepo: artistRepo, now: now, log: log}
}

func (s *ArtistService) ListArtists(ctx context.Context) ([]response_models.EntityRef, error) {
	artists, err := s.artistRepo.List(ctx)
	if err != nil {
		return nil, storeError(s.log, "list artists", err)
	}
	refs := make([]response_models.EntityRef, 0, len(artists))
	for _, a := range artists {
		refs = append(refs, response_models.EntityRef{ID: a.ID, Name: a.Name})
	}
	return refs, nil
}

func (s *ArtistService) Search(ctx context.Context, req request_models.SearchRequest) (response_models.SearchResult, error) {
	rows, err := s.artistRepo.Summaries(ctx, toSummaryFilter(req), s.now())
	if err != nil {
		return response_models.SearchResult{}, storeError(s.log, "search artists", err)
	}
	return response_models.SearchResult{Count: len(rows), Data: toSummaries(rows)}, nil
}

func (s *ArtistService) GetArtist(ctx context.Context, id uint) (response_models.ArtistDetail, error) {
	artist, err := s.artistRepo.GetByIDWithShows(ctx, id)
	if err != nil {
		return response_models.ArtistDetail{}, storeError(s.log, "get artist", err)
	}
	if artist == nil {
		return response_models.ArtistDetail{}, utils.ErrArtistNotFound
	}
	return s.toArtistDetail(artist), nil
}

func (s *ArtistService) ListRecent(ctx context.Context) ([]response_models.EntityRef, error) {
	artists, err := s.artistRepo.ListRecent(ctx, RecentLimit)
	if err != nil {
		return nil, storeError(s.log, "list recent artists", err)
	}
	refs := make([]response_models.EntityRef, 0, len(artists))
	for _, a := range artists {
		refs = append(refs, response_models.EntityRef{ID: a.ID, Name: a.Name, ImageLink: a.ImageLink})
	}
	return refs, nil
}

func (s *ArtistService) CreateArtist(ctx context.Context, req request_models.ArtistRequest) (response_models.ArtistDetail, error) {
	req = normalizeArtistRequest(req)
	if err := validateInput(req); err != nil {
		return response_models.ArtistDetail{}, err
	}

	artist := &db_models.Artist{}
	applyArtistRequest(artist, req)
	if err := s.artistRepo.Create(ctx, artist, req.Genres); err != nil {
		return response_models.ArtistDetail{}, storeError(s.log, "create artist", err)
	}
	s.log.Info("artist listed", zap.Uint("artist_id", artist.ID), zap.String("name", artist.Name))
	return s.GetArtist(ctx, artist.ID)
}

func (s *ArtistService) UpdateArtist(ctx context.Context, id uint, req request_models.ArtistRequest) (response_models.ArtistDetail, error) {
	req = normalizeArtistRequest(req)
	if err := validateInput(req); err != nil {
		return response_models.ArtistDetail{}, err
	}

	artist, err := s.artistRepo.GetByIDWithShows(ctx, id)
	if err != nil {
		return response_models.ArtistDetail{}, storeError(s.log, "get artist", err)
	}
	if artist == nil {
		return response_models.ArtistDetail{}, utils.ErrArtistNotFound
	}

	applyArtistRequest(artist, req)
	if err := s.artistRepo.Update(ctx, artist, req.Genres); err != nil {
		return response_models.ArtistDetail{}, storeError(s.log, "update artist", err)
	}
	return s.GetArtist(ctx, id)
}

func (s *ArtistService) toArtistDetail(a *db_models.Artist) response_models.ArtistDetail {
	detail := response_models.ArtistDetail{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             genreNames(a.Genres),
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          []response_models.ArtistShow{},
		UpcomingShows:      []response_models.ArtistShow{},
	}

	now := s.now()
	for _, show := range a.Shows {
		item := response_models.ArtistShow{
			VenueID:        show.VenueID,
			VenueName:      show.Venue.Name,
			VenueImageLink: show.Venue.ImageLink,
			StartTime:      utils.FormatShowTime(show.StartTime),
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

func normalizeArtistRequest(req request_models.ArtistRequest) request_models.ArtistRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.City = strings.TrimSpace(req.City)
	req.State = strings.TrimSpace(req.State)
	req.ImageLink = strings.TrimSpace(req.ImageLink)
	req.FacebookLink = strings.TrimSpace(req.FacebookLink)
	req.Website = strings.TrimSpace(req.Website)
	return req
}

func applyArtistRequest(a *db_models.Artist, req request_models.ArtistRequest) {
	a.Name = req.Name
	a.City = req.City
	a.State = req.State
	a.Phone = optionalString(req.Phone)
	a.ImageLink = optionalString(req.ImageLink)
	a.FacebookLink = optionalString(req.FacebookLink)
	a.Website = optionalString(req.Website)
	a.SeekingVenue = req.SeekingVenue
	a.SeekingDescription = strings.TrimSpace(req.SeekingDescription)
}

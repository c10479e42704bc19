package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"fyyurtrivia/internal/models/db_models"
	"fyyurtrivia/internal/models/request_models"
	"fyyurtrivia/internal/models/response_models"
	"fyyurtrivia/internal/repositories"
	"fyyurtrivia/pkg/utils"
)

type ShowServiceInterface interface {
	ListUpcoming(ctx context.Context) ([]response_models.Show, error)
	CreateShow(ctx context.Context, req request_models.ShowRequest) (response_models.Show, error)
}

type ShowService struct {
	showRepo   repositories.ShowRepository
	artistRepo repositories.ArtistRepository
	venueRepo  repositories.VenueRepository
	now        utils.Clock
	log        *zap.Logger
}

func NewShowService(
	showRepo repositories.ShowRepository,
	artistRepo repositories.ArtistRepository,
	venueRepo repositories.VenueRepository,
	now utils.Clock,
	log *zap.Logger,
) ShowServiceInterface {
	if now == nil {
		now = utils.SystemClock
	}
	return &ShowService{
		showRepo:   showRepo,
		artistRepo: artistRepo,
		venueRepo:  venueRepo,
		now:        now,
		log:        log,
	}
}

func (s *ShowService) ListUpcoming(ctx context.Context) ([]response_models.Show, error) {
	shows, err := s.showRepo.ListUpcoming(ctx, s.now())
	if err != nil {
		return nil, storeError(s.log, "list shows", err)
	}

	out := make([]response_models.Show, 0, len(shows))
	for _, show := range shows {
		out = append(out, toShowResponse(show))
	}
	return out, nil
}

func (s *ShowService) CreateShow(ctx context.Context, req request_models.ShowRequest) (response_models.Show, error) {
	req.StartTime = strings.TrimSpace(req.StartTime)
	if err := validateInput(req); err != nil {
		return response_models.Show{}, err
	}
	start, err := utils.ParseShowTime(req.StartTime)
	if err != nil {
		return response_models.Show{}, fmt.Errorf("%w: start_time: %v", utils.ErrValidation, err)
	}

	artistID, venueID := uint(req.ArtistID), uint(req.VenueID)
	ok, err := s.artistRepo.Exists(ctx, artistID)
	if err != nil {
		return response_models.Show{}, storeError(s.log, "check artist", err)
	}
	if !ok {
		return response_models.Show{}, utils.ErrArtistNotFound
	}
	ok, err = s.venueRepo.Exists(ctx, venueID)
	if err != nil {
		return response_models.Show{}, storeError(s.log, "check venue", err)
	}
	if !ok {
		return response_models.Show{}, utils.ErrVenueNotFound
	}

	show := &db_models.Show{ArtistID: artistID, VenueID: venueID, StartTime: start}
	if err := s.showRepo.Create(ctx, show); err != nil {
		return response_models.Show{}, storeError(s.log, "create show", err)
	}
	s.log.Info("show listed", zap.Uint("show_id", show.ID), zap.Uint("artist_id", artistID), zap.Uint("venue_id", venueID))

	return response_models.Show{
		ID:        show.ID,
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: utils.FormatShowTime(start),
	}, nil
}

func toShowResponse(show db_models.Show) response_models.Show {
	return response_models.Show{
		ID:              show.ID,
		VenueID:         show.VenueID,
		VenueName:       show.Venue.Name,
		ArtistID:        show.ArtistID,
		ArtistName:      show.Artist.Name,
		ArtistImageLink: show.Artist.ImageLink,
		StartTime:       utils.FormatShowTime(show.StartTime),
	}
}

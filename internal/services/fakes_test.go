package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"fyyurtrivia/internal/models/db_models"
	"fyyurtrivia/internal/repositories"
)

var errStoreDown = errors.New("connection refused")

type fakeCategoryRepo struct {
	categories []db_models.Category
	err        error
}

func (f *fakeCategoryRepo) List(context.Context) ([]db_models.Category, error) {
	return f.categories, f.err
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id uint) (*db_models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.categories {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *db_models.Category) error {
	c.ID = uint(len(f.categories) + 1)
	f.categories = append(f.categories, *c)
	return f.err
}

type fakeQuestionRepo struct {
	questions []db_models.Question
	nextID    uint
	err       error
}

func newFakeQuestionRepo(questions ...db_models.Question) *fakeQuestionRepo {
	f := &fakeQuestionRepo{questions: questions}
	for _, q := range questions {
		f.nextID = max(f.nextID, q.ID)
	}
	return f
}

func (f *fakeQuestionRepo) Count(context.Context) (int64, error) {
	return int64(len(f.questions)), f.err
}

func (f *fakeQuestionRepo) ListPage(_ context.Context, offset, limit int) ([]db_models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	end := min(offset+limit, len(f.questions))
	return f.questions[offset:end], nil
}

func (f *fakeQuestionRepo) ListByCategory(_ context.Context, categoryID uint) ([]db_models.Question, error) {
	var out []db_models.Question
	for _, q := range f.questions {
		if q.CategoryID == categoryID {
			out = append(out, q)
		}
	}
	return out, f.err
}

func (f *fakeQuestionRepo) ListIDs(_ context.Context, categoryID uint) ([]uint, error) {
	var ids []uint
	for _, q := range f.questions {
		if categoryID == 0 || q.CategoryID == categoryID {
			ids = append(ids, q.ID)
		}
	}
	return ids, f.err
}

func (f *fakeQuestionRepo) Search(_ context.Context, term string) ([]db_models.Question, error) {
	var out []db_models.Question
	for _, q := range f.questions {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			out = append(out, q)
		}
	}
	return out, f.err
}

func (f *fakeQuestionRepo) GetByID(_ context.Context, id uint) (*db_models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, q := range f.questions {
		if q.ID == id {
			q := q
			return &q, nil
		}
	}
	return nil, nil
}

func (f *fakeQuestionRepo) Create(_ context.Context, q *db_models.Question) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	q.ID = f.nextID
	f.questions = append(f.questions, *q)
	return nil
}

func (f *fakeQuestionRepo) Delete(_ context.Context, id uint) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for i, q := range f.questions {
		if q.ID == id {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeVenueRepo struct {
	venues    map[uint]*db_models.Venue
	summaries []repositories.Summary
	filter    repositories.SummaryFilter
	createErr error
}

func newFakeVenueRepo(venues ...*db_models.Venue) *fakeVenueRepo {
	f := &fakeVenueRepo{venues: map[uint]*db_models.Venue{}}
	for _, v := range venues {
		f.venues[v.ID] = v
	}
	return f
}

func (f *fakeVenueRepo) Summaries(_ context.Context, filter repositories.SummaryFilter, _ time.Time) ([]repositories.Summary, error) {
	f.filter = filter
	return f.summaries, nil
}

func (f *fakeVenueRepo) GetByIDWithShows(_ context.Context, id uint) (*db_models.Venue, error) {
	return f.venues[id], nil
}

func (f *fakeVenueRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := f.venues[id]
	return ok, nil
}

func (f *fakeVenueRepo) ListRecent(_ context.Context, limit int) ([]db_models.Venue, error) {
	ids := make([]uint, 0, len(f.venues))
	for id := range f.venues {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	out := make([]db_models.Venue, 0, limit)
	for _, id := range ids[:min(limit, len(ids))] {
		out = append(out, *f.venues[id])
	}
	return out, nil
}

func (f *fakeVenueRepo) Create(_ context.Context, v *db_models.Venue, genres []string) error {
	if f.createErr != nil {
		return f.createErr
	}
	v.ID = uint(len(f.venues) + 1)
	for _, g := range genres {
		v.Genres = append(v.Genres, db_models.Genre{Name: g})
	}
	f.venues[v.ID] = v
	return nil
}

func (f *fakeVenueRepo) Update(_ context.Context, v *db_models.Venue, genres []string) error {
	v.Genres = nil
	for _, g := range genres {
		v.Genres = append(v.Genres, db_models.Genre{Name: g})
	}
	f.venues[v.ID] = v
	return nil
}

func (f *fakeVenueRepo) Delete(_ context.Context, id uint) (bool, error) {
	if _, ok := f.venues[id]; !ok {
		return false, nil
	}
	delete(f.venues, id)
	return true, nil
}

type fakeArtistRepo struct {
	artists map[uint]*db_models.Artist
}

func newFakeArtistRepo(artists ...*db_models.Artist) *fakeArtistRepo {
	f := &fakeArtistRepo{artists: map[uint]*db_models.Artist{}}
	for _, a := range artists {
		f.artists[a.ID] = a
	}
	return f
}

func (f *fakeArtistRepo) List(context.Context) ([]db_models.Artist, error) {
	out := make([]db_models.Artist, 0, len(f.artists))
	for _, a := range f.artists {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeArtistRepo) Summaries(context.Context, repositories.SummaryFilter, time.Time) ([]repositories.Summary, error) {
	return nil, nil
}

func (f *fakeArtistRepo) GetByIDWithShows(_ context.Context, id uint) (*db_models.Artist, error) {
	return f.artists[id], nil
}

func (f *fakeArtistRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := f.artists[id]
	return ok, nil
}

func (f *fakeArtistRepo) ListRecent(ctx context.Context, limit int) ([]db_models.Artist, error) {
	all, _ := f.List(ctx)
	return all[:min(limit, len(all))], nil
}

func (f *fakeArtistRepo) Create(_ context.Context, a *db_models.Artist, genres []string) error {
	a.ID = uint(len(f.artists) + 1)
	for _, g := range genres {
		a.Genres = append(a.Genres, db_models.Genre{Name: g})
	}
	f.artists[a.ID] = a
	return nil
}

func (f *fakeArtistRepo) Update(_ context.Context, a *db_models.Artist, genres []string) error {
	a.Genres = nil
	for _, g := range genres {
		a.Genres = append(a.Genres, db_models.Genre{Name: g})
	}
	f.artists[a.ID] = a
	return nil
}

type fakeShowRepo struct {
	shows []db_models.Show
}

func (f *fakeShowRepo) ListUpcoming(_ context.Context, now time.Time) ([]db_models.Show, error) {
	var out []db_models.Show
	for _, s := range f.shows {
		if !s.StartTime.Before(now) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShowRepo) Create(_ context.Context, s *db_models.Show) error {
	s.ID = uint(len(f.shows) + 1)
	f.shows = append(f.shows, *s)
	return nil
}

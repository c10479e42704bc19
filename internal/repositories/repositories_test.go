package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fyyurtrivia/internal/infra/infratest"
	"fyyurtrivia/internal/models/db_models"
)

var now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func seedCategory(t *testing.T, repo CategoryRepository, name string) db_models.Category {
	t.Helper()
	category := db_models.Category{Name: name}
	require.NoError(t, repo.Create(context.Background(), &category))
	return category
}

func seedQuestion(t *testing.T, repo QuestionRepository, text string, categoryID uint) db_models.Question {
	t.Helper()
	q := db_models.Question{Question: text, Answer: "answer", CategoryID: categoryID, Difficulty: 1}
	require.NoError(t, repo.Create(context.Background(), &q))
	return q
}

func strPtr(s string) *string { return &s }

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(infratest.OpenSQLite(t))

	science := seedCategory(t, repo, "Science")
	seedCategory(t, repo, "Art")

	categories, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Science", categories[0].Name)
	assert.Equal(t, "Art", categories[1].Name)

	got, err := repo.GetByID(ctx, science.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Science", got.Name)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestQuestionRepositoryPagingAndFilters(t *testing.T) {
	ctx := context.Background()
	db := infratest.OpenSQLite(t)
	categories := NewCategoryRepository(db)
	repo := NewQuestionRepository(db)

	science := seedCategory(t, categories, "Science")
	art := seedCategory(t, categories, "Art")
	for i := 0; i < 12; i++ {
		seedQuestion(t, repo, "science question", science.ID)
	}
	for i := 0; i < 3; i++ {
		seedQuestion(t, repo, "art question", art.ID)
	}

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 15, total)

	page, err := repo.ListPage(ctx, 10, 10)
	require.NoError(t, err)
	assert.Len(t, page, 5)
	assert.Less(t, page[0].ID, page[1].ID)

	inArt, err := repo.ListByCategory(ctx, art.ID)
	require.NoError(t, err)
	assert.Len(t, inArt, 3)

	scienceIDs, err := repo.ListIDs(ctx, science.ID)
	require.NoError(t, err)
	assert.Len(t, scienceIDs, 12)

	allIDs, err := repo.ListIDs(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, allIDs, 15)
}

func TestQuestionRepositorySearch(t *testing.T) {
	ctx := context.Background()
	db := infratest.OpenSQLite(t)
	category := seedCategory(t, NewCategoryRepository(db), "History")
	repo := NewQuestionRepository(db)

	seedQuestion(t, repo, "Who discovered Penicillin?", category.ID)
	seedQuestion(t, repo, "What is 100% of nothing?", category.ID)
	seedQuestion(t, repo, "Which river is longest?", category.ID)

	found, err := repo.Search(ctx, "PENICILLIN")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Who discovered Penicillin?", found[0].Question)

	literal, err := repo.Search(ctx, "100%")
	require.NoError(t, err)
	assert.Len(t, literal, 1)

	none, err := repo.Search(ctx, "_iver")
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := repo.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestQuestionRepositorySearchFoldsNonASCII(t *testing.T) {
	ctx := context.Background()
	db := infratest.OpenSQLite(t)
	category := seedCategory(t, NewCategoryRepository(db), "Art")
	repo := NewQuestionRepository(db)

	seedQuestion(t, repo, "Qui a peint ÉTÉ à Paris?", category.ID)
	seedQuestion(t, repo, "Who painted Guernica?", category.ID)

	for _, term := range []string{"été", "ÉTÉ", "Été", "À PARIS"} {
		found, err := repo.Search(ctx, term)
		require.NoError(t, err)
		require.Len(t, found, 1, term)
		assert.Equal(t, "Qui a peint ÉTÉ à Paris?", found[0].Question)
	}
}

func TestVenueSummariesFoldNonASCIINames(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)
	cafe := f.venue(t, "Café Ümlaut", "Berlin", "BE")
	f.venue(t, "The Musical Hop", "San Francisco", "CA")

	rows, err := f.venues.Summaries(ctx, SummaryFilter{NameContains: "CAFÉ üMLAUT"}, now)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, cafe.ID, rows[0].ID)
}

func TestQuestionRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	db := infratest.OpenSQLite(t)
	category := seedCategory(t, NewCategoryRepository(db), "Sports")
	repo := NewQuestionRepository(db)
	q := seedQuestion(t, repo, "Which country won the first World Cup?", category.ID)

	deleted, err := repo.Delete(ctx, q.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err = repo.Delete(ctx, q.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%ABC%", containsPattern("ABC"))
	assert.Equal(t, `%50\%\_off\\%`, containsPattern(`50%_off\`))
}

type bookingFixture struct {
	db      *gorm.DB
	venues  VenueRepository
	artists ArtistRepository
	shows   ShowRepository
}

func newBookingFixture(t *testing.T) bookingFixture {
	db := infratest.OpenSQLite(t)
	return bookingFixture{
		db:      db,
		venues:  NewVenueRepository(db),
		artists: NewArtistRepository(db),
		shows:   NewShowRepository(db),
	}
}

func (f bookingFixture) venue(t *testing.T, name, city, state string, genres ...string) *db_models.Venue {
	t.Helper()
	v := &db_models.Venue{Name: name, City: city, State: state, Address: "1 Main St"}
	require.NoError(t, f.venues.Create(context.Background(), v, genres))
	return v
}

func (f bookingFixture) artist(t *testing.T, name, city, state string, genres ...string) *db_models.Artist {
	t.Helper()
	a := &db_models.Artist{Name: name, City: city, State: state}
	require.NoError(t, f.artists.Create(context.Background(), a, genres))
	return a
}

func (f bookingFixture) show(t *testing.T, artistID, venueID uint, start time.Time) {
	t.Helper()
	require.NoError(t, f.shows.Create(context.Background(), &db_models.Show{ArtistID: artistID, VenueID: venueID, StartTime: start}))
}

func TestResolveGenresReusesRows(t *testing.T) {
	f := newBookingFixture(t)

	first, err := ResolveGenres(f.db, []string{"Jazz", " Jazz ", "", "Folk"})
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := ResolveGenres(f.db, []string{"Folk"})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[1].ID, second[0].ID)

	var count int64
	require.NoError(t, f.db.Model(&db_models.Genre{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestVenueSummariesCountUpcomingShows(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	hop := f.venue(t, "The Musical Hop", "San Francisco", "CA", "Jazz")
	park := f.venue(t, "Park Square Live Music & Coffee", "San Francisco", "CA")
	f.venue(t, "The Dueling Pianos Bar", "New York", "NY")
	band := f.artist(t, "The Wild Sax Band", "San Francisco", "CA")

	f.show(t, band.ID, park.ID, now.Add(-48*time.Hour))
	f.show(t, band.ID, park.ID, now.Add(24*time.Hour))
	f.show(t, band.ID, park.ID, now.Add(48*time.Hour))
	f.show(t, band.ID, hop.ID, now.Add(-time.Hour))

	rows, err := f.venues.Summaries(ctx, SummaryFilter{}, now)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	// Ordered by state, city, name.
	assert.Equal(t, "Park Square Live Music & Coffee", rows[0].Name)
	assert.EqualValues(t, 2, rows[0].NumUpcomingShows)
	assert.Equal(t, "The Musical Hop", rows[1].Name)
	assert.EqualValues(t, 0, rows[1].NumUpcomingShows)
	assert.Equal(t, "NY", rows[2].State)

	filtered, err := f.venues.Summaries(ctx, SummaryFilter{NameContains: "the", City: "San Francisco", State: "CA"}, now)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, hop.ID, filtered[0].ID)

	artists, err := f.artists.Summaries(ctx, SummaryFilter{NameContains: "SAX"}, now)
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.EqualValues(t, 2, artists[0].NumUpcomingShows)
}

func TestVenueDetailAndUpdate(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	v := f.venue(t, "The Musical Hop", "San Francisco", "CA", "Swing", "Jazz")
	a := f.artist(t, "Guns N Petals", "San Francisco", "CA", "Rock n Roll")
	f.show(t, a.ID, v.ID, now.Add(24*time.Hour))

	got, err := f.venues.GetByIDWithShows(ctx, v.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Genres, 2)
	assert.Equal(t, "Jazz", got.Genres[0].Name)
	require.Len(t, got.Shows, 1)
	assert.Equal(t, "Guns N Petals", got.Shows[0].Artist.Name)

	got.City = "Oakland"
	got.Phone = strPtr("123-123-1234")
	require.NoError(t, f.venues.Update(ctx, got, []string{"Folk"}))

	updated, err := f.venues.GetByIDWithShows(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oakland", updated.City)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "123-123-1234", *updated.Phone)
	require.Len(t, updated.Genres, 1)
	assert.Equal(t, "Folk", updated.Genres[0].Name)
	assert.Len(t, updated.Shows, 1)

	missing, err := f.venues.GetByIDWithShows(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestVenueDeleteRemovesShows(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	v := f.venue(t, "The Musical Hop", "San Francisco", "CA", "Jazz")
	other := f.venue(t, "The Dueling Pianos Bar", "New York", "NY")
	a := f.artist(t, "Guns N Petals", "San Francisco", "CA")
	f.show(t, a.ID, v.ID, now.Add(time.Hour))
	f.show(t, a.ID, other.ID, now.Add(time.Hour))

	deleted, err := f.venues.Delete(ctx, v.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var shows []db_models.Show
	require.NoError(t, f.db.Find(&shows).Error)
	require.Len(t, shows, 1)
	assert.Equal(t, other.ID, shows[0].VenueID)

	exists, err := f.venues.Exists(ctx, v.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	deleted, err = f.venues.Delete(ctx, v.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUniqueNameSurfacesDuplicatedKey(t *testing.T) {
	f := newBookingFixture(t)
	f.artist(t, "Matt Quevedo", "New York", "NY")

	err := f.artists.Create(context.Background(), &db_models.Artist{Name: "Matt Quevedo", City: "Boston", State: "MA"}, nil)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestShowsListUpcomingAndRecent(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	v := f.venue(t, "Park Square Live Music & Coffee", "San Francisco", "CA")
	a := f.artist(t, "The Wild Sax Band", "San Francisco", "CA")
	b := f.artist(t, "Matt Quevedo", "New York", "NY")
	f.show(t, a.ID, v.ID, now.Add(48*time.Hour))
	f.show(t, b.ID, v.ID, now.Add(24*time.Hour))
	f.show(t, a.ID, v.ID, now.Add(-24*time.Hour))

	upcoming, err := f.shows.ListUpcoming(ctx, now)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "Matt Quevedo", upcoming[0].Artist.Name)
	assert.Equal(t, "Park Square Live Music & Coffee", upcoming[0].Venue.Name)

	recent, err := f.artists.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, b.ID, recent[0].ID)

	list, err := f.artists.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	venues, err := f.venues.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, venues, 1)

	detail, err := f.artists.GetByIDWithShows(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, detail.Shows, 2)
	assert.True(t, detail.Shows[0].StartTime.Before(detail.Shows[1].StartTime))
	assert.Equal(t, v.Name, detail.Shows[0].Venue.Name)
}

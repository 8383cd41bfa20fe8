package search

import (
	"context"
	"testing"

	"metrodir-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubSearchStore struct {
	fullText []domain.Listing
	similar  []domain.Listing
	byName   []domain.Listing

	fullTextCalls int
	similarCalls  int
	byNameCalls   int
	lastFilters   Filters
	lastQuery     string
}

func (s *stubSearchStore) FullText(_ context.Context, query string, f Filters) ([]domain.Listing, error) {
	s.fullTextCalls++
	s.lastQuery = query
	s.lastFilters = f
	return s.fullText, nil
}

func (s *stubSearchStore) BySimilarity(_ context.Context, query string, f Filters) ([]domain.Listing, error) {
	s.similarCalls++
	s.lastQuery = query
	s.lastFilters = f
	return s.similar, nil
}

func (s *stubSearchStore) ByName(_ context.Context, f Filters) ([]domain.Listing, error) {
	s.byNameCalls++
	s.lastFilters = f
	return s.byName, nil
}

func listingNamed(name string) domain.Listing {
	return domain.Listing{Name: name, Role: "Builder", Status: domain.StatusApproved}
}

func TestSearch_EmptyQueryGoesAlphabetical(t *testing.T) {
	store := &stubSearchStore{byName: []domain.Listing{listingNamed("Alpha Builders")}}
	svc := &Service{Store: store}

	got, err := svc.Search(context.Background(), Params{Query: "   "})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, store.byNameCalls)
	assert.Zero(t, store.fullTextCalls)
	assert.Zero(t, store.similarCalls)
}

func TestSearch_FullTextHitSkipsFallback(t *testing.T) {
	store := &stubSearchStore{
		fullText: []domain.Listing{listingNamed("River City Restoration")},
		similar:  []domain.Listing{listingNamed("should never appear")},
	}
	svc := &Service{Store: store}

	got, err := svc.Search(context.Background(), Params{Query: " restoration "})
	require.NoError(t, err)
	assert.Equal(t, "River City Restoration", got[0].Name)
	assert.Equal(t, "restoration", store.lastQuery)
	assert.Equal(t, 1, store.fullTextCalls)
	assert.Zero(t, store.similarCalls)
}

func TestSearch_FallbackOnlyOnEmptyFullText(t *testing.T) {
	// One transposed character defeats term matching; trigrams tolerate it.
	store := &stubSearchStore{
		similar: []domain.Listing{listingNamed("River City Restoration")},
	}
	svc := &Service{Store: store}

	got, err := svc.Search(context.Background(), Params{Query: "restoartion"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, store.fullTextCalls)
	assert.Equal(t, 1, store.similarCalls)
}

func TestSearch_UnrecognizedRoleSilentlyIgnored(t *testing.T) {
	store := &stubSearchStore{}
	svc := &Service{Store: store}

	_, err := svc.Search(context.Background(), Params{Role: "Wizard", Location: " Butchertown "})
	require.NoError(t, err)
	assert.Equal(t, "", store.lastFilters.Role)
	assert.Equal(t, "Butchertown", store.lastFilters.Location)

	_, err = svc.Search(context.Background(), Params{Role: "Builder"})
	require.NoError(t, err)
	assert.Equal(t, "Builder", store.lastFilters.Role)
}

// GormStore.ByName is portable SQL; cover it against a real database.
func TestGormStoreByName(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Listing{}))

	addr1 := "120 E Main St, Louisville"
	addr2 := "9000 Shelbyville Rd, Middletown"
	require.NoError(t, db.Create(&domain.Listing{Name: "Zenith Masonry", Role: "Builder", Status: domain.StatusApproved, Address: &addr1}).Error)
	require.NoError(t, db.Create(&domain.Listing{Name: "Arch Advocates", Role: "Advocate", Status: domain.StatusApproved, Address: &addr2}).Error)
	require.NoError(t, db.Create(&domain.Listing{Name: "Hidden Draft", Role: "Builder", Status: domain.StatusDraft, Address: &addr1}).Error)
	require.NoError(t, db.Create(&domain.Listing{Name: "Hidden Pending", Role: "Builder", Status: domain.StatusPending}).Error)

	store := &GormStore{DB: db}

	all, err := store.ByName(context.Background(), Filters{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Arch Advocates", all[0].Name)
	assert.Equal(t, "Zenith Masonry", all[1].Name)

	builders, err := store.ByName(context.Background(), Filters{Role: "Builder"})
	require.NoError(t, err)
	require.Len(t, builders, 1)
	assert.Equal(t, "Zenith Masonry", builders[0].Name)

	located, err := store.ByName(context.Background(), Filters{Location: "main st"})
	require.NoError(t, err)
	require.Len(t, located, 1)
	assert.Equal(t, "Zenith Masonry", located[0].Name)
}

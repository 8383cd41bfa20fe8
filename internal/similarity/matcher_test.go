package similarity

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubStore struct {
	matches []Match
	err     error

	gotName      string
	gotThreshold float64
	gotLimit     int
}

func (s *stubStore) SimilarNames(_ context.Context, name string, threshold float64, limit int) ([]Match, error) {
	s.gotName = name
	s.gotThreshold = threshold
	s.gotLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	out := make([]Match, 0, len(s.matches))
	for _, m := range s.matches {
		if m.Similarity > threshold {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestFindSimilar_PassesQueryParameters(t *testing.T) {
	store := &stubStore{}
	m := &Matcher{Store: store}

	m.FindSimilar(context.Background(), "River City Restoration", DefaultThreshold)

	assert.Equal(t, "River City Restoration", store.gotName)
	assert.Equal(t, 0.4, store.gotThreshold)
	assert.Equal(t, 5, store.gotLimit)
}

func TestFindSimilar_IdenticalNameRanksFirst(t *testing.T) {
	exact := Match{ID: uuid.New(), Name: "River City Restoration", Role: "Builder", Similarity: 1.0}
	near := Match{ID: uuid.New(), Name: "River City Restoration Co", Role: "Builder", Similarity: 0.62}
	store := &stubStore{matches: []Match{exact, near}}
	m := &Matcher{Store: store}

	got := m.FindSimilar(context.Background(), "River City Restoration", DefaultThreshold)
	assert.Len(t, got, 2)
	assert.Equal(t, exact, got[0])
	assert.Equal(t, 1.0, got[0].Similarity)
}

func TestFindSimilar_StoreFailureDegradesToEmpty(t *testing.T) {
	store := &stubStore{err: errors.New("connection refused")}
	m := &Matcher{Store: store}

	got := m.FindSimilar(context.Background(), "anything", DefaultThreshold)
	assert.Empty(t, got)
}

func TestCheckForDuplicate_BelowThreshold(t *testing.T) {
	store := &stubStore{matches: []Match{
		{ID: uuid.New(), Name: "River City Restoration", Similarity: 0.6},
	}}
	m := &Matcher{Store: store}

	assert.Nil(t, m.CheckForDuplicate(context.Background(), "River City Restoration Co"))
	assert.Equal(t, DuplicateThreshold, store.gotThreshold)
}

func TestCheckForDuplicate_ReturnsBestMatch(t *testing.T) {
	best := Match{ID: uuid.New(), Name: "River City Restoration", Similarity: 0.85}
	store := &stubStore{matches: []Match{best, {ID: uuid.New(), Name: "River City Roofing", Similarity: 0.72}}}
	m := &Matcher{Store: store}

	got := m.CheckForDuplicate(context.Background(), "River City Restoration Co")
	assert.NotNil(t, got)
	assert.Equal(t, best.ID, got.ID)
}

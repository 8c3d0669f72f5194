package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_New_Pair_Normalizes_Order(t *testing.T) {
	req := require.New(t)
	req.Equal(NewPair("U1", "U2"), NewPair("U2", "U1"))
	req.Equal(Member("U1"), NewPair("U2", "U1").A)
}

func Test_Pair_Partner(t *testing.T) {
	req := require.New(t)
	pair := NewPair("U1", "U2")

	partner, ok := pair.Partner("U1")
	req.True(ok)
	req.Equal(Member("U2"), partner)

	_, ok = pair.Partner("U9")
	req.False(ok)
}

func Test_Build_Match_History(t *testing.T) {
	req := require.New(t)
	rounds := []Round{
		{Pairs: []Pair{NewPair("U1", "U2"), NewPair("U3", "U4")}},
		{Pairs: []Pair{NewPair("U1", "U3")}},
	}

	history := BuildMatchHistory(rounds)

	req.True(history.Matched("U1", "U2"))
	req.True(history.Matched("U2", "U1"))
	req.True(history.Matched("U1", "U3"))
	req.False(history.Matched("U2", "U3"))
}

func Test_Merge_Rounds_Drops_Duplicate_Announcements(t *testing.T) {
	req := require.New(t)
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	pairs := []Pair{NewPair("U1", "U2")}

	// The channel log yields rounds without IDs, the local cache with IDs.
	fromChannel := []Round{{At: at, Pairs: pairs}}
	fromCache := []Round{
		{ID: uuid.New(), At: at, Pairs: pairs},
		{ID: uuid.New(), At: at.Add(-7 * 24 * time.Hour), Pairs: []Pair{NewPair("U1", "U3")}},
	}

	merged := MergeRounds(fromChannel, fromCache)

	req.Len(merged, 2)
	req.Equal(fromChannel[0], merged[0])
}

func Test_Member_Is_Handle(t *testing.T) {
	req := require.New(t)
	req.True(Member("@alice").IsHandle())
	req.False(Member("U0123ABCD").IsHandle())
}

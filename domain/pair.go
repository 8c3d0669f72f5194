package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Pair is an unordered pair of members. NewPair normalizes the order so
// that two pairs with the same members always compare equal.
type Pair struct {
	A Member `json:"a"`
	B Member `json:"b"`
}

func NewPair(a, b Member) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Partner returns the other member of the pair, or false when m is not
// part of it.
func (p Pair) Partner(m Member) (Member, bool) {
	switch m {
	case p.A:
		return p.B, true
	case p.B:
		return p.A, true
	default:
		return "", false
	}
}

// Round is one past announcement: the pairs that were posted together.
// Rounds parsed back from the memory channel carry a zero ID.
type Round struct {
	ID    uuid.UUID `json:"id"`
	At    time.Time `json:"at"`
	Pairs []Pair    `json:"pairs"`
}

// key identifies a round for deduplication across the channel log and the
// local cache. Parsed rounds have no ID, so the posting second plus the
// normalized pair list is used instead.
func (r Round) key() string {
	parts := make([]string, 0, len(r.Pairs))
	for _, p := range r.Pairs {
		parts = append(parts, string(p.A)+"+"+string(p.B))
	}
	sort.Strings(parts)
	return fmt.Sprintf("%d|%s", r.At.Unix(), strings.Join(parts, ","))
}

// MergeRounds combines rounds from several sources, dropping duplicates of
// the same announcement. Order of the result follows the inputs.
func MergeRounds(sources ...[]Round) []Round {
	seen := make(map[string]struct{})
	var merged []Round
	for _, rounds := range sources {
		for _, r := range rounds {
			k := r.key()
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			merged = append(merged, r)
		}
	}
	return merged
}

// MatchHistory maps each member to the set of partners they already had
// within the lookback window.
type MatchHistory map[Member]map[Member]struct{}

// BuildMatchHistory flattens past rounds into a MatchHistory.
func BuildMatchHistory(rounds []Round) MatchHistory {
	history := make(MatchHistory)
	add := func(a, b Member) {
		if history[a] == nil {
			history[a] = make(map[Member]struct{})
		}
		history[a][b] = struct{}{}
	}
	for _, round := range rounds {
		for _, pair := range round.Pairs {
			add(pair.A, pair.B)
			add(pair.B, pair.A)
		}
	}
	return history
}

// Matched reports whether a and b were already paired together.
func (h MatchHistory) Matched(a, b Member) bool {
	_, ok := h[a][b]
	return ok
}

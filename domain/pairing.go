package domain

import (
	"math/rand"

	"github.com/samber/lo"
)

// GeneratePairs shuffles the roster and pairs members greedily, avoiding
// partners already present in the history where possible. With an odd
// roster the leftover member is paired with the member that was drawn
// first, so one person ends up in two pairs. An empty roster yields no
// pairs.
func GeneratePairs(members []Member, history MatchHistory, rng *rand.Rand) []Pair {
	if len(members) == 0 {
		return nil
	}

	pool := make([]Member, len(members))
	copy(pool, members)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	// The first member drawn also absorbs the leftover of an odd roster.
	first := pool[len(pool)-1]

	var pairs []Pair
	for len(pool) > 0 {
		var m1 Member
		if len(pool) >= 2 {
			m1 = pool[len(pool)-1]
			pool = pool[:len(pool)-1]
		} else {
			m1 = first
		}

		var m2 Member
		m2, pool = pickPartner(m1, pool, history, rng)
		pairs = append(pairs, NewPair(m1, m2))
	}
	return pairs
}

// pickPartner chooses a random member of the pool that m1 has not met
// within the lookback window. When every remaining member is a previous
// match, any random member is taken instead. The chosen partner is removed
// from the returned pool.
func pickPartner(m1 Member, pool []Member, history MatchHistory, rng *rand.Rand) (Member, []Member) {
	candidates := lo.Filter(pool, func(m Member, _ int) bool {
		return !history.Matched(m1, m)
	})
	if len(candidates) == 0 {
		candidates = pool
	}

	m2 := candidates[rng.Intn(len(candidates))]

	index := lo.IndexOf(pool, m2)
	pool = append(pool[:index], pool[index+1:]...)
	return m2, pool
}

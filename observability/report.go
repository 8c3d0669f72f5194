package observability

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// RunReport aggregates counters for a single round. Counters are atomic so
// the Slack gateway and the DM workers can increment them concurrently.
// A nil report is valid and discards every increment.
type RunReport struct {
	startedAt time.Time

	APICalls        uint64
	RateLimitWaits  uint64
	MembersFound    uint64
	BotsSkipped     uint64
	RoundsRecovered uint64
	PairsGenerated  uint64
	DMsSent         uint64
	DMsFailed       uint64
}

func NewRunReport() *RunReport {
	return &RunReport{startedAt: time.Now()}
}

// incr must check for a nil receiver before the caller's &r.Field is
// dereferenced, so the wrappers below guard first and only then take the
// field address.
func (r *RunReport) incr(counter *uint64, n uint64) {
	atomic.AddUint64(counter, n)
}

func (r *RunReport) IncrAPICalls() {
	if r == nil {
		return
	}
	r.incr(&r.APICalls, 1)
}

func (r *RunReport) IncrRateLimitWaits() {
	if r == nil {
		return
	}
	r.incr(&r.RateLimitWaits, 1)
}

func (r *RunReport) AddMembersFound(n int) {
	if r == nil {
		return
	}
	r.incr(&r.MembersFound, uint64(n))
}

func (r *RunReport) IncrBotsSkipped() {
	if r == nil {
		return
	}
	r.incr(&r.BotsSkipped, 1)
}

func (r *RunReport) AddRoundsRecovered(n int) {
	if r == nil {
		return
	}
	r.incr(&r.RoundsRecovered, uint64(n))
}

func (r *RunReport) AddPairsGenerated(n int) {
	if r == nil {
		return
	}
	r.incr(&r.PairsGenerated, uint64(n))
}

func (r *RunReport) IncrDMsSent() {
	if r == nil {
		return
	}
	r.incr(&r.DMsSent, 1)
}

func (r *RunReport) IncrDMsFailed() {
	if r == nil {
		return
	}
	r.incr(&r.DMsFailed, 1)
}

// Log emits the final round summary.
func (r *RunReport) Log(log *slog.Logger) {
	if r == nil {
		return
	}
	log.Info("Round finished",
		"duration", time.Since(r.startedAt).Round(time.Millisecond),
		"api_calls", atomic.LoadUint64(&r.APICalls),
		"rate_limit_waits", atomic.LoadUint64(&r.RateLimitWaits),
		"members_found", atomic.LoadUint64(&r.MembersFound),
		"bots_skipped", atomic.LoadUint64(&r.BotsSkipped),
		"rounds_recovered", atomic.LoadUint64(&r.RoundsRecovered),
		"pairs_generated", atomic.LoadUint64(&r.PairsGenerated),
		"dms_sent", atomic.LoadUint64(&r.DMsSent),
		"dms_failed", atomic.LoadUint64(&r.DMsFailed),
	)
}

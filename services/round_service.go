package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"randomcoffee/announce"
	"randomcoffee/domain"
	apperrors "randomcoffee/errors"
	"randomcoffee/observability"
	"randomcoffee/repositories"
	"randomcoffee/runtime/workers"
	"randomcoffee/slackapi"

	"github.com/google/uuid"
)

// RoundConfig carries the already-routed channel names for one round:
// MainChannel is where participants live (the testing channel in testing
// mode) and MemoryChannel is where history is kept. When pairs are public
// the two are the same channel.
type RoundConfig struct {
	MainChannel    string
	MemoryChannel  string
	PairsArePublic bool
	LookbackDays   int
	DMWorkers      int
	DMPace         time.Duration
}

// RoundService runs one complete round: resolve channels, fetch the
// roster, recover history, generate pairs, DM them, and post the summary.
type RoundService struct {
	log        *slog.Logger
	gateway    slackapi.IGateway
	roster     IRosterService
	channelLog repositories.IChannelHistory
	cache      repositories.IHistoryCache
	codec      announce.Codec
	report     *observability.RunReport
	rng        *rand.Rand
	cfg        RoundConfig
	now        func() time.Time
}

// NewRoundService assembles a round. cache may be nil when the local
// history cache is disabled.
func NewRoundService(
	log *slog.Logger,
	gateway slackapi.IGateway,
	roster IRosterService,
	channelLog repositories.IChannelHistory,
	cache repositories.IHistoryCache,
	codec announce.Codec,
	report *observability.RunReport,
	rng *rand.Rand,
	cfg RoundConfig,
) *RoundService {
	return &RoundService{
		log:        log,
		gateway:    gateway,
		roster:     roster,
		channelLog: channelLog,
		cache:      cache,
		codec:      codec,
		report:     report,
		rng:        rng,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (s *RoundService) Run(ctx context.Context) error {
	// 1. Channel routing. The memory channel doubles as the announcement
	// target when pairs are public.
	names := []string{s.cfg.MainChannel}
	memoryName := s.cfg.MainChannel
	if !s.cfg.PairsArePublic {
		memoryName = s.cfg.MemoryChannel
		names = append(names, memoryName)
	}

	channelIDs, err := s.gateway.ResolveChannelIDs(ctx, names)
	if err != nil {
		return fmt.Errorf("resolving channels: %w", err)
	}
	channelID := channelIDs[s.cfg.MainChannel]
	memoryID := channelIDs[memoryName]
	s.log.Info("Channels resolved", "channel", channelID, "memory", memoryID)

	// 2. Bot identity. Losing it only widens the history filter, so a
	// failure here is not fatal.
	botUserID, err := s.gateway.AuthTest(ctx)
	if err != nil {
		s.log.Warn("Could not identify bot user, keeping every summary-looking message", "error", err)
		botUserID = ""
	}

	// 3. Roster.
	members, err := s.roster.Members(ctx, channelID)
	if err != nil {
		return err
	}
	if len(members) == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrEmptyRoster, s.cfg.MainChannel)
	}

	// 4. History inside the lookback window.
	since := s.now().AddDate(0, 0, -s.cfg.LookbackDays)
	messageCap := len(members) - 2
	if messageCap < 1 {
		messageCap = 1
	}
	rounds, err := s.channelLog.Rounds(ctx, memoryID, botUserID, since, messageCap)
	if err != nil {
		s.log.Warn("Memory channel unreadable, relying on local cache", "error", err)
		rounds = nil
	}
	if s.cache != nil {
		cached, err := s.cache.Rounds(since)
		if err != nil {
			s.log.Warn("Local history cache unreadable", "error", err)
		} else {
			rounds = domain.MergeRounds(rounds, cached)
		}
	}

	// 5. Pairing.
	pairs := domain.GeneratePairs(members, domain.BuildMatchHistory(rounds), s.rng)
	s.report.AddPairsGenerated(len(pairs))
	s.log.Info("Pairs generated", "pairs", len(pairs))
	if len(pairs) == 0 {
		return nil
	}

	// 6. Group DM each pair under supervision.
	s.sendGroupDMs(ctx, pairs, channelID)

	// 7. Summary to the memory channel, teaser to the main channel when
	// pairings stay private.
	if err := s.gateway.PostMessage(ctx, memoryID, s.codec.Summary(pairs)); err != nil {
		return fmt.Errorf("posting summary: %w", err)
	}
	if s.cache != nil {
		round := domain.Round{ID: uuid.New(), At: s.now(), Pairs: pairs}
		if err := s.cache.Record(round); err != nil {
			s.log.Warn("Could not record round in local cache", "error", err)
		}
	}
	if !s.cfg.PairsArePublic {
		if err := s.gateway.PostMessage(ctx, channelID, s.codec.Teaser(len(pairs))); err != nil {
			s.log.Error("Could not post teaser", "error", err)
		}
	}
	return nil
}

func (s *RoundService) sendGroupDMs(ctx context.Context, pairs []domain.Pair, channelID string) {
	pairsChan := make(chan domain.Pair, len(pairs))
	for _, pair := range pairs {
		pairsChan <- pair
	}
	close(pairsChan)

	workerCount := s.cfg.DMWorkers
	if workerCount < 1 {
		workerCount = 1
	}

	sup := workers.NewSupervisor(s.log)
	for i := 0; i < workerCount; i++ {
		sup.Add(workers.NewDMSenderWorker(
			s.log, s.gateway, s.codec, channelID, pairsChan, s.report, s.cfg.DMPace,
		))
	}
	sup.Run(ctx)
}

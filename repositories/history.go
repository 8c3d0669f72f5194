// Package repositories holds the pairing-history stores: the memory
// channel itself (source of truth, parsed back from the bot's own
// announcements) and a local BadgerDB cache.
package repositories

import (
	"context"
	"log/slog"
	"time"

	"randomcoffee/announce"
	"randomcoffee/domain"
	"randomcoffee/observability"
	"randomcoffee/slackapi"
)

type IChannelHistory interface {
	Rounds(ctx context.Context, channelID, botUserID string, since time.Time, limit int) ([]domain.Round, error)
}

// ChannelHistoryRepository recovers past rounds from the memory channel by
// parsing the bot's own summary messages inside the lookback window.
type ChannelHistoryRepository struct {
	gateway slackapi.IGateway
	codec   announce.Codec
	log     *slog.Logger
	report  *observability.RunReport
}

func NewChannelHistoryRepository(
	gateway slackapi.IGateway,
	codec announce.Codec,
	log *slog.Logger,
	report *observability.RunReport,
) ChannelHistoryRepository {
	return ChannelHistoryRepository{gateway: gateway, codec: codec, log: log, report: report}
}

// Rounds lists past rounds, newest first. Messages from other users are
// ignored; an empty botUserID disables that filter (identity lookup may
// have failed, parsing still applies the magical-text marker). limit caps
// how many bot messages are considered, <= 0 means no cap.
func (r ChannelHistoryRepository) Rounds(
	ctx context.Context,
	channelID, botUserID string,
	since time.Time,
	limit int,
) ([]domain.Round, error) {
	messages, err := r.gateway.History(ctx, channelID, since, time.Now())
	if err != nil {
		return nil, err
	}
	r.log.Debug("Memory channel history retrieved", "messages", len(messages))

	var kept int
	var rounds []domain.Round
	for _, message := range messages {
		if botUserID != "" && message.UserID != botUserID {
			continue
		}
		if limit > 0 && kept == limit {
			break
		}
		kept++

		pairs, ok := r.codec.ParseSummary(message.Text)
		if !ok {
			continue
		}
		rounds = append(rounds, domain.Round{At: message.At, Pairs: pairs})
	}

	r.report.AddRoundsRecovered(len(rounds))
	r.log.Info("Previous rounds recovered from memory channel", "rounds", len(rounds))
	return rounds, nil
}

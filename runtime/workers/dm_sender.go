package workers

import (
	"context"
	"log/slog"
	"time"

	"randomcoffee/announce"
	"randomcoffee/domain"
	"randomcoffee/observability"
	"randomcoffee/slackapi"
)

// DMSenderWorker drains a channel of pairs and sends each one its group DM
// greeting. Several instances run under the supervisor; failures are
// counted and logged, never fatal to the round. Sends are paced to stay
// clear of the Slack rate limiter.
type DMSenderWorker struct {
	log       *slog.Logger
	gateway   slackapi.IGateway
	codec     announce.Codec
	channelID string
	pairs     <-chan domain.Pair
	report    *observability.RunReport
	pace      time.Duration
}

func NewDMSenderWorker(
	log *slog.Logger,
	gateway slackapi.IGateway,
	codec announce.Codec,
	channelID string,
	pairs <-chan domain.Pair,
	report *observability.RunReport,
	pace time.Duration,
) *DMSenderWorker {
	return &DMSenderWorker{
		log:       log,
		gateway:   gateway,
		codec:     codec,
		channelID: channelID,
		pairs:     pairs,
		report:    report,
		pace:      pace,
	}
}

// Run terminates with nil once the pairs channel is closed and drained.
func (w *DMSenderWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case pair, ok := <-w.pairs:
			if !ok {
				return nil
			}
			w.send(ctx, pair)

			if w.pace > 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(w.pace):
				}
			}
		}
	}
}

func (w *DMSenderWorker) send(ctx context.Context, pair domain.Pair) {
	if pair.A.IsHandle() || pair.B.IsHandle() {
		// Testing-mode handles are not user IDs, Slack cannot open the mpim.
		w.log.Info("Skipping group DM for inert handles", "a", pair.A, "b", pair.B)
		return
	}
	if pair.A == pair.B {
		// Single-member roster pairs a member with themselves.
		w.log.Info("Skipping group DM for self pair", "member", pair.A)
		return
	}

	dmChannelID, err := w.gateway.OpenGroupDM(ctx, []string{string(pair.A), string(pair.B)})
	if err != nil {
		w.log.Error("Failed to open group DM", "a", pair.A, "b", pair.B, "error", err)
		w.report.IncrDMsFailed()
		return
	}

	if err := w.gateway.PostMessage(ctx, dmChannelID, w.codec.Greeting(pair, w.channelID)); err != nil {
		w.log.Error("Failed to post group DM", "a", pair.A, "b", pair.B, "error", err)
		w.report.IncrDMsFailed()
		return
	}
	w.report.IncrDMsSent()
}

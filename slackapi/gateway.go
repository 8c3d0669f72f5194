//go:generate go run go.uber.org/mock/mockgen -source=gateway.go -destination=../mocks/mock_gateway.go -package=mocks
package slackapi

import (
	"context"
	"time"
)

// Profile is the subset of a Slack user the bot cares about.
type Profile struct {
	ID    string
	Name  string
	IsBot bool
}

// Message is one entry of a channel history.
type Message struct {
	UserID string
	Text   string
	At     time.Time
}

// IGateway is the Slack Web API surface used by the bot. Implementations
// must handle pagination and rate limiting internally.
type IGateway interface {
	// AuthTest returns the bot's own user ID.
	AuthTest(ctx context.Context) (string, error)
	// ResolveChannelIDs maps human readable channel names to channel IDs.
	// Every requested name must resolve, otherwise ErrChannelNotFound.
	ResolveChannelIDs(ctx context.Context, names []string) (map[string]string, error)
	// ChannelMemberIDs lists the user IDs of a channel.
	ChannelMemberIDs(ctx context.Context, channelID string) ([]string, error)
	// UserInfo fetches a user profile.
	UserInfo(ctx context.Context, userID string) (Profile, error)
	// History lists the messages of a channel inside a time window,
	// newest first as Slack returns them.
	History(ctx context.Context, channelID string, oldest, latest time.Time) ([]Message, error)
	// PostMessage posts a plain text message to a channel or DM.
	PostMessage(ctx context.Context, channelID, text string) error
	// OpenGroupDM opens a multi-party DM and returns its channel ID.
	OpenGroupDM(ctx context.Context, userIDs []string) (string, error)
}

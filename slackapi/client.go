package slackapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	apperrors "randomcoffee/errors"
	"randomcoffee/observability"

	"github.com/samber/lo"
	"github.com/slack-go/slack"
)

// maxRateLimitRetries bounds how often a single call is replayed after a
// 429 before the error is surfaced.
const maxRateLimitRetries = 3

// Client implements IGateway on top of the Slack Web API. Paginated
// endpoints are walked with a pause between pages to stay clear of the
// rate limiter; 429 responses are retried after the server-advertised
// delay.
type Client struct {
	api          *slack.Client
	log          *slog.Logger
	report       *observability.RunReport
	pageSize     int
	pageInterval time.Duration
	namesAreIDs  bool
}

func NewClient(
	api *slack.Client,
	log *slog.Logger,
	report *observability.RunReport,
	pageSize int,
	pageInterval time.Duration,
	namesAreIDs bool,
) *Client {
	return &Client{
		api:          api,
		log:          log,
		report:       report,
		pageSize:     pageSize,
		pageInterval: pageInterval,
		namesAreIDs:  namesAreIDs,
	}
}

func (c *Client) AuthTest(ctx context.Context) (string, error) {
	var response *slack.AuthTestResponse
	err := c.withRetry(ctx, func() error {
		var err error
		response, err = c.api.AuthTestContext(ctx)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("auth.test: %w", err)
	}
	return response.UserID, nil
}

func (c *Client) ResolveChannelIDs(ctx context.Context, names []string) (map[string]string, error) {
	if c.namesAreIDs {
		// The configuration already carries literal channel IDs.
		return lo.SliceToMap(names, func(name string) (string, string) {
			return name, name
		}), nil
	}

	resolved := make(map[string]string, len(names))
	remaining := lo.SliceToMap(names, func(name string) (string, struct{}) {
		return name, struct{}{}
	})

	cursor := ""
	for {
		var channels []slack.Channel
		var next string
		err := c.withRetry(ctx, func() error {
			var err error
			channels, next, err = c.api.GetConversationsContext(ctx, &slack.GetConversationsParameters{
				Cursor: cursor,
				Limit:  c.pageSize,
				Types:  []string{"public_channel", "private_channel"},
			})
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("conversations.list: %w", err)
		}
		c.log.Debug("Retrieved channels page", "count", len(channels))

		for _, channel := range channels {
			if _, wanted := remaining[channel.Name]; wanted {
				resolved[channel.Name] = channel.ID
				delete(remaining, channel.Name)
			}
		}
		if len(remaining) == 0 {
			return resolved, nil
		}
		if next == "" {
			break
		}
		cursor = next
		if err := c.pausePage(ctx); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", apperrors.ErrChannelNotFound, strings.Join(lo.Keys(remaining), ", "))
}

func (c *Client) ChannelMemberIDs(ctx context.Context, channelID string) ([]string, error) {
	var memberIDs []string
	cursor := ""
	for {
		var page []string
		var next string
		err := c.withRetry(ctx, func() error {
			var err error
			page, next, err = c.api.GetUsersInConversationContext(ctx, &slack.GetUsersInConversationParameters{
				ChannelID: channelID,
				Cursor:    cursor,
				Limit:     c.pageSize,
			})
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("conversations.members %s: %w", channelID, err)
		}
		memberIDs = append(memberIDs, page...)

		if next == "" {
			return memberIDs, nil
		}
		cursor = next
		c.log.Debug("Waiting before next page of channel members", "retrieved", len(memberIDs))
		if err := c.pausePage(ctx); err != nil {
			return nil, err
		}
	}
}

func (c *Client) UserInfo(ctx context.Context, userID string) (Profile, error) {
	var user *slack.User
	err := c.withRetry(ctx, func() error {
		var err error
		user, err = c.api.GetUserInfoContext(ctx, userID)
		return err
	})
	if err != nil {
		return Profile{}, fmt.Errorf("users.info %s: %w", userID, err)
	}
	return Profile{ID: user.ID, Name: user.Name, IsBot: user.IsBot}, nil
}

func (c *Client) History(ctx context.Context, channelID string, oldest, latest time.Time) ([]Message, error) {
	var messages []Message
	cursor := ""
	for {
		var response *slack.GetConversationHistoryResponse
		err := c.withRetry(ctx, func() error {
			var err error
			response, err = c.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
				ChannelID: channelID,
				Cursor:    cursor,
				Limit:     c.pageSize,
				Oldest:    toSlackTS(oldest),
				Latest:    toSlackTS(latest),
			})
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("conversations.history %s: %w", channelID, err)
		}
		for _, message := range response.Messages {
			messages = append(messages, Message{
				UserID: message.User,
				Text:   message.Text,
				At:     fromSlackTS(message.Timestamp),
			})
		}

		if !response.HasMore || response.ResponseMetaData.NextCursor == "" {
			return messages, nil
		}
		cursor = response.ResponseMetaData.NextCursor
		c.log.Debug("Waiting before next page of history", "retrieved", len(messages))
		if err := c.pausePage(ctx); err != nil {
			return nil, err
		}
	}
}

func (c *Client) PostMessage(ctx context.Context, channelID, text string) error {
	err := c.withRetry(ctx, func() error {
		_, _, err := c.api.PostMessageContext(ctx, channelID, slack.MsgOptionText(text, false))
		return err
	})
	if err != nil {
		return fmt.Errorf("chat.postMessage %s: %w", channelID, err)
	}
	return nil
}

func (c *Client) OpenGroupDM(ctx context.Context, userIDs []string) (string, error) {
	var channel *slack.Channel
	err := c.withRetry(ctx, func() error {
		var err error
		channel, _, _, err = c.api.OpenConversationContext(ctx, &slack.OpenConversationParameters{
			Users: userIDs,
		})
		return err
	})
	if err != nil {
		return "", fmt.Errorf("conversations.open: %w", err)
	}
	return channel.ID, nil
}

// withRetry runs one API call, replaying it after the advertised delay
// when Slack answers with a rate limit error.
func (c *Client) withRetry(ctx context.Context, call func() error) error {
	for attempt := 0; ; attempt++ {
		c.report.IncrAPICalls()
		err := call()

		var rateLimited *slack.RateLimitedError
		if err == nil || !errors.As(err, &rateLimited) || attempt >= maxRateLimitRetries {
			return err
		}

		c.report.IncrRateLimitWaits()
		c.log.Warn("Rate limited by Slack, waiting", "retry_after", rateLimited.RetryAfter)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(rateLimited.RetryAfter):
		}
	}
}

func (c *Client) pausePage(ctx context.Context) error {
	if c.pageInterval <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.pageInterval):
		return nil
	}
}

// Slack timestamps are "seconds.microseconds" strings.
func toSlackTS(t time.Time) string {
	return fmt.Sprintf("%d.%06d", t.Unix(), t.Nanosecond()/1000)
}

func fromSlackTS(ts string) time.Time {
	secPart, microPart, _ := strings.Cut(ts, ".")
	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return time.Time{}
	}
	var micro int64
	if microPart != "" {
		micro, _ = strconv.ParseInt(microPart, 10, 64)
	}
	return time.Unix(sec, micro*int64(time.Microsecond)).UTC()
}

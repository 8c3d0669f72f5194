// Package services wires the Slack gateway, the history stores, and the
// pairing engine into one round of random coffee.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"randomcoffee/domain"
	"randomcoffee/observability"
	"randomcoffee/slackapi"
)

type IRosterService interface {
	Members(ctx context.Context, channelID string) ([]domain.Member, error)
}

// RosterService turns the raw member list of a channel into pairing
// candidates: bots are dropped, and members are rendered either as user
// IDs (production) or inert "@name" handles (testing mode).
type RosterService struct {
	gateway slackapi.IGateway
	log     *slog.Logger
	report  *observability.RunReport
	testing bool
}

func NewRosterService(
	gateway slackapi.IGateway,
	log *slog.Logger,
	report *observability.RunReport,
	testing bool,
) RosterService {
	return RosterService{gateway: gateway, log: log, report: report, testing: testing}
}

func (s RosterService) Members(ctx context.Context, channelID string) ([]domain.Member, error) {
	memberIDs, err := s.gateway.ChannelMemberIDs(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("listing members of %s: %w", channelID, err)
	}

	var members []domain.Member
	for _, memberID := range memberIDs {
		profile, err := s.gateway.UserInfo(ctx, memberID)
		if err != nil {
			return nil, fmt.Errorf("fetching profile of %s: %w", memberID, err)
		}
		if profile.IsBot {
			s.report.IncrBotsSkipped()
			continue
		}
		if s.testing {
			members = append(members, domain.Member("@"+profile.Name))
		} else {
			members = append(members, domain.Member(profile.ID))
		}
	}

	s.report.AddMembersFound(len(members))
	s.log.Info("Roster fetched", "channel", channelID, "members", len(members))
	return members, nil
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"randomcoffee/domain"
	"randomcoffee/mocks"
	"randomcoffee/observability"
	"randomcoffee/slackapi"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRosterService_Members(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockIGateway(ctrl)

	gateway.EXPECT().
		ChannelMemberIDs(gomock.Any(), "C0COFFEE").
		Return([]string{"U1", "U2", "U3"}, nil).
		AnyTimes()
	gateway.EXPECT().UserInfo(gomock.Any(), "U1").
		Return(slackapi.Profile{ID: "U1", Name: "alice"}, nil).
		AnyTimes()
	gateway.EXPECT().UserInfo(gomock.Any(), "U2").
		Return(slackapi.Profile{ID: "U2", Name: "coffeebot", IsBot: true}, nil).
		AnyTimes()
	gateway.EXPECT().UserInfo(gomock.Any(), "U3").
		Return(slackapi.Profile{ID: "U3", Name: "bob"}, nil).
		AnyTimes()

	t.Run("should keep user IDs and drop bots in production", func(t *testing.T) {
		req := require.New(t)
		report := observability.NewRunReport()
		service := NewRosterService(gateway, slog.Default(), report, false)

		members, err := service.Members(context.Background(), "C0COFFEE")

		req.NoError(err)
		req.Equal([]domain.Member{"U1", "U3"}, members)
		req.Equal(uint64(1), report.BotsSkipped)
		req.Equal(uint64(2), report.MembersFound)
	})

	t.Run("should render inert handles in testing mode", func(t *testing.T) {
		req := require.New(t)
		service := NewRosterService(gateway, slog.Default(), nil, true)

		members, err := service.Members(context.Background(), "C0COFFEE")

		req.NoError(err)
		req.Equal([]domain.Member{"@alice", "@bob"}, members)
	})
}

func TestRosterService_ProfileFailureAborts(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockIGateway(ctrl)

	gateway.EXPECT().
		ChannelMemberIDs(gomock.Any(), "C0COFFEE").
		Return([]string{"U1"}, nil)
	gateway.EXPECT().
		UserInfo(gomock.Any(), "U1").
		Return(slackapi.Profile{}, fmt.Errorf("users.info: user_not_found"))

	service := NewRosterService(gateway, slog.Default(), nil, false)

	_, err := service.Members(context.Background(), "C0COFFEE")

	req.ErrorContains(err, "user_not_found")
}

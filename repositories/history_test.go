package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"randomcoffee/announce"
	"randomcoffee/domain"
	"randomcoffee/mocks"
	"randomcoffee/slackapi"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newHistoryFixture(t *testing.T) (ChannelHistoryRepository, *mocks.MockIGateway, announce.Codec) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockIGateway(ctrl)
	codec := announce.Codec{MagicalText: "RandomCoffee time", LookbackDays: 28}
	repository := NewChannelHistoryRepository(gateway, codec, slog.Default(), nil)
	return repository, gateway, codec
}

func Test_Rounds_Parses_Bot_Summaries_Only(t *testing.T) {
	req := require.New(t)
	repository, gateway, codec := newHistoryFixture(t)

	at := time.Date(2026, 2, 23, 9, 0, 0, 0, time.UTC)
	pairs := []domain.Pair{domain.NewPair("U1", "U2"), domain.NewPair("U3", "U4")}
	messages := []slackapi.Message{
		{UserID: "UBOT", Text: codec.Summary(pairs), At: at},
		{UserID: "UHUMAN", Text: "great idea <@U1>!", At: at},
		{UserID: "UBOT", Text: "I am alive", At: at},
	}
	gateway.EXPECT().
		History(gomock.Any(), "C0MEMORY", gomock.Any(), gomock.Any()).
		Return(messages, nil).
		Times(1)

	rounds, err := repository.Rounds(context.Background(), "C0MEMORY", "UBOT", at.Add(-28*24*time.Hour), 10)

	req.NoError(err)
	req.Len(rounds, 1)
	req.Equal(pairs, rounds[0].Pairs)
	req.Equal(at, rounds[0].At)
}

func Test_Rounds_Caps_Considered_Bot_Messages(t *testing.T) {
	req := require.New(t)
	repository, gateway, codec := newHistoryFixture(t)

	at := time.Date(2026, 2, 23, 9, 0, 0, 0, time.UTC)
	newest := codec.Summary([]domain.Pair{domain.NewPair("U1", "U2")})
	oldest := codec.Summary([]domain.Pair{domain.NewPair("U3", "U4")})
	messages := []slackapi.Message{
		{UserID: "UBOT", Text: newest, At: at},
		{UserID: "UBOT", Text: oldest, At: at.Add(-7 * 24 * time.Hour)},
	}
	gateway.EXPECT().
		History(gomock.Any(), "C0MEMORY", gomock.Any(), gomock.Any()).
		Return(messages, nil)

	rounds, err := repository.Rounds(context.Background(), "C0MEMORY", "UBOT", at.Add(-28*24*time.Hour), 1)

	req.NoError(err)
	req.Len(rounds, 1)
	req.Equal([]domain.Pair{domain.NewPair("U1", "U2")}, rounds[0].Pairs)
}

func Test_Rounds_Without_Bot_Identity_Keeps_Every_Summary(t *testing.T) {
	req := require.New(t)
	repository, gateway, codec := newHistoryFixture(t)

	at := time.Date(2026, 2, 23, 9, 0, 0, 0, time.UTC)
	messages := []slackapi.Message{
		{UserID: "UWHOEVER", Text: codec.Summary([]domain.Pair{domain.NewPair("U1", "U2")}), At: at},
	}
	gateway.EXPECT().
		History(gomock.Any(), "C0MEMORY", gomock.Any(), gomock.Any()).
		Return(messages, nil)

	rounds, err := repository.Rounds(context.Background(), "C0MEMORY", "", at.Add(-28*24*time.Hour), 0)

	req.NoError(err)
	req.Len(rounds, 1)
}

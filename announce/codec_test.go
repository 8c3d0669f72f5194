package announce

import (
	"strings"
	"testing"

	"randomcoffee/domain"

	"github.com/stretchr/testify/require"
)

func newCodec(testing bool) Codec {
	return Codec{MagicalText: "RandomCoffee time", LookbackDays: 28, Testing: testing}
}

func Test_Summary_Layout(t *testing.T) {
	req := require.New(t)
	codec := newCodec(false)
	pairs := []domain.Pair{
		domain.NewPair("UAAA1", "UBBB2"),
		domain.NewPair("UCCC3", "UDDD4"),
	}

	summary := codec.Summary(pairs)

	lines := strings.Split(summary, "\n")
	req.Len(lines, 4)
	req.Equal("RandomCoffee time:", lines[0])
	req.Equal(" 1. <@UAAA1> et <@UBBB2>", lines[1])
	req.Equal(" 2. <@UCCC3> et <@UDDD4>", lines[2])
	req.Contains(lines[3], "28 derniers jours")
}

func Test_Summary_Empty_Pairs(t *testing.T) {
	require.Empty(t, newCodec(false).Summary(nil))
}

func Test_Parse_Summary_Round_Trip(t *testing.T) {
	req := require.New(t)
	codec := newCodec(false)
	pairs := []domain.Pair{
		domain.NewPair("UAAA1", "UBBB2"),
		domain.NewPair("UCCC3", "UDDD4"),
		domain.NewPair("UAAA1", "UEEE5"),
	}

	parsed, ok := codec.ParseSummary(codec.Summary(pairs))

	req.True(ok)
	req.Equal(pairs, parsed)
}

func Test_Parse_Summary_Round_Trip_In_Testing_Mode(t *testing.T) {
	req := require.New(t)
	codec := newCodec(true)
	pairs := []domain.Pair{
		domain.NewPair("@alice", "@bob"),
		domain.NewPair("@carol", "@dave"),
	}

	summary := codec.Summary(pairs)
	req.NotContains(summary, "<@", "testing mode must not notify anyone")

	parsed, ok := codec.ParseSummary(summary)
	req.True(ok)
	req.Equal(pairs, parsed)
}

func Test_Parse_Summary_Rejects_Foreign_Messages(t *testing.T) {
	req := require.New(t)
	codec := newCodec(false)

	for name, text := range map[string]string{
		"unrelated chatter":   "hello <@UAAA1>, lunch?",
		"magical text only":   "RandomCoffee time is great",
		"mentions without it": " 1. <@UAAA1> et <@UBBB2>",
		"empty":               "",
	} {
		_, ok := codec.ParseSummary(text)
		req.False(ok, "should reject %s", name)
	}
}

func Test_Parse_Summary_Skips_Malformed_Lines(t *testing.T) {
	req := require.New(t)
	codec := newCodec(false)
	text := "RandomCoffee time:\n" +
		" 1. <@UAAA1> et <@UBBB2>\n" +
		" this line is broken\n" +
		" 3. <@UCCC3> without separator\n" +
		"footer about <@U> pairing"

	parsed, ok := codec.ParseSummary(text)

	req.True(ok)
	req.Equal([]domain.Pair{domain.NewPair("UAAA1", "UBBB2")}, parsed)
}

func Test_Teaser_Mentions_Pair_Count(t *testing.T) {
	require.Contains(t, newCodec(false).Teaser(7), "7 paires")
}

func Test_Greeting_References_Channel_And_Members(t *testing.T) {
	req := require.New(t)
	greeting := newCodec(false).Greeting(domain.NewPair("UAAA1", "UBBB2"), "C0CHAN")

	req.Contains(greeting, "<@UAAA1>")
	req.Contains(greeting, "<@UBBB2>")
	req.Contains(greeting, "<#C0CHAN>")
}

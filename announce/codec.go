// Package announce renders round announcements and parses them back.
// The memory channel doubles as the pairing history store, so the parser
// must stay the exact inverse of the formatter.
package announce

import (
	"fmt"
	"strings"

	"randomcoffee/domain"
)

// pairSeparator joins the two mentions of a summary line. Formatter and
// parser share it so announcements written today stay readable tomorrow.
const pairSeparator = " et "

const (
	footerFormat = "Une personne se retrouve avec deux paires à cause d'un nombre impair de membres. " +
		"Les paires des %d derniers jours sont prises en compte pour ne pas appairer les mêmes membres " +
		"plusieurs fois durant cette période."
	teaserFormat = "Je viens de lancer une nouvelle tournée de %d paires! Vérifiez vos messages privés."
	greetingFormat = "Bonjour %s et %s\nVous avez été sélectionnés aléatoirement pour une <#%s>!\n" +
		"Prenez un peu de temps pour vous rencontrer prochainement. Ce sera l'occasion de sortir de " +
		"votre quotidien et d'échanger de manière informelle et confidentielle avec d'autres personnes en formation !"
)

// Codec formats announcements for one configuration of the bot.
// MagicalText marks the bot's own summaries when trawling the memory
// channel. In testing mode members are inert "@name" handles that Slack
// renders without notifying anyone.
type Codec struct {
	MagicalText  string
	LookbackDays int
	Testing      bool
}

// Mention renders a member for a Slack message. User IDs become active
// <@U…> mentions; testing-mode handles are kept as plain text.
func (c Codec) Mention(m domain.Member) string {
	if m.IsHandle() {
		return string(m)
	}
	return "<@" + string(m) + ">"
}

// Summary builds the round announcement: the magical header, one numbered
// line per pair, and the footer explaining the odd-roster double match and
// the lookback window. Empty pairings yield an empty string.
func (c Codec) Summary(pairs []domain.Pair) string {
	if len(pairs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(c.MagicalText)
	b.WriteString(":\n")
	for i, p := range pairs {
		fmt.Fprintf(&b, " %d. %s%s%s\n", i+1, c.Mention(p.A), pairSeparator, c.Mention(p.B))
	}
	fmt.Fprintf(&b, footerFormat, c.LookbackDays)
	return b.String()
}

// Teaser announces a private round in the public channel.
func (c Codec) Teaser(pairCount int) string {
	return fmt.Sprintf(teaserFormat, pairCount)
}

// Greeting is the group DM sent to one pair, referencing the channel the
// round was drawn from.
func (c Codec) Greeting(p domain.Pair, channelID string) string {
	return fmt.Sprintf(greetingFormat, c.Mention(p.A), c.Mention(p.B), channelID)
}

// IsSummary reports whether a message text looks like one of the bot's own
// summaries: it carries the magical text and at least one mention marker.
func (c Codec) IsSummary(text string) bool {
	marker := "<@U"
	if c.Testing {
		marker = "@"
	}
	return strings.Contains(text, c.MagicalText) && strings.Contains(text, marker)
}

// ParseSummary recovers the pairs of a previously posted summary. The
// first line (header) and last line (footer) are skipped; malformed lines
// are ignored. Returns false when the text is not a summary or contains no
// readable pair.
func (c Codec) ParseSummary(text string) ([]domain.Pair, bool) {
	if !c.IsSummary(text) {
		return nil, false
	}
	lines := strings.Split(text, "\n")
	if len(lines) < 3 {
		return nil, false
	}

	var pairs []domain.Pair
	for _, line := range lines[1 : len(lines)-1] {
		_, rest, ok := strings.Cut(line, ". ")
		if !ok {
			continue
		}
		left, right, ok := strings.Cut(rest, pairSeparator)
		if !ok {
			continue
		}
		a := parseMention(strings.TrimSpace(left))
		b := parseMention(strings.TrimSpace(right))
		if a == "" || b == "" {
			continue
		}
		pairs = append(pairs, domain.NewPair(a, b))
	}
	if len(pairs) == 0 {
		return nil, false
	}
	return pairs, true
}

func parseMention(s string) domain.Member {
	if strings.HasPrefix(s, "<@") && strings.HasSuffix(s, ">") {
		return domain.Member(s[2 : len(s)-1])
	}
	if strings.HasPrefix(s, "@") && len(s) > 1 {
		return domain.Member(s)
	}
	return ""
}

// Package domain contains core concepts of the random coffee rounds.
// This file defines participant entities and related invariants.
// No Slack, storage, or UI logic should be added here.
package domain

import "strings"

// Member is a participant handle exactly as it appears in announcements:
// a raw Slack user ID ("U0123ABCD") in production, or an inert "@name"
// handle in testing mode.
type Member string

// IsHandle reports whether the member is a testing-mode "@name" handle
// rather than a Slack user ID. Handles cannot receive group DMs.
func (m Member) IsHandle() bool {
	return strings.HasPrefix(string(m), "@")
}

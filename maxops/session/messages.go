// maxops/session/messages.go
package session

import (
	"sort"
	"time"

	"maxops/maxops/types"
)

// orderingWindow is how close two timestamps must be before the role
// tie-break applies. Server and client clocks can disagree by a few seconds;
// inside this window a prompt must never render after its own reply.
const orderingWindow = 5 * time.Second

// Message is one client-side entry of the conversation timeline. Messages
// are immutable once created and the timeline is append-only for the
// lifetime of the session.
type Message struct {
	ID        string
	Role      string
	Content   string
	Source    string
	AgentID   string
	AgentName string
	CreatedAt time.Time
}

// MergeTimeline reconciles any number of message batches (optimistic local
// appends, server-confirmed history) into one canonical sequence: entries
// deduplicated by id, ordered by creation time with the role tie-break
// applied inside the ordering window. Input slices are not modified.
func MergeTimeline(batches ...[]Message) []Message {
	seen := make(map[string]struct{})
	var merged []Message
	for _, batch := range batches {
		for _, m := range batch {
			if _, dup := seen[m.ID]; dup {
				continue
			}
			seen[m.ID] = struct{}{}
			merged = append(merged, m)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return messageBefore(merged[i], merged[j])
	})
	return merged
}

// messageBefore orders a before b. Within the ordering window a user message
// sorts before an assistant one regardless of exact timestamps, then equal
// slots fall back to id so the order is deterministic.
func messageBefore(a, b Message) bool {
	delta := a.CreatedAt.Sub(b.CreatedAt)
	if delta < 0 {
		delta = -delta
	}
	if delta <= orderingWindow {
		if a.Role != b.Role {
			return a.Role == types.RoleUser
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

// Last returns the final message of an already-merged timeline; consumers
// use it to drive auto-scroll and voice auto-play. ok is false for an empty
// timeline, which renders as a distinct empty state rather than a blank list.
func Last(timeline []Message) (Message, bool) {
	if len(timeline) == 0 {
		return Message{}, false
	}
	return timeline[len(timeline)-1], true
}

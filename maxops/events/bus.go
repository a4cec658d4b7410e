// maxops/events/bus.go
package events

import (
	"sync"
)

// Event kinds published on the feed.
const (
	KindPreferences = "preferences"
	KindLayout      = "layout"
)

// Event is one change notification pushed to a user's connected surfaces.
type Event struct {
	Kind    string      `json:"kind"`
	Payload interface{} `json:"payload"`
}

// Bus fans preference and layout changes out to every surface a user has
// open. Slow subscribers drop events instead of blocking the publisher;
// surfaces reconcile from the store on reconnect anyway.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]map[chan Event]struct{}
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]map[chan Event]struct{})}
}

// Subscribe registers a new listener for the user. The returned cancel
// function must be called when the surface disconnects.
func (b *Bus) Subscribe(userID int) (<-chan Event, func()) {
	ch := make(chan Event, 16)
	b.mu.Lock()
	if b.subs[userID] == nil {
		b.subs[userID] = make(map[chan Event]struct{})
	}
	b.subs[userID][ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if set, ok := b.subs[userID]; ok {
			if _, ok := set[ch]; ok {
				delete(set, ch)
				close(ch)
			}
			if len(set) == 0 {
				delete(b.subs, userID)
			}
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers the event to all of the user's listeners without blocking.
func (b *Bus) Publish(userID int, ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs[userID] {
		select {
		case ch <- ev:
		default:
		}
	}
}

// maxops/session/store.go
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Store is the keyed persistence surface for panel state: layout sizes,
// collapse flags, sound settings. Values are raw JSON so each consumer owns
// its own schema. Subscribe delivers changes made by other writers of the
// same store; implementations may deliver with delay but must never drop
// the most recent value.
type Store interface {
	Get(key string) (json.RawMessage, bool)
	Set(key string, value json.RawMessage) error
	Subscribe(key string, fn func(json.RawMessage)) (cancel func())
}

// MemStore is an in-process Store. Set notifies subscribers synchronously.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
	subs map[string]map[int]func(json.RawMessage)
	next int
}

func NewMemStore() *MemStore {
	return &MemStore{
		data: make(map[string]json.RawMessage),
		subs: make(map[string]map[int]func(json.RawMessage)),
	}
}

func (s *MemStore) Get(key string) (json.RawMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *MemStore) Set(key string, value json.RawMessage) error {
	s.mu.Lock()
	s.data[key] = value
	fns := make([]func(json.RawMessage), 0, len(s.subs[key]))
	for _, fn := range s.subs[key] {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(value)
	}
	return nil
}

func (s *MemStore) Subscribe(key string, fn func(json.RawMessage)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs[key] == nil {
		s.subs[key] = make(map[int]func(json.RawMessage))
	}
	id := s.next
	s.next++
	s.subs[key][id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[key], id)
	}
}

// FileStore persists each key as a JSON file under dir. Other processes
// writing the same directory are picked up by a polling watcher; the poll
// interval trades freshness for filesystem load.
type FileStore struct {
	dir  string
	poll time.Duration

	mu   sync.Mutex
	subs map[string]map[int]*fileSub
	next int
}

type fileSub struct {
	fn   func(json.RawMessage)
	stop chan struct{}
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{
		dir:  dir,
		poll: time.Second,
		subs: make(map[string]map[int]*fileSub),
	}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get returns false for missing files and for files that do not hold valid
// JSON. A corrupt file reads as absent so callers fall back to defaults
// instead of erroring out.
func (s *FileStore) Get(key string) (json.RawMessage, bool) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	if !json.Valid(raw) {
		return nil, false
	}
	return json.RawMessage(raw), true
}

func (s *FileStore) Set(key string, value json.RawMessage) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

func (s *FileStore) Subscribe(key string, fn func(json.RawMessage)) func() {
	sub := &fileSub{fn: fn, stop: make(chan struct{})}
	s.mu.Lock()
	if s.subs[key] == nil {
		s.subs[key] = make(map[int]*fileSub)
	}
	id := s.next
	s.next++
	s.subs[key][id] = sub
	s.mu.Unlock()

	// Baseline before Subscribe returns; a write landing after this point is
	// a change the watcher must deliver, never part of the pre-existing state.
	var last string
	if raw, ok := s.Get(key); ok {
		last = string(raw)
	}
	go s.watch(key, sub, last)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sb, ok := s.subs[key][id]; ok {
			close(sb.stop)
			delete(s.subs[key], id)
		}
	}
}

func (s *FileStore) watch(key string, sub *fileSub, last string) {
	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()
	for {
		select {
		case <-sub.stop:
			return
		case <-ticker.C:
			raw, ok := s.Get(key)
			if !ok {
				continue
			}
			if string(raw) != last {
				last = string(raw)
				sub.fn(raw)
			}
		}
	}
}

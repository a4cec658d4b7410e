// maxops/session/layout.go
package session

import (
	"encoding/json"
	"sync"
)

const layoutKey = "console-layout"

// PanelSpec bounds one resizable panel. Sizes are percentages of the
// enclosing split.
type PanelSpec struct {
	Default float64
	Min     float64
	Max     float64
}

type layoutState struct {
	Sizes     map[string]float64 `json:"sizes"`
	Collapsed map[string]bool    `json:"collapsed"`
	Saved     map[string]float64 `json:"saved"`
}

// Coordinator keeps panel sizes and collapse state consistent across the
// console and persists them. A resize drag reports every affected panel in
// one event and the coordinator writes them in a single store update, so a
// crash mid-drag can never persist half a layout.
type Coordinator struct {
	store Store
	specs map[string]PanelSpec

	mu    sync.Mutex
	state layoutState
}

func NewCoordinator(store Store, specs map[string]PanelSpec) *Coordinator {
	c := &Coordinator{
		store: store,
		specs: specs,
		state: layoutState{
			Sizes:     make(map[string]float64),
			Collapsed: make(map[string]bool),
			Saved:     make(map[string]float64),
		},
	}
	for id, spec := range specs {
		c.state.Sizes[id] = spec.Default
	}
	if raw, ok := store.Get(layoutKey); ok {
		c.restore(raw)
	}
	return c
}

// Size returns the current size of a panel; collapsed panels report zero.
func (c *Coordinator) Size(id string) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Collapsed[id] {
		return 0
	}
	return c.state.Sizes[id]
}

// IsCollapsed reports the collapse flag for a panel.
func (c *Coordinator) IsCollapsed(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Collapsed[id]
}

// ApplyLayoutEvent takes the sizes reported by one resize event, clamps each
// to its panel's bounds and persists them all atomically. Panels without a
// registered spec are ignored.
func (c *Coordinator) ApplyLayoutEvent(sizes map[string]float64) error {
	c.mu.Lock()
	for id, size := range sizes {
		spec, ok := c.specs[id]
		if !ok {
			continue
		}
		c.state.Sizes[id] = clamp(size, spec.Min, spec.Max)
	}
	c.mu.Unlock()
	return c.persist()
}

// Collapse hides a panel, remembering its size for the next Expand.
func (c *Coordinator) Collapse(id string) error {
	c.mu.Lock()
	if !c.state.Collapsed[id] {
		c.state.Saved[id] = c.state.Sizes[id]
		c.state.Collapsed[id] = true
	}
	c.mu.Unlock()
	return c.persist()
}

// Expand restores a collapsed panel to its remembered size, or its default
// when nothing usable was remembered. A persisted saved size below the
// panel's minimum (stale data, or bounds that tightened between runs) falls
// back to the default instead of restoring an unusable sliver.
func (c *Coordinator) Expand(id string) error {
	c.mu.Lock()
	if c.state.Collapsed[id] {
		c.state.Collapsed[id] = false
		spec, hasSpec := c.specs[id]
		if saved, ok := c.state.Saved[id]; ok {
			delete(c.state.Saved, id)
			if !hasSpec || saved >= spec.Min {
				c.state.Sizes[id] = saved
			} else {
				c.state.Sizes[id] = spec.Default
			}
		} else if hasSpec {
			c.state.Sizes[id] = spec.Default
		}
	}
	c.mu.Unlock()
	return c.persist()
}

// Watch follows layout changes made by other writers of the same store.
// Returns a cancel func.
func (c *Coordinator) Watch() func() {
	return c.store.Subscribe(layoutKey, func(raw json.RawMessage) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.restoreLocked(raw)
	})
}

func (c *Coordinator) restore(raw json.RawMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.restoreLocked(raw)
}

// restoreLocked merges persisted state over defaults, re-clamping sizes in
// case the bounds changed between runs. Malformed payloads are ignored.
func (c *Coordinator) restoreLocked(raw json.RawMessage) {
	var st layoutState
	if err := json.Unmarshal(raw, &st); err != nil {
		return
	}
	for id, size := range st.Sizes {
		if spec, ok := c.specs[id]; ok {
			c.state.Sizes[id] = clamp(size, spec.Min, spec.Max)
		}
	}
	for id, collapsed := range st.Collapsed {
		c.state.Collapsed[id] = collapsed
	}
	for id, saved := range st.Saved {
		c.state.Saved[id] = saved
	}
}

func (c *Coordinator) persist() error {
	c.mu.Lock()
	raw, err := json.Marshal(c.state)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.store.Set(layoutKey, raw)
}

func clamp(v, min, max float64) float64 {
	if min != 0 && v < min {
		return min
	}
	if max != 0 && v > max {
		return max
	}
	return v
}

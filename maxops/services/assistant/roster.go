// maxops/services/assistant/roster.go
package assistant

import (
	"os"

	"maxops/maxops/utils/logging"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Agent is one named responder the assistant can hand a conversation to.
type Agent struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	Role string `yaml:"role" json:"role"`
}

// Roster describes the agent lineup and voice policy. VoiceAutoplayExcluded
// lists agent ids whose replies are never auto-played; this is configuration,
// not a hard-coded identity check.
type Roster struct {
	DefaultAgent          string   `yaml:"default_agent"`
	Agents                []Agent  `yaml:"agents"`
	VoiceAutoplayExcluded []string `yaml:"voice_autoplay_excluded"`
}

// LoadRoster reads the YAML roster file. A missing or unparsable file yields
// the built-in default roster rather than an error.
func LoadRoster(path string) *Roster {
	data, err := os.ReadFile(path)
	if err != nil {
		logging.AppLogger.Warn("roster file unavailable, using defaults", zap.String("path", path), zap.Error(err))
		return defaultRoster()
	}
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		logging.ErrorLogger.Error("roster parse error, using defaults", zap.Error(err))
		return defaultRoster()
	}
	if r.DefaultAgent == "" && len(r.Agents) > 0 {
		r.DefaultAgent = r.Agents[0].ID
	}
	return &r
}

func defaultRoster() *Roster {
	return &Roster{
		DefaultAgent: "max",
		Agents: []Agent{
			{ID: "max", Name: "Max", Role: "Manufacturing operations assistant"},
			{ID: "scheduler", Name: "Scheduling Agent", Role: "Production scheduling specialist"},
			{ID: "optimizer", Name: "Optimization Studio Agent", Role: "Scheduling algorithm advisor"},
		},
		VoiceAutoplayExcluded: []string{"scheduler"},
	}
}

// Find returns the agent with the given id, or the default agent.
func (r *Roster) Find(id string) Agent {
	for _, a := range r.Agents {
		if a.ID == id {
			return a
		}
	}
	for _, a := range r.Agents {
		if a.ID == r.DefaultAgent {
			return a
		}
	}
	if len(r.Agents) > 0 {
		return r.Agents[0]
	}
	return Agent{ID: "max", Name: "Max"}
}

// VoiceExcluded reports whether the agent's replies are exempt from
// automatic voice playback.
func (r *Roster) VoiceExcluded(agentID string) bool {
	for _, id := range r.VoiceAutoplayExcluded {
		if id == agentID {
			return true
		}
	}
	return false
}

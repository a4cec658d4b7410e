// maxops/types/action.go
package types

// ActionType discriminates the directive variants a chat response can carry.
// A response holds at most one action.
type ActionType string

const (
	ActionNavigate         ActionType = "navigate"
	ActionCreateChart      ActionType = "create_chart"
	ActionShowTable        ActionType = "show_table"
	ActionShowJobsTable    ActionType = "show_jobs_table"
	ActionSwitchAgent      ActionType = "switch_agent"
	ActionRefreshScheduler ActionType = "refresh_scheduler"
	ActionApplyAlgorithm   ActionType = "apply_algorithm"
)

// Known reports whether t is one of the recognized directive types.
func (t ActionType) Known() bool {
	switch t {
	case ActionNavigate, ActionCreateChart, ActionShowTable, ActionShowJobsTable,
		ActionSwitchAgent, ActionRefreshScheduler, ActionApplyAlgorithm:
		return true
	}
	return false
}

// Action is the tagged directive attached to an assistant reply. Only the
// fields relevant to the Type are populated.
type Action struct {
	Type        ActionType   `json:"type"`
	Target      string       `json:"target,omitempty"`
	ChartConfig *ChartConfig `json:"chartConfig,omitempty"`
	TableConfig *TableConfig `json:"tableConfig,omitempty"`
	AgentID     string       `json:"agentId,omitempty"`
	AgentName   string       `json:"agentName,omitempty"`
	AlgorithmID string       `json:"algorithmId,omitempty"`
}

type ChartConfig struct {
	Title      string   `json:"title"`
	ChartType  string   `json:"chartType"`
	DataSource string   `json:"dataSource"`
	Metrics    []string `json:"metrics,omitempty"`
	GroupBy    string   `json:"groupBy,omitempty"`
}

type TableConfig struct {
	Title      string   `json:"title"`
	DataSource string   `json:"dataSource"`
	Columns    []string `json:"columns,omitempty"`
	Filter     string   `json:"filter,omitempty"`
}

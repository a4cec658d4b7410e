// maxops/services/assistant/directives.go
package assistant

import (
	"encoding/json"

	"maxops/maxops/types"
	"maxops/maxops/utils/jsonutils"
)

// directiveEnvelope is the JSON shape the model is prompted to emit when it
// wants the console to do something beyond showing text.
type directiveEnvelope struct {
	Content string        `json:"content"`
	Action  *types.Action `json:"action,omitempty"`
}

// ParseReply splits raw model output into display text and at most one
// recognized directive. Plain prose comes back as content with a nil action;
// an unknown action type is dropped so it can never reach the dispatch
// switch.
func ParseReply(raw string) (content string, action *types.Action) {
	extracted := jsonutils.ExtractJSON(raw)
	if extracted == "" {
		return raw, nil
	}
	var env directiveEnvelope
	if err := json.Unmarshal([]byte(extracted), &env); err != nil {
		// not a directive payload, treat the whole reply as prose
		return raw, nil
	}
	if env.Content == "" && env.Action == nil {
		return raw, nil
	}
	if env.Action != nil && !env.Action.Type.Known() {
		env.Action = nil
	}
	return env.Content, env.Action
}

// ConfirmationText renders the human-readable audit message for a directive.
// Directive-only replies still append an assistant message, so every action
// the console takes is visible in the transcript.
func ConfirmationText(a *types.Action) string {
	if a == nil {
		return ""
	}
	switch a.Type {
	case types.ActionNavigate:
		return "Taking you to " + prettyRoute(a.Target) + "..."
	case types.ActionCreateChart:
		if a.ChartConfig != nil && a.ChartConfig.Title != "" {
			return "Created chart \"" + a.ChartConfig.Title + "\" on your canvas."
		}
		return "Created a chart on your canvas."
	case types.ActionShowTable:
		if a.TableConfig != nil && a.TableConfig.Title != "" {
			return "Showing table \"" + a.TableConfig.Title + "\"."
		}
		return "Showing the requested table."
	case types.ActionShowJobsTable:
		return "Showing the jobs table."
	case types.ActionSwitchAgent:
		if a.AgentName != "" {
			return "Switching you to " + a.AgentName + "."
		}
		return "Switching agents."
	case types.ActionRefreshScheduler:
		return "Refreshing the scheduler view."
	case types.ActionApplyAlgorithm:
		if a.AlgorithmID != "" {
			return "Applying algorithm " + a.AlgorithmID + " to the schedule."
		}
		return "Applying the selected algorithm to the schedule."
	}
	return ""
}

func prettyRoute(target string) string {
	out := make([]rune, 0, len(target))
	for _, r := range target {
		switch r {
		case '/', '-', '_':
			if len(out) > 0 && out[len(out)-1] != ' ' {
				out = append(out, ' ')
			}
		default:
			out = append(out, r)
		}
	}
	s := string(out)
	if s == "" {
		return "the requested page"
	}
	return s
}

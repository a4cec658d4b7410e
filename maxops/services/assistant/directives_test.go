package assistant

import (
	"testing"

	"maxops/maxops/types"
)

func TestParseReplyPlainProse(t *testing.T) {
	content, action := ParseReply("There are 48 jobs scheduled today.")
	if content != "There are 48 jobs scheduled today." {
		t.Errorf("prose content changed: %q", content)
	}
	if action != nil {
		t.Errorf("prose must not produce an action")
	}
}

func TestParseReplyFencedDirective(t *testing.T) {
	raw := "```json\n{\"content\": \"Taking you to Scheduler...\", \"action\": {\"type\": \"navigate\", \"target\": \"/scheduler\"}}\n```"
	content, action := ParseReply(raw)
	if content != "Taking you to Scheduler..." {
		t.Errorf("wrong content: %q", content)
	}
	if action == nil || action.Type != types.ActionNavigate {
		t.Fatalf("expected navigate action, got %+v", action)
	}
	if action.Target != "/scheduler" {
		t.Errorf("wrong target: %q", action.Target)
	}
}

func TestParseReplyBareJSONDirective(t *testing.T) {
	raw := `{"content": "Created chart \"OEE by Line\" on your canvas.", "action": {"type": "create_chart", "chartConfig": {"title": "OEE by Line", "chartType": "bar", "dataSource": "oee"}}}`
	content, action := ParseReply(raw)
	if action == nil || action.Type != types.ActionCreateChart {
		t.Fatalf("expected create_chart action, got %+v", action)
	}
	if action.ChartConfig == nil || action.ChartConfig.Title != "OEE by Line" {
		t.Errorf("chart config lost: %+v", action.ChartConfig)
	}
	if content == "" {
		t.Errorf("content missing")
	}
}

func TestParseReplyDropsUnknownActionType(t *testing.T) {
	raw := `{"content": "done", "action": {"type": "reboot_plant"}}`
	content, action := ParseReply(raw)
	if action != nil {
		t.Errorf("unknown action type must be dropped, got %+v", action)
	}
	if content != "done" {
		t.Errorf("content should survive: %q", content)
	}
}

func TestParseReplyMalformedJSONFallsBackToProse(t *testing.T) {
	raw := "Here is a sample: {\"type\": \"navigate\", \"target\":"
	content, action := ParseReply(raw)
	if content != raw {
		t.Errorf("malformed payload should pass through as prose")
	}
	if action != nil {
		t.Errorf("malformed payload must not produce an action")
	}
}

func TestConfirmationTextCoversEveryDirective(t *testing.T) {
	cases := []struct {
		action *types.Action
		want   string
	}{
		{&types.Action{Type: types.ActionNavigate, Target: "/optimization-studio"}, "Taking you to optimization studio..."},
		{&types.Action{Type: types.ActionCreateChart, ChartConfig: &types.ChartConfig{Title: "Downtime"}}, "Created chart \"Downtime\" on your canvas."},
		{&types.Action{Type: types.ActionCreateChart}, "Created a chart on your canvas."},
		{&types.Action{Type: types.ActionShowTable, TableConfig: &types.TableConfig{Title: "Late Jobs"}}, "Showing table \"Late Jobs\"."},
		{&types.Action{Type: types.ActionShowJobsTable}, "Showing the jobs table."},
		{&types.Action{Type: types.ActionSwitchAgent, AgentName: "Scheduling Agent"}, "Switching you to Scheduling Agent."},
		{&types.Action{Type: types.ActionRefreshScheduler}, "Refreshing the scheduler view."},
		{&types.Action{Type: types.ActionApplyAlgorithm, AlgorithmID: "greedy-v2"}, "Applying algorithm greedy-v2 to the schedule."},
	}
	for _, c := range cases {
		got := ConfirmationText(c.action)
		if got != c.want {
			t.Errorf("action %s: got %q, want %q", c.action.Type, got, c.want)
		}
	}
	if ConfirmationText(nil) != "" {
		t.Errorf("nil action should render empty")
	}
}

// maxops/services/assistant/prompt.go
package assistant

import (
	"fmt"
	"sort"
	"strings"

	"maxops/maxops/sources/psql/models"
	"maxops/maxops/types"
)

const promptPlaybookLimit = 3

// buildSystemPrompt assembles the grounding prompt: agent persona, directive
// schema, current console context and the matched playbooks.
func buildSystemPrompt(agent Agent, reqCtx types.ChatContext, playbooks []models.Playbook) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are %s, a %s for a manufacturing operations console. ", agent.Name, agent.Role)
	b.WriteString("You provide actionable insights and help optimize manufacturing processes.\n\n")

	b.WriteString("When the user asks you to act on the console, reply with a JSON object: ")
	b.WriteString(`{"content": "<short confirmation>", "action": {"type": "<one of: navigate, create_chart, show_table, show_jobs_table, switch_agent, refresh_scheduler, apply_algorithm>", ...}}. `)
	b.WriteString("Emit at most one action per reply. For plain questions answer in prose with no JSON.\n")

	if reqCtx.Route != "" {
		fmt.Fprintf(&b, "\nThe user is currently on the %s page.\n", reqCtx.Route)
	}
	// stable key order keeps prompts identical across identical requests
	keys := make([]string, 0, len(reqCtx.Domain))
	for k := range reqCtx.Domain {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "Context %s: %s\n", k, reqCtx.Domain[k])
	}

	if len(playbooks) > 0 {
		b.WriteString("\nRelevant operational playbooks:\n")
		for i, pb := range playbooks {
			if i >= promptPlaybookLimit {
				break
			}
			fmt.Fprintf(&b, "--- %s ---\n%s\n", pb.Title, pb.Content)
		}
		b.WriteString("Ground your answer in these playbooks where they apply.\n")
	}

	return b.String()
}

package session

import (
	"testing"
	"time"

	"maxops/maxops/types"

	"github.com/stretchr/testify/require"
)

func ts(sec int) time.Time {
	return time.Date(2025, 6, 1, 12, 0, sec, 0, time.UTC)
}

func TestMergeTimelineUserFirstInsideWindow(t *testing.T) {
	// Assistant reply stamped 3s before the prompt that produced it. The
	// prompt must still render first.
	assistant := Message{ID: "b", Role: types.RoleAssistant, Content: "reply", CreatedAt: ts(0)}
	user := Message{ID: "a", Role: types.RoleUser, Content: "prompt", CreatedAt: ts(3)}

	merged := MergeTimeline([]Message{assistant, user})
	require.Len(t, merged, 2)
	require.Equal(t, "a", merged[0].ID)
	require.Equal(t, "b", merged[1].ID)
}

func TestMergeTimelineStrictOrderOutsideWindow(t *testing.T) {
	assistant := Message{ID: "b", Role: types.RoleAssistant, CreatedAt: ts(0)}
	user := Message{ID: "a", Role: types.RoleUser, CreatedAt: ts(10)}

	merged := MergeTimeline([]Message{user, assistant})
	require.Equal(t, "b", merged[0].ID)
	require.Equal(t, "a", merged[1].ID)
}

func TestMergeTimelineDeduplicatesByID(t *testing.T) {
	local := Message{ID: "a", Role: types.RoleUser, Content: "optimistic", CreatedAt: ts(0)}
	confirmed := Message{ID: "a", Role: types.RoleUser, Content: "confirmed", CreatedAt: ts(1)}

	merged := MergeTimeline([]Message{local}, []Message{confirmed})
	require.Len(t, merged, 1)
	require.Equal(t, "optimistic", merged[0].Content)
}

func TestMergeTimelineTieBreaksByID(t *testing.T) {
	m1 := Message{ID: "z", Role: types.RoleUser, CreatedAt: ts(0)}
	m2 := Message{ID: "a", Role: types.RoleUser, CreatedAt: ts(0)}

	merged := MergeTimeline([]Message{m1, m2})
	require.Equal(t, "a", merged[0].ID)
	require.Equal(t, "z", merged[1].ID)
}

func TestMergeTimelineConversationShape(t *testing.T) {
	// Two full turns, server clock slightly behind on replies.
	batch := []Message{
		{ID: "r2", Role: types.RoleAssistant, CreatedAt: ts(29)},
		{ID: "u1", Role: types.RoleUser, CreatedAt: ts(1)},
		{ID: "r1", Role: types.RoleAssistant, CreatedAt: ts(0)},
		{ID: "u2", Role: types.RoleUser, CreatedAt: ts(30)},
	}
	merged := MergeTimeline(batch)
	var ids []string
	for _, m := range merged {
		ids = append(ids, m.ID)
	}
	require.Equal(t, []string{"u1", "r1", "u2", "r2"}, ids)
}

func TestLast(t *testing.T) {
	_, ok := Last(nil)
	require.False(t, ok)

	merged := MergeTimeline([]Message{
		{ID: "a", Role: types.RoleUser, CreatedAt: ts(0)},
		{ID: "b", Role: types.RoleAssistant, CreatedAt: ts(1)},
	})
	last, ok := Last(merged)
	require.True(t, ok)
	require.Equal(t, "b", last.ID)
}

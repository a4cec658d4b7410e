package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"maxops/maxops/types"

	"github.com/stretchr/testify/require"
)

// fakeGateway scripts Chat outcomes for the controller.
type fakeGateway struct {
	mu      sync.Mutex
	resp    types.ChatResponse
	err     error
	block   chan struct{}
	started chan struct{}
	calls   int
}

func (f *fakeGateway) Chat(ctx context.Context, req types.ChatRequest) (types.ChatResponse, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return types.ChatResponse{}, ctx.Err()
		}
	}
	return f.resp, f.err
}

type recordingDispatcher struct {
	navigated string
	chart     *types.ChartConfig
	jobsTable bool
	agentID   string
	refreshed bool
	algorithm string
}

func (d *recordingDispatcher) Navigate(route string)                 { d.navigated = route }
func (d *recordingDispatcher) CreateChart(cfg *types.ChartConfig)    { d.chart = cfg }
func (d *recordingDispatcher) ShowTable(cfg *types.TableConfig)      {}
func (d *recordingDispatcher) ShowJobsTable()                        { d.jobsTable = true }
func (d *recordingDispatcher) SwitchAgent(agentID, agentName string) { d.agentID = agentID }
func (d *recordingDispatcher) RefreshScheduler()                     { d.refreshed = true }
func (d *recordingDispatcher) ApplyAlgorithm(algorithmID string)     { d.algorithm = algorithmID }

func lastContent(t *testing.T, c *Controller) string {
	t.Helper()
	last, ok := Last(c.Timeline())
	require.True(t, ok)
	return last.Content
}

func TestSubmitAppendsPromptAndReply(t *testing.T) {
	gw := &fakeGateway{resp: types.ChatResponse{Content: "48 jobs scheduled", AgentID: "scheduler", AgentName: "Scheduler"}}
	c := NewController(gw, nil, types.SourcePanel)

	err := c.Submit(context.Background(), "how many jobs today?", types.ChatContext{}, nil)
	require.NoError(t, err)

	tl := c.Timeline()
	require.Len(t, tl, 2)
	require.Equal(t, types.RoleUser, tl[0].Role)
	require.Equal(t, "how many jobs today?", tl[0].Content)
	require.Equal(t, types.RoleAssistant, tl[1].Role)
	require.Equal(t, "48 jobs scheduled", tl[1].Content)
	require.Equal(t, "scheduler", tl[1].AgentID)
	require.False(t, c.Thinking())
}

func TestSubmitRejectsEmptyPrompt(t *testing.T) {
	gw := &fakeGateway{}
	c := NewController(gw, nil, types.SourcePanel)

	err := c.Submit(context.Background(), "", types.ChatContext{}, nil)
	require.ErrorIs(t, err, ErrEmptySubmit)
	require.Empty(t, c.Timeline())
	require.Zero(t, gw.calls)
}

func TestSubmitAllowsAttachmentOnlyPrompt(t *testing.T) {
	gw := &fakeGateway{resp: types.ChatResponse{Content: "got the file"}}
	c := NewController(gw, nil, types.SourcePanel)

	att := []types.ChatAttachment{{ID: "1", Name: "report.csv", Type: "text/csv", Content: "a,b"}}
	require.NoError(t, c.Submit(context.Background(), "", types.ChatContext{}, att))
	require.Equal(t, "got the file", lastContent(t, c))
}

func TestSubmitSingleFlight(t *testing.T) {
	gw := &fakeGateway{block: make(chan struct{}), started: make(chan struct{}, 1)}
	c := NewController(gw, nil, types.SourcePanel)

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background(), "first", types.ChatContext{}, nil) }()
	<-gw.started
	require.True(t, c.Thinking())

	err := c.Submit(context.Background(), "second", types.ChatContext{}, nil)
	require.ErrorIs(t, err, ErrBusy)

	close(gw.block)
	require.NoError(t, <-done)
	require.False(t, c.Thinking())

	// Next submit goes through once the first resolved.
	require.NoError(t, c.Submit(context.Background(), "third", types.ChatContext{}, nil))
}

func TestCancelResolvesWithCancellationNotice(t *testing.T) {
	gw := &fakeGateway{block: make(chan struct{}), started: make(chan struct{}, 1)}
	c := NewController(gw, nil, types.SourcePanel)

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background(), "optimize line 2", types.ChatContext{}, nil) }()
	<-gw.started
	c.Cancel()

	require.NoError(t, <-done)
	require.Equal(t, "Request cancelled.", lastContent(t, c))
	require.False(t, c.Thinking())
}

func TestGatewayErrorResolvesWithApology(t *testing.T) {
	gw := &fakeGateway{err: errors.New("upstream exploded")}
	c := NewController(gw, nil, types.SourcePanel)

	require.NoError(t, c.Submit(context.Background(), "hello", types.ChatContext{}, nil))
	require.Equal(t, "I apologize, but I'm having trouble responding right now. Please try again.", lastContent(t, c))
}

func TestEmptyReplyResolvesWithNotice(t *testing.T) {
	gw := &fakeGateway{resp: types.ChatResponse{}}
	c := NewController(gw, nil, types.SourcePanel)

	require.NoError(t, c.Submit(context.Background(), "hello", types.ChatContext{}, nil))
	require.Equal(t, "Request processed, but no response was generated.", lastContent(t, c))
}

func TestDirectiveDispatch(t *testing.T) {
	d := &recordingDispatcher{}
	gw := &fakeGateway{resp: types.ChatResponse{
		Content: "Taking you to Scheduler...",
		Action:  &types.Action{Type: types.ActionNavigate, Target: "/scheduler"},
	}}
	c := NewController(gw, d, types.SourcePanel)

	require.NoError(t, c.Submit(context.Background(), "open the scheduler", types.ChatContext{}, nil))
	require.Equal(t, "/scheduler", d.navigated)
}

func TestDirectiveNotDispatchedOnError(t *testing.T) {
	d := &recordingDispatcher{}
	gw := &fakeGateway{
		resp: types.ChatResponse{Action: &types.Action{Type: types.ActionRefreshScheduler}},
		err:  errors.New("boom"),
	}
	c := NewController(gw, d, types.SourcePanel)

	require.NoError(t, c.Submit(context.Background(), "refresh", types.ChatContext{}, nil))
	require.False(t, d.refreshed)
}

func TestSubmitStampsSourceAndSession(t *testing.T) {
	var got types.ChatRequest
	gw := &fakeGateway{}
	c := NewController(chatFunc(func(ctx context.Context, req types.ChatRequest) (types.ChatResponse, error) {
		got = req
		return gw.resp, nil
	}), nil, types.SourceFloatingBubble)

	require.NoError(t, c.Submit(context.Background(), "hi", types.ChatContext{Route: "/jobs"}, nil))
	require.Equal(t, types.SourceFloatingBubble, got.Context.Source)
	require.Equal(t, c.SessionID(), got.Context.SessionID)
	require.Equal(t, "/jobs", got.Context.Route)
}

func TestLoadHistoryMergesWithOptimisticEntries(t *testing.T) {
	gw := &fakeGateway{resp: types.ChatResponse{Content: "ok"}}
	c := NewController(gw, nil, types.SourcePanel)
	c.now = func() time.Time { return ts(30) }

	require.NoError(t, c.Submit(context.Background(), "latest", types.ChatContext{}, nil))
	c.LoadHistory([]Message{
		{ID: "h1", Role: types.RoleUser, Content: "earlier", CreatedAt: ts(0)},
		{ID: "h2", Role: types.RoleAssistant, Content: "earlier reply", CreatedAt: ts(1)},
	})

	tl := c.Timeline()
	require.Len(t, tl, 4)
	require.Equal(t, "h1", tl[0].ID)
	require.Equal(t, "h2", tl[1].ID)
	require.Equal(t, "latest", tl[2].Content)
}

type chatFunc func(ctx context.Context, req types.ChatRequest) (types.ChatResponse, error)

func (f chatFunc) Chat(ctx context.Context, req types.ChatRequest) (types.ChatResponse, error) {
	return f(ctx, req)
}

// maxops/session/controller.go
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"maxops/maxops/types"

	"github.com/google/uuid"
)

// User-facing notices for terminal request states. Cancellation is a
// deliberate act and must read as one, never as a failure.
const (
	cancelledNotice  = "Request cancelled."
	errorNotice      = "I apologize, but I'm having trouble responding right now. Please try again."
	emptyReplyNotice = "Request processed, but no response was generated."
)

// ErrBusy is returned when a submit arrives while another request is still
// in flight.
var ErrBusy = errors.New("a request is already in flight")

// ErrEmptySubmit is returned for a blank prompt with no attachments.
var ErrEmptySubmit = errors.New("nothing to send")

// ChatSender is the slice of the gateway client the controller needs.
type ChatSender interface {
	Chat(ctx context.Context, req types.ChatRequest) (types.ChatResponse, error)
}

// Dispatcher receives the directive attached to a reply. Implementations
// route it into the surrounding application: navigation, chart creation,
// agent switching.
type Dispatcher interface {
	Navigate(route string)
	CreateChart(cfg *types.ChartConfig)
	ShowTable(cfg *types.TableConfig)
	ShowJobsTable()
	SwitchAgent(agentID, agentName string)
	RefreshScheduler()
	ApplyAlgorithm(algorithmID string)
}

// Controller owns the request lifecycle of one conversation surface. At most
// one request is in flight at a time; a second submit is rejected rather
// than queued. Cancel aborts the in-flight request and resolves it with a
// cancellation notice instead of an error.
type Controller struct {
	client     ChatSender
	dispatcher Dispatcher
	source     string
	sessionID  string

	now   func() time.Time
	newID func() string

	mu       sync.Mutex
	timeline []Message
	inFlight bool
	cancel   context.CancelFunc
}

func NewController(client ChatSender, dispatcher Dispatcher, source string) *Controller {
	return &Controller{
		client:     client,
		dispatcher: dispatcher,
		source:     source,
		sessionID:  uuid.NewString(),
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// SessionID identifies this conversation for history retrieval.
func (c *Controller) SessionID() string { return c.sessionID }

// Thinking reports whether a request is in flight.
func (c *Controller) Thinking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Timeline returns the merged conversation so far.
func (c *Controller) Timeline() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.timeline))
	copy(out, c.timeline)
	return out
}

// LoadHistory merges server-confirmed history into the timeline.
func (c *Controller) LoadHistory(history []Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeline = MergeTimeline(c.timeline, history)
}

// Submit sends a prompt and blocks until the request resolves. The user
// message is appended to the timeline before the network call so the prompt
// renders immediately. Every outcome, including cancellation and failure,
// lands in the timeline as an assistant entry; Submit itself only errors on
// rejected input.
func (c *Controller) Submit(ctx context.Context, text string, reqCtx types.ChatContext, attachments []types.ChatAttachment) error {
	if text == "" && len(attachments) == 0 {
		return ErrEmptySubmit
	}

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrBusy
	}
	c.inFlight = true
	reqContext, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.timeline = MergeTimeline(c.timeline, []Message{{
		ID:        c.newID(),
		Role:      types.RoleUser,
		Content:   text,
		Source:    c.source,
		CreatedAt: c.now(),
	}})
	c.mu.Unlock()

	reqCtx.Source = c.source
	reqCtx.SessionID = c.sessionID
	resp, err := c.client.Chat(reqContext, types.ChatRequest{
		Message:     text,
		Context:     reqCtx,
		Attachments: attachments,
	})
	cancel()

	c.mu.Lock()
	c.inFlight = false
	c.cancel = nil
	c.timeline = MergeTimeline(c.timeline, []Message{c.resolve(resp, err)})
	c.mu.Unlock()

	if err == nil && resp.Action != nil {
		c.dispatch(*resp.Action)
	}
	return nil
}

// Cancel aborts the in-flight request, if any. The aborted request resolves
// with the cancellation notice; no error entry is produced.
func (c *Controller) Cancel() {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// resolve maps a finished request onto the assistant message that records
// its outcome.
func (c *Controller) resolve(resp types.ChatResponse, err error) Message {
	m := Message{
		ID:        c.newID(),
		Role:      types.RoleAssistant,
		Source:    c.source,
		CreatedAt: c.now(),
	}
	switch {
	case errors.Is(err, context.Canceled):
		m.Content = cancelledNotice
	case err != nil:
		m.Content = errorNotice
	case resp.Text() == "":
		m.Content = emptyReplyNotice
	default:
		m.Content = resp.Text()
		m.AgentID = resp.AgentID
		m.AgentName = resp.AgentName
	}
	return m
}

// dispatch routes a directive to the dispatcher. The switch is exhaustive
// over the known types; an unknown type coming off the wire is dropped here
// as a final guard even though the gateway already filters them.
func (c *Controller) dispatch(a types.Action) {
	if c.dispatcher == nil {
		return
	}
	switch a.Type {
	case types.ActionNavigate:
		c.dispatcher.Navigate(a.Target)
	case types.ActionCreateChart:
		c.dispatcher.CreateChart(a.ChartConfig)
	case types.ActionShowTable:
		c.dispatcher.ShowTable(a.TableConfig)
	case types.ActionShowJobsTable:
		c.dispatcher.ShowJobsTable()
	case types.ActionSwitchAgent:
		c.dispatcher.SwitchAgent(a.AgentID, a.AgentName)
	case types.ActionRefreshScheduler:
		c.dispatcher.RefreshScheduler()
	case types.ActionApplyAlgorithm:
		c.dispatcher.ApplyAlgorithm(a.AlgorithmID)
	}
}

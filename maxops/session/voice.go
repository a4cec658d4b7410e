// maxops/session/voice.go
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"maxops/maxops/types"
)

// Recording ceilings per surface. The floating bubble is meant for quick
// commands; the panel allows longer dictation.
const (
	PanelRecordingLimit  = 60 * time.Second
	BubbleRecordingLimit = 30 * time.Second
)

// ErrRecording is returned when Start is called while a recording is active.
var ErrRecording = errors.New("a recording is already active")

// AudioTranscriber is the slice of the gateway client the recorder needs.
type AudioTranscriber interface {
	Transcribe(ctx context.Context, fileName string, audio []byte) (types.TranscriptionResponse, error)
}

// Recorder captures one voice recording at a time and hands the transcript
// to onFinal. A manual Stop means the user finished speaking, so the
// transcript auto-submits; hitting the duration ceiling stops the capture
// but surfaces the transcript for review instead, since the tail of the
// utterance may be missing.
type Recorder struct {
	transcriber AudioTranscriber
	limit       time.Duration
	onFinal     func(text string, autoSubmit bool)

	mu     sync.Mutex
	active bool
	buf    []byte
	timer  *time.Timer
}

func NewRecorder(transcriber AudioTranscriber, limit time.Duration, onFinal func(text string, autoSubmit bool)) *Recorder {
	return &Recorder{transcriber: transcriber, limit: limit, onFinal: onFinal}
}

// Start begins a capture. Only one recording may be active at a time.
func (r *Recorder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active {
		return ErrRecording
	}
	r.active = true
	r.buf = nil
	r.timer = time.AfterFunc(r.limit, func() { r.finish(false) })
	return nil
}

// Push appends captured audio. Chunks arriving outside a recording are
// dropped; the device can deliver a trailing buffer after stop.
func (r *Recorder) Push(chunk []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return
	}
	r.buf = append(r.buf, chunk...)
}

// Stop ends the capture on the user's request and auto-submits the
// transcript.
func (r *Recorder) Stop() {
	r.finish(true)
}

// Active reports whether a capture is running.
func (r *Recorder) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

func (r *Recorder) finish(autoSubmit bool) {
	r.mu.Lock()
	if !r.active {
		r.mu.Unlock()
		return
	}
	r.active = false
	r.timer.Stop()
	audio := r.buf
	r.buf = nil
	r.mu.Unlock()

	text := ""
	if len(audio) > 0 {
		resp, err := r.transcriber.Transcribe(context.Background(), "recording.webm", audio)
		if err == nil && resp.Success {
			text = resp.Text
		}
	}
	if text == "" {
		autoSubmit = false
	}
	if r.onFinal != nil {
		r.onFinal(text, autoSubmit)
	}
}

// SpeechSynthesizer is the slice of the gateway client the player needs.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, req types.SpeechRequest) ([]byte, error)
}

// AudioSink plays synthesized audio on the host. Play blocks until playback
// finishes or ctx is cancelled.
type AudioSink interface {
	Play(ctx context.Context, audio []byte) error
}

// Player speaks assistant replies out loud. Playback is serialized: a new
// eligible message stops whatever is currently speaking. Each message is
// spoken at most once, and replies that existed before the conversation was
// opened stay silent so reloading a session does not replay its history.
type Player struct {
	synth    SpeechSynthesizer
	local    SpeechSynthesizer
	sink     AudioSink
	excluded map[string]bool
	loadedAt time.Time

	mu         sync.Mutex
	lastSpoken string
	cancelPlay context.CancelFunc
}

// NewPlayer builds a player. excludedAgents lists agent ids whose replies
// are never auto-spoken; local is an optional on-host synthesizer used when
// the remote one fails, and may be nil.
func NewPlayer(synth, local SpeechSynthesizer, sink AudioSink, excludedAgents []string) *Player {
	ex := make(map[string]bool, len(excludedAgents))
	for _, id := range excludedAgents {
		ex[id] = true
	}
	return &Player{synth: synth, local: local, sink: sink, excluded: ex, loadedAt: time.Now()}
}

// Eligible reports whether msg qualifies for auto-play under the given
// settings.
func (p *Player) Eligible(msg Message, s Settings) bool {
	if msg.Role != types.RoleAssistant {
		return false
	}
	if s.SoundEnabled == nil || !*s.SoundEnabled {
		return false
	}
	if p.excluded[msg.AgentID] {
		return false
	}
	if !msg.CreatedAt.After(p.loadedAt) {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return msg.ID != p.lastSpoken
}

// AutoPlay speaks msg if it is eligible, stopping any current playback
// first. Returns whether playback was started.
func (p *Player) AutoPlay(ctx context.Context, msg Message, s Settings) bool {
	if !p.Eligible(msg, s) {
		return false
	}

	p.mu.Lock()
	if p.cancelPlay != nil {
		p.cancelPlay()
	}
	playCtx, cancel := context.WithCancel(ctx)
	p.cancelPlay = cancel
	p.lastSpoken = msg.ID
	p.mu.Unlock()

	req := types.SpeechRequest{Text: msg.Content}
	if s.Voice != nil {
		req.Voice = *s.Voice
	}
	if s.VoiceSpeed != nil {
		req.Speed = *s.VoiceSpeed
	}

	audio, err := p.synth.Synthesize(playCtx, req)
	if err != nil && p.local != nil && playCtx.Err() == nil {
		audio, err = p.local.Synthesize(playCtx, req)
	}
	if err != nil {
		cancel()
		return false
	}
	go func() {
		defer cancel()
		_ = p.sink.Play(playCtx, audio)
	}()
	return true
}

// Stop halts any current playback.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancelPlay != nil {
		p.cancelPlay()
		p.cancelPlay = nil
	}
}

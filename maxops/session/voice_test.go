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

type fakeTranscriber struct {
	resp types.TranscriptionResponse
	err  error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, fileName string, audio []byte) (types.TranscriptionResponse, error) {
	return f.resp, f.err
}

type finalCapture struct {
	mu         sync.Mutex
	called     bool
	text       string
	autoSubmit bool
	done       chan struct{}
}

func newFinalCapture() *finalCapture {
	return &finalCapture{done: make(chan struct{}, 1)}
}

func (f *finalCapture) onFinal(text string, autoSubmit bool) {
	f.mu.Lock()
	f.called = true
	f.text = text
	f.autoSubmit = autoSubmit
	f.mu.Unlock()
	f.done <- struct{}{}
}

func TestRecorderManualStopAutoSubmits(t *testing.T) {
	fc := newFinalCapture()
	r := NewRecorder(&fakeTranscriber{resp: types.TranscriptionResponse{Success: true, Text: "show today's jobs"}}, PanelRecordingLimit, fc.onFinal)

	require.NoError(t, r.Start())
	r.Push([]byte("audio-bytes"))
	r.Stop()
	<-fc.done

	require.Equal(t, "show today's jobs", fc.text)
	require.True(t, fc.autoSubmit)
	require.False(t, r.Active())
}

func TestRecorderTimeoutSurfacesForReview(t *testing.T) {
	fc := newFinalCapture()
	r := NewRecorder(&fakeTranscriber{resp: types.TranscriptionResponse{Success: true, Text: "long dictation"}}, 10*time.Millisecond, fc.onFinal)

	require.NoError(t, r.Start())
	r.Push([]byte("audio-bytes"))

	select {
	case <-fc.done:
	case <-time.After(time.Second):
		t.Fatal("timeout stop never fired")
	}
	require.Equal(t, "long dictation", fc.text)
	require.False(t, fc.autoSubmit)
}

func TestRecorderRejectsConcurrentStart(t *testing.T) {
	fc := newFinalCapture()
	r := NewRecorder(&fakeTranscriber{resp: types.TranscriptionResponse{Success: true, Text: "x"}}, PanelRecordingLimit, fc.onFinal)

	require.NoError(t, r.Start())
	require.ErrorIs(t, r.Start(), ErrRecording)

	r.Push([]byte("a"))
	r.Stop()
	<-fc.done

	// A fresh recording is allowed once the previous one finished.
	require.NoError(t, r.Start())
	r.Stop()
}

func TestRecorderFailedTranscriptionNeverAutoSubmits(t *testing.T) {
	fc := newFinalCapture()
	r := NewRecorder(&fakeTranscriber{err: errors.New("stt down")}, PanelRecordingLimit, fc.onFinal)

	require.NoError(t, r.Start())
	r.Push([]byte("a"))
	r.Stop()
	<-fc.done

	require.Empty(t, fc.text)
	require.False(t, fc.autoSubmit)
}

func TestRecorderEmptyCaptureSkipsTranscription(t *testing.T) {
	fc := newFinalCapture()
	r := NewRecorder(&fakeTranscriber{resp: types.TranscriptionResponse{Success: true, Text: "ghost"}}, PanelRecordingLimit, fc.onFinal)

	require.NoError(t, r.Start())
	r.Stop()
	<-fc.done

	require.Empty(t, fc.text)
	require.False(t, fc.autoSubmit)
}

type fakeSynth struct {
	mu    sync.Mutex
	audio []byte
	err   error
	calls int
}

func (f *fakeSynth) Synthesize(ctx context.Context, req types.SpeechRequest) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.audio, f.err
}

type fakeSink struct {
	mu     sync.Mutex
	played [][]byte
	done   chan struct{}
}

func (f *fakeSink) Play(ctx context.Context, audio []byte) error {
	f.mu.Lock()
	f.played = append(f.played, audio)
	f.mu.Unlock()
	if f.done != nil {
		f.done <- struct{}{}
	}
	return nil
}

func soundOn() Settings {
	return Settings{SoundEnabled: boolPtr(true)}
}

func freshAssistantMessage(p *Player, id, agentID string) Message {
	return Message{
		ID:        id,
		Role:      types.RoleAssistant,
		Content:   "spoken reply",
		AgentID:   agentID,
		CreatedAt: p.loadedAt.Add(time.Second),
	}
}

func TestPlayerEligibility(t *testing.T) {
	p := NewPlayer(&fakeSynth{}, nil, &fakeSink{}, []string{"scheduler"})

	require.True(t, p.Eligible(freshAssistantMessage(p, "m1", "max"), soundOn()))

	// User messages never speak.
	user := freshAssistantMessage(p, "m2", "max")
	user.Role = types.RoleUser
	require.False(t, p.Eligible(user, soundOn()))

	// Sound off silences everything.
	require.False(t, p.Eligible(freshAssistantMessage(p, "m3", "max"), Settings{SoundEnabled: boolPtr(false)}))
	require.False(t, p.Eligible(freshAssistantMessage(p, "m4", "max"), Settings{}))

	// Excluded agents stay silent.
	require.False(t, p.Eligible(freshAssistantMessage(p, "m5", "scheduler"), soundOn()))

	// History loaded with the session does not replay.
	old := freshAssistantMessage(p, "m6", "max")
	old.CreatedAt = p.loadedAt.Add(-time.Minute)
	require.False(t, p.Eligible(old, soundOn()))
}

func TestPlayerSpeaksEachMessageOnce(t *testing.T) {
	sink := &fakeSink{done: make(chan struct{}, 2)}
	p := NewPlayer(&fakeSynth{audio: []byte("mp3")}, nil, sink, nil)
	msg := freshAssistantMessage(p, "m1", "max")

	require.True(t, p.AutoPlay(context.Background(), msg, soundOn()))
	<-sink.done
	require.False(t, p.AutoPlay(context.Background(), msg, soundOn()))

	sink.mu.Lock()
	defer sink.mu.Unlock()
	require.Len(t, sink.played, 1)
}

func TestPlayerFallsBackToLocalSynth(t *testing.T) {
	sink := &fakeSink{done: make(chan struct{}, 1)}
	remote := &fakeSynth{err: errors.New("tts down")}
	local := &fakeSynth{audio: []byte("local-wav")}
	p := NewPlayer(remote, local, sink, nil)

	require.True(t, p.AutoPlay(context.Background(), freshAssistantMessage(p, "m1", "max"), soundOn()))
	<-sink.done

	sink.mu.Lock()
	defer sink.mu.Unlock()
	require.Equal(t, []byte("local-wav"), sink.played[0])
}

func TestPlayerBothSynthsFailing(t *testing.T) {
	remote := &fakeSynth{err: errors.New("down")}
	local := &fakeSynth{err: errors.New("also down")}
	p := NewPlayer(remote, local, &fakeSink{}, nil)

	require.False(t, p.AutoPlay(context.Background(), freshAssistantMessage(p, "m1", "max"), soundOn()))
}

func TestPlayerAppliesVoiceSettings(t *testing.T) {
	var got types.SpeechRequest
	synth := synthFunc(func(ctx context.Context, req types.SpeechRequest) ([]byte, error) {
		got = req
		return []byte("mp3"), nil
	})
	sink := &fakeSink{done: make(chan struct{}, 1)}
	p := NewPlayer(synth, nil, sink, nil)

	s := Settings{SoundEnabled: boolPtr(true), Voice: strPtr("nova"), VoiceSpeed: floatPtr(1.5)}
	require.True(t, p.AutoPlay(context.Background(), freshAssistantMessage(p, "m1", "max"), s))
	<-sink.done

	require.Equal(t, "nova", got.Voice)
	require.Equal(t, 1.5, got.Speed)
}

type synthFunc func(ctx context.Context, req types.SpeechRequest) ([]byte, error)

func (f synthFunc) Synthesize(ctx context.Context, req types.SpeechRequest) ([]byte, error) {
	return f(ctx, req)
}

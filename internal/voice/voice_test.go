package voice

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewFallsBackToNop(t *testing.T) {
	s := New("definitely-not-a-tts-binary", nil, zap.NewNop())
	if _, ok := s.(Nop); !ok {
		t.Fatalf("expected Nop speaker, got %T", s)
	}
	// Must not panic.
	s.Speak("12")
	s.Stop()
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Speak("7")
	r.Speak("3")
	r.Stop()
	if len(r.Spoken) != 2 || r.Spoken[1] != "3" {
		t.Errorf("spoken = %v, want [7 3]", r.Spoken)
	}
	if r.Stopped != 1 {
		t.Errorf("stopped = %d, want 1", r.Stopped)
	}
}

// Package voice announces shown numbers through an external text-to-speech
// command. Announcements are fire-and-forget.
package voice

import (
	"context"
	"os/exec"
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// Speaker announces text.
type Speaker interface {
	Speak(text string)
	Stop()
}

// Nop discards every announcement.
type Nop struct{}

func (Nop) Speak(string) {}
func (Nop) Stop()        {}

// CommandSpeaker runs a TTS program (say, espeak, spd-say) per announcement.
// A new announcement interrupts the previous one.
type CommandSpeaker struct {
	program string
	args    []string
	logger  *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

var _ Speaker = (*CommandSpeaker)(nil)

// DefaultProgram returns the TTS program name for the current platform.
func DefaultProgram() string {
	if runtime.GOOS == "darwin" {
		return "say"
	}
	return "espeak"
}

// New returns a Speaker for program. When program is empty the platform
// default is used; when it cannot be found on PATH a Nop speaker is
// returned.
func New(program string, args []string, logger *zap.Logger) Speaker {
	if program == "" {
		program = DefaultProgram()
	}
	if _, err := exec.LookPath(program); err != nil {
		logger.Warn("tts program not found, voice disabled",
			zap.String("program", program), zap.Error(err))
		return Nop{}
	}
	return &CommandSpeaker{program: program, args: args, logger: logger}
}

// Speak starts an announcement and returns immediately.
func (s *CommandSpeaker) Speak(text string) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	args := append(append([]string{}, s.args...), text)
	cmd := exec.CommandContext(ctx, s.program, args...)
	if err := cmd.Start(); err != nil {
		s.logger.Debug("tts start failed", zap.Error(err))
		cancel()
		return
	}
	go func() {
		_ = cmd.Wait()
		cancel()
	}()
}

// Stop interrupts the in-flight announcement, if any.
func (s *CommandSpeaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Recorder captures announcements for tests.
type Recorder struct {
	Spoken  []string
	Stopped int
}

func (r *Recorder) Speak(text string) { r.Spoken = append(r.Spoken, text) }
func (r *Recorder) Stop()             { r.Stopped++ }

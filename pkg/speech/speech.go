// Package speech speaks reminder text through the operating system's
// text-to-speech command.
package speech

import (
	"log"
	"os/exec"
	"sync"
)

// Synthesizer runs one utterance at a time. Starting a new utterance
// cancels the one still playing, matching the engine's rule of one
// voice alert per minute.
type Synthesizer struct {
	mu      sync.Mutex
	current *exec.Cmd
}

// NewSynthesizer returns a ready synthesizer, or nil when the platform
// has no supported speech command.
func NewSynthesizer() *Synthesizer {
	if speechCommand("", "en", 1, 1) == nil {
		return nil
	}
	return &Synthesizer{}
}

// Speak queues the text for speech. rate and pitch are multipliers
// around 1.0 and are mapped to the platform command's own units.
func (s *Synthesizer) Speak(text, locale string, rate, pitch float64) {
	cmd := speechCommand(text, locale, rate, pitch)
	if cmd == nil {
		return
	}

	s.mu.Lock()
	if s.current != nil && s.current.Process != nil {
		s.current.Process.Kill()
	}
	s.current = cmd
	s.mu.Unlock()

	go func() {
		if err := cmd.Run(); err != nil {
			log.Printf("speech command failed: %v", err)
		}
		s.mu.Lock()
		if s.current == cmd {
			s.current = nil
		}
		s.mu.Unlock()
	}()
}

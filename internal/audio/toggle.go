package audio

import "log"

// Button labels.
const (
	PlayLabel  = "Play Music"
	PauseLabel = "Pause Music"
)

// Toggle is the play/pause switch. It flips on every press, even when the
// player refuses to start; the refusal is only logged.
type Toggle struct {
	player  Player
	playing bool
	lastErr error
	logger  *log.Logger
}

// NewToggle returns a toggle in the paused state. A nil logger uses the
// standard logger.
func NewToggle(p Player, logger *log.Logger) *Toggle {
	if logger == nil {
		logger = log.Default()
	}
	return &Toggle{player: p, logger: logger}
}

// Toggle requests play when paused and pause when playing.
func (t *Toggle) Toggle() {
	if !t.playing {
		if err := t.player.Play(); err != nil {
			t.lastErr = err
			t.logger.Printf("could not play audio: %v", err)
		} else {
			t.lastErr = nil
		}
	} else {
		t.player.Pause()
	}
	t.playing = !t.playing
}

// Playing reports the toggle state.
func (t *Toggle) Playing() bool {
	return t.playing
}

// Label is the text for the control: what pressing it will do next.
func (t *Toggle) Label() string {
	if t.playing {
		return PauseLabel
	}
	return PlayLabel
}

// Err is the error from the most recent play request, if it failed.
func (t *Toggle) Err() error {
	return t.lastErr
}

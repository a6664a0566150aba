// Package audio plays looping background music and exposes the two-state
// play/pause toggle used by the hosts.
package audio

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"

	"github.com/iburimskiy/holiday-scene/internal/config"
)

// ErrNoTrack is returned by Play when no music file has been chosen.
var ErrNoTrack = errors.New("no music track configured")

// Player starts and stops playback. Play may fail, for instance when no
// output device is available; Pause never does.
type Player interface {
	Play() error
	Pause()
}

// Music is a Player that loops one file through the system speaker. The
// first Play loads the file; later calls resume it.
type Music struct {
	path string

	currentFile *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	tap         *levelTap
	fade        *Fade

	initDone bool
}

// NewMusic returns a player for the file at path. An empty path is allowed;
// Play then reports ErrNoTrack until SetTrack is called.
func NewMusic(path string) *Music {
	return &Music{path: path}
}

// Track is the current music file.
func (m *Music) Track() string {
	return m.path
}

// SetTrack stops whatever is loaded and switches to path. The new file is
// loaded on the next Play.
func (m *Music) SetTrack(path string) {
	m.stopCurrent()
	m.path = path
}

// Play starts or resumes the track, fading the volume in.
func (m *Music) Play() error {
	if m.path == "" {
		return ErrNoTrack
	}
	if m.ctrl == nil {
		if err := m.load(m.path); err != nil {
			return err
		}
	}

	speaker.Lock()
	m.ctrl.Paused = false
	m.volume.Volume = config.FadeFloor
	speaker.Unlock()

	m.fade = NewFade(config.FadeFloor, 0, config.FadeInSeconds)
	return nil
}

// Pause holds playback at the current position.
func (m *Music) Pause() {
	if m.ctrl == nil {
		return
	}
	speaker.Lock()
	m.ctrl.Paused = true
	speaker.Unlock()
	m.fade = nil
}

// Update advances the fade-in by dt seconds. Hosts call it once per tick.
func (m *Music) Update(dt float32) {
	if m.fade == nil || m.volume == nil {
		return
	}
	level, done := m.fade.Update(dt)
	speaker.Lock()
	m.volume.Volume = level
	speaker.Unlock()
	if done {
		m.fade = nil
	}
}

// Level is how loud the most recent output was, in [0, 1].
func (m *Music) Level() float64 {
	if m.tap == nil || m.ctrl == nil {
		return 0
	}
	speaker.Lock()
	paused := m.ctrl.Paused
	speaker.Unlock()
	if paused {
		return 0
	}
	return m.tap.level(config.LevelWindow)
}

// Close stops playback and releases the file.
func (m *Music) Close() error {
	m.stopCurrent()
	return nil
}

func (m *Music) stopCurrent() {
	if m.ctrl != nil {
		speaker.Clear()
	}
	if m.streamer != nil {
		_ = m.streamer.Close()
		m.streamer = nil
	}
	if m.currentFile != nil {
		_ = m.currentFile.Close()
		m.currentFile = nil
	}
	m.ctrl = nil
	m.volume = nil
	m.tap = nil
	m.fade = nil
}

func (m *Music) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open music")
	}

	streamer, format, err := decode(f, path)
	if err != nil {
		_ = f.Close()
		return err
	}

	// streamer -> loop -> tap -> ctrl -> volume
	tap := newLevelTap(beep.Loop(-1, streamer), config.LevelRingSize)
	ctrl := &beep.Ctrl{Streamer: tap, Paused: true}
	volume := &effects.Volume{Streamer: ctrl, Base: config.VolumeBase, Volume: config.FadeFloor}

	bufferSize := format.SampleRate.N(time.Second / config.SpeakerLatency)
	if !m.initDone || m.format.SampleRate != format.SampleRate {
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return errors.Wrap(err, "init speaker")
		}
		m.initDone = true
	} else {
		speaker.Clear()
	}

	m.currentFile = f
	m.streamer = streamer
	m.format = format
	m.ctrl = ctrl
	m.volume = volume
	m.tap = tap

	speaker.Play(volume)
	log.Printf("loaded music %s (%d Hz)", path, format.SampleRate)
	return nil
}

func decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		return nil, beep.Format{}, errors.Errorf("unsupported music file type %q", ext)
	}
	if err != nil {
		return nil, beep.Format{}, errors.Wrapf(err, "decode %s", filepath.Base(path))
	}
	return streamer, format, nil
}

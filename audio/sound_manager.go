package audio

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/bell-fighter/config"
	"github.com/lixenwraith/bell-fighter/parameter"
)

// resampleQuality is passed to beep.Resample when an mp3 track does not match the speaker rate
const resampleQuality = 4

// Manager owns the speaker and the looping background track
type Manager struct {
	mu     sync.Mutex
	cfg    config.AudioConfig
	log    *zap.Logger
	rate   beep.SampleRate
	mixer  *beep.Mixer
	track  *beep.Ctrl
	volume *effects.Volume
	source io.Closer

	initialized bool
	unlocked    bool
	muted       bool
}

// NewManager creates a manager, no device is touched until Init
func NewManager(cfg config.AudioConfig, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = parameter.AudioSampleRate
	}
	return &Manager{
		cfg:   cfg,
		log:   log,
		rate:  beep.SampleRate(rate),
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker, disabled audio and repeated calls are no-ops
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.cfg.Enabled || m.initialized {
		return nil
	}

	if err := speaker.Init(m.rate, m.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.mixer)
	m.initialized = true
	m.log.Info("audio ready", zap.Int("sample_rate", int(m.rate)))
	return nil
}

// Unlock starts the background track, only the first call after Init has an effect
func (m *Manager) Unlock() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.unlocked {
		return
	}
	m.unlocked = true

	streamer, closer, err := m.openTrack()
	if err != nil {
		m.log.Warn("track unavailable, using stage loop", zap.String("track", m.cfg.Track), zap.Error(err))
		streamer, closer = beep.Loop(-1, NewStageLoop(m.rate)), nil
	}

	m.source = closer
	m.track = &beep.Ctrl{Streamer: streamer, Paused: false}
	m.volume = &effects.Volume{Streamer: m.track, Base: 2, Volume: m.cfg.Volume, Silent: m.muted}

	speaker.Lock()
	m.mixer.Add(m.volume)
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new value
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.muted = !m.muted
	if m.volume != nil {
		speaker.Lock()
		m.volume.Silent = m.muted
		speaker.Unlock()
	}
	return m.muted
}

func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Playing reports whether the background track has been started
func (m *Manager) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.track != nil && !m.track.Paused
}

// Close stops playback and releases the device
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	if m.track != nil {
		m.track.Paused = true
	}
	m.mixer.Clear()
	speaker.Unlock()

	speaker.Close()

	if m.source != nil {
		if err := m.source.Close(); err != nil {
			m.log.Warn("close track", zap.Error(err))
		}
		m.source = nil
	}
	m.track = nil
	m.volume = nil
	m.initialized = false
	m.unlocked = false
}

func (m *Manager) openTrack() (beep.Streamer, io.Closer, error) {
	if m.cfg.Track == "" {
		return beep.Loop(-1, NewStageLoop(m.rate)), nil, nil
	}
	return OpenTrack(m.cfg.Track, m.rate)
}

// OpenTrack decodes an mp3 file into an endless loop at the given rate
func OpenTrack(path string, rate beep.SampleRate) (beep.Streamer, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open track %s: %w", path, err)
	}
	return DecodeTrack(f, rate)
}

// DecodeTrack loops an mp3 stream, resampling when its rate differs from the speaker
func DecodeTrack(rc io.ReadCloser, rate beep.SampleRate) (beep.Streamer, io.Closer, error) {
	stream, format, err := mp3.Decode(rc)
	if err != nil {
		rc.Close()
		return nil, nil, fmt.Errorf("decode track: %w", err)
	}

	var s beep.Streamer = beep.Loop(-1, stream)
	if format.SampleRate != rate {
		s = beep.Resample(resampleQuality, format.SampleRate, rate, s)
	}
	return s, stream, nil
}

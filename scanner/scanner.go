// Package scanner drives barcode capture for the till: a camera decode
// session against a capture device, or manual keyed-in entry, never both at
// once. The capture device itself (frame grabbing, symbol decoding) sits
// behind the CaptureDevice boundary.
package scanner

import (
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type Mode string

const (
	ModeCamera Mode = "camera"
	ModeManual Mode = "manual"
)

var (
	// ErrNoSymbol is the per-frame "nothing decodable here" condition.
	// Capture implementations report it on most frames; it is expected
	// noise and is never logged or surfaced.
	ErrNoSymbol = errors.New("no symbol found in frame")

	// ErrNoCamera means camera capture could not be used and the scanner
	// has fallen back to manual entry.
	ErrNoCamera = errors.New("no camera available")

	ErrEmptyCode = errors.New("empty barcode input")
)

type Device struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// FrameConfig is passed through to the capture device unchanged.
type FrameConfig struct {
	DecodesPerSecond int     `json:"decodes_per_second"`
	FocusWidthPct    float64 `json:"focus_width_pct"`
	FocusHeightPct   float64 `json:"focus_height_pct"`
}

// CaptureDevice is the external capture boundary. Start runs a continuous
// decode loop, delivering each decoded code to onDecode and each per-frame
// failure to onDecodeError. Stop and Clear must be safe to call at any time.
type CaptureDevice interface {
	Enumerate() ([]Device, error)
	Start(deviceID string, cfg FrameConfig, onDecode func(code string), onDecodeError func(err error)) error
	Stop()
	Clear()
}

// NoDevices is a CaptureDevice with nothing attached; enumeration is empty,
// so camera mode always falls back to manual. It is the default on a server
// with no registered capture hardware.
type NoDevices struct{}

func (NoDevices) Enumerate() ([]Device, error) { return nil, nil }
func (NoDevices) Start(string, FrameConfig, func(string), func(error)) error {
	return errors.New("no capture device registered")
}
func (NoDevices) Stop()  {}
func (NoDevices) Clear() {}

// Scanner is one terminal's scan screen. A decoded code (camera or manual)
// is handed to resolve, the capture session is torn down, and the scanner is
// closed. The session-release contract holds on every exit path: success,
// start failure, mode switch and explicit close, and release is idempotent.
type Scanner struct {
	mu      sync.Mutex
	capture CaptureDevice
	resolve func(code string)

	mode   Mode
	active bool // capture session currently open
	closed bool
}

func New(capture CaptureDevice, resolve func(code string)) *Scanner {
	return &Scanner{capture: capture, resolve: resolve, mode: ModeCamera}
}

func (s *Scanner) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Scanner) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// StartCamera enumerates capture devices and opens a decode session against
// the first one. Zero devices, an enumeration failure or a start failure all
// force manual mode and return ErrNoCamera; the underlying cause is logged,
// not returned.
func (s *Scanner) StartCamera(cfg FrameConfig) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrNoCamera
	}
	// any previous session must be stopped before a new one starts
	s.releaseLocked()

	devices, err := s.capture.Enumerate()
	if err != nil {
		s.mode = ModeManual
		s.mu.Unlock()
		zap.S().Warnf("camera enumeration failed: %v", err)
		return ErrNoCamera
	}
	if len(devices) == 0 {
		s.mode = ModeManual
		s.mu.Unlock()
		return ErrNoCamera
	}
	deviceID := devices[0].ID
	s.mode = ModeCamera
	s.active = true
	s.mu.Unlock()

	// Start may deliver decodes synchronously, so it runs outside the lock.
	if err := s.capture.Start(deviceID, cfg, s.onDecode, s.onDecodeError); err != nil {
		s.mu.Lock()
		s.releaseLocked()
		s.mode = ModeManual
		s.mu.Unlock()
		zap.S().Warnf("camera start failed: %v", err)
		return ErrNoCamera
	}
	return nil
}

// UseManual switches to manual entry, releasing any open capture session.
func (s *Scanner) UseManual() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseLocked()
	s.mode = ModeManual
}

// SubmitManual trims the keyed-in code and, when non-empty, follows the same
// success path as a camera decode.
func (s *Scanner) SubmitManual(input string) error {
	code := strings.TrimSpace(input)
	if code == "" {
		return ErrEmptyCode
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.releaseLocked()
	s.closed = true
	s.mu.Unlock()

	s.resolve(code)
	return nil
}

// Close releases any open capture session and marks the scanner closed.
// Safe to call repeatedly and on any path.
func (s *Scanner) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseLocked()
	s.closed = true
}

func (s *Scanner) onDecode(code string) {
	s.mu.Lock()
	if s.closed {
		// late decode after teardown; the session already ended
		s.mu.Unlock()
		return
	}
	s.releaseLocked()
	s.closed = true
	s.mu.Unlock()

	s.resolve(code)
}

func (s *Scanner) onDecodeError(err error) {
	if errors.Is(err, ErrNoSymbol) {
		return
	}
	zap.S().Warnf("decode error, scanning continues: %v", err)
}

// caller holds mu
func (s *Scanner) releaseLocked() {
	if !s.active {
		return
	}
	s.capture.Stop()
	s.capture.Clear()
	s.active = false
}

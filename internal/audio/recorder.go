// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package audio provides microphone capture and answer playback via the
// system's audio tools. Capture and playback both shell out to whichever
// supported binary is installed; nothing is linked in.
package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrNoCaptureTool means no supported recording binary was found.
	ErrNoCaptureTool = errors.New("no audio capture tool found (install arecord, sox, or ffmpeg)")

	// ErrPermissionDenied means the capture tool could not open the microphone.
	ErrPermissionDenied = errors.New("microphone access denied")

	// ErrBusy means a recording is already in progress.
	ErrBusy = errors.New("recording already in progress")

	// ErrNotRecording means Stop was called with no active recording.
	ErrNotRecording = errors.New("no recording in progress")
)

// =============================================================================
// CAPTURE DEVICE
// =============================================================================

// CaptureDevice starts recordings. The exec-based implementation is the
// production one; tests substitute a fake.
type CaptureDevice interface {
	// Start begins recording to a new temporary file and returns the
	// session handle.
	Start(ctx context.Context) (CaptureSession, error)
}

// CaptureSession is one in-progress recording.
type CaptureSession interface {
	// Stop ends the recording and returns the path of the captured file.
	// The caller owns the file and removes it when done.
	Stop() (string, error)
}

// =============================================================================
// EXEC CAPTURE
// =============================================================================

// captureTool describes one supported recording binary.
type captureTool struct {
	name string
	args func(outPath string) []string
}

// Capture tools in preference order. All record 16 kHz mono WAV, which is
// what the backend's transcriber expects.
var captureTools = []captureTool{
	{"arecord", func(out string) []string {
		return []string{"-q", "-f", "S16_LE", "-r", "16000", "-c", "1", out}
	}},
	{"sox", func(out string) []string {
		return []string{"-q", "-d", "-r", "16000", "-c", "1", out}
	}},
	{"ffmpeg", func(out string) []string {
		return []string{"-loglevel", "quiet", "-f", "pulse", "-i", "default",
			"-ar", "16000", "-ac", "1", "-y", out}
	}},
}

// ExecCapture records by running a system audio tool until stopped.
type ExecCapture struct {
	tool captureTool

	mu     sync.Mutex
	active bool
}

// NewCapture finds a capture tool and returns a device using it. An explicit
// command name (from configuration) restricts the search to that tool.
func NewCapture(command string) (*ExecCapture, error) {
	for _, t := range captureTools {
		if command != "" && t.name != command {
			continue
		}
		if _, err := exec.LookPath(t.name); err == nil {
			return &ExecCapture{tool: t}, nil
		}
	}
	return nil, ErrNoCaptureTool
}

// Start begins recording to a temporary WAV file.
func (c *ExecCapture) Start(ctx context.Context) (CaptureSession, error) {
	c.mu.Lock()
	if c.active {
		c.mu.Unlock()
		return nil, ErrBusy
	}
	c.active = true
	c.mu.Unlock()

	path := filepath.Join(os.TempDir(), fmt.Sprintf("janaccess-rec-%d.wav", os.Getpid()))

	cmd := exec.CommandContext(ctx, c.tool.name, c.tool.args(path)...)
	if err := cmd.Start(); err != nil {
		c.release()
		return nil, fmt.Errorf("start %s: %w", c.tool.name, err)
	}

	return &execSession{capture: c, cmd: cmd, path: path}, nil
}

func (c *ExecCapture) release() {
	c.mu.Lock()
	c.active = false
	c.mu.Unlock()
}

// execSession wraps a running capture process.
type execSession struct {
	capture *ExecCapture
	cmd     *exec.Cmd
	path    string
	stopped bool
}

// Stop interrupts the recorder process and waits for it to flush the file.
func (s *execSession) Stop() (string, error) {
	if s.stopped {
		return "", ErrNotRecording
	}
	s.stopped = true
	defer s.capture.release()

	// Interrupt lets arecord/sox finalize the WAV header; Kill would not.
	if err := s.cmd.Process.Signal(os.Interrupt); err != nil {
		s.cmd.Process.Kill()
	}
	s.cmd.Wait()

	info, err := os.Stat(s.path)
	if err != nil || info.Size() == 0 {
		os.Remove(s.path)
		return "", ErrPermissionDenied
	}
	return s.path, nil
}

// =============================================================================
// RECORDER STATE MACHINE
// =============================================================================

// State is the recorder lifecycle phase.
type State int

const (
	// StateIdle means no recording is active.
	StateIdle State = iota
	// StateRecording means audio is being captured.
	StateRecording
	// StateProcessing means the clip was sent and the reply is pending.
	StateProcessing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateProcessing:
		return "processing"
	default:
		return "unknown"
	}
}

// Recorder drives the capture lifecycle: Idle -> Recording -> Processing ->
// Idle. It is owned by the UI event loop and is not safe for concurrent use.
type Recorder struct {
	device  CaptureDevice
	state   State
	session CaptureSession
}

// NewRecorder creates a recorder over the given device.
func NewRecorder(device CaptureDevice) *Recorder {
	return &Recorder{device: device}
}

// State returns the current lifecycle phase.
func (r *Recorder) State() State {
	return r.state
}

// Begin starts capturing. Only legal from Idle.
func (r *Recorder) Begin(ctx context.Context) error {
	if r.state != StateIdle {
		return ErrBusy
	}
	session, err := r.device.Start(ctx)
	if err != nil {
		return err
	}
	r.session = session
	r.state = StateRecording
	return nil
}

// Finish stops capturing and moves to Processing. Returns the path of the
// recorded file. Only legal from Recording.
func (r *Recorder) Finish() (string, error) {
	if r.state != StateRecording {
		return "", ErrNotRecording
	}
	path, err := r.session.Stop()
	r.session = nil
	if err != nil {
		r.state = StateIdle
		return "", err
	}
	r.state = StateProcessing
	return path, nil
}

// Cancel aborts an in-progress recording and discards the file.
func (r *Recorder) Cancel() {
	if r.state == StateRecording && r.session != nil {
		if path, err := r.session.Stop(); err == nil {
			os.Remove(path)
		}
		r.session = nil
	}
	r.state = StateIdle
}

// Done marks the processing phase complete, returning to Idle.
func (r *Recorder) Done() {
	r.state = StateIdle
}

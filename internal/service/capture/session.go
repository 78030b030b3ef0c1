package capture

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/recognition"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/metrics"
)

// ErrRecognitionTimeout marks a submission that ran past the per-call
// deadline, as opposed to an ordinary transport failure.
var ErrRecognitionTimeout = errors.New("recognition request took too long")

// Recognizer submits one captured frame for identification.
type Recognizer interface {
	Recognize(ctx context.Context, frame []byte, platform string) (recognition.DetectResponse, error)
}

// State of a capture session.
type State int

const (
	StateIdle State = iota
	StateActive
	StateSubmitting
)

// Config drives the auto-scan loop timing.
type Config struct {
	ScanInterval       time.Duration
	CaptureCooldown    time.Duration
	RecognitionTimeout time.Duration
}

// Outcome is one completed capture+recognize cycle. Exactly one of
// Response and Err is meaningful.
type Outcome struct {
	Response recognition.DetectResponse
	Err      error
}

// Session owns one video device and serializes recognition calls
// against it: at most one submission in flight, a minimum cool-down
// between completed captures, and excess auto-scan ticks dropped
// rather than queued. Stopping the device never aborts an in-flight
// call; its result is discarded when it lands after the stop.
type Session struct {
	device     FrameSource
	recognizer Recognizer
	cfg        Config
	logger     *slog.Logger
	platform   string

	// onResult receives every surfaced outcome while the device is
	// active. Called from the submission goroutine.
	onResult func(Outcome)

	mu          sync.Mutex
	state       State
	lastCapture time.Time
	cancelLoop  context.CancelFunc

	// now is swapped out in tests; comparisons use the monotonic clock
	// carried by time.Time.
	now func() time.Time
}

func NewSession(device FrameSource, recognizer Recognizer, cfg Config, platform string, logger *slog.Logger, onResult func(Outcome)) *Session {
	return &Session{
		device:     device,
		recognizer: recognizer,
		cfg:        cfg,
		platform:   platform,
		logger:     logger,
		onResult:   onResult,
		now:        time.Now,
	}
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// StartDevice acquires the video input and begins the auto-scan loop.
// On a DeviceError the session stays Idle. Starting an already active
// session is a no-op.
func (s *Session) StartDevice(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	if err := s.device.Start(ctx, s.platform); err != nil {
		return err
	}

	loopCtx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	s.state = StateActive
	s.cancelLoop = cancel
	s.mu.Unlock()

	go s.loop(loopCtx)
	return nil
}

// StopDevice releases the device and cancels the auto-scan loop.
// Unconditional and idempotent; it does not wait for an in-flight
// submission, whose result is silently discarded.
func (s *Session) StopDevice() {
	s.mu.Lock()
	if s.state == StateIdle {
		s.mu.Unlock()
		return
	}
	cancel := s.cancelLoop
	s.state = StateIdle
	s.cancelLoop = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if err := s.device.Stop(); err != nil {
		s.logger.Warn("failed to release video device", slog.Any("error", err))
	}
}

func (s *Session) loop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Scan()
		}
	}
}

// Scan attempts one capture+recognize cycle under the single-flight
// discipline: dropped silently when a submission is already in flight
// or the cool-down since the last completed capture has not elapsed.
func (s *Session) Scan() {
	s.mu.Lock()
	switch {
	case s.state == StateIdle:
		s.mu.Unlock()
		return
	case s.state == StateSubmitting:
		s.mu.Unlock()
		metrics.CaptureScansSkipped.WithLabelValues("in_flight").Inc()
		return
	case !s.lastCapture.IsZero() && s.now().Sub(s.lastCapture) < s.cfg.CaptureCooldown:
		s.mu.Unlock()
		metrics.CaptureScansSkipped.WithLabelValues("cooldown").Inc()
		return
	}
	s.state = StateSubmitting
	s.mu.Unlock()

	go s.captureAndRecognize()
}

func (s *Session) captureAndRecognize() {
	// The submission owns its own deadline so that stopping the device
	// never aborts it mid-call.
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.RecognitionTimeout)
	defer cancel()

	outcome := s.submit(ctx)

	s.mu.Lock()
	s.lastCapture = s.now()
	discarded := s.state == StateIdle
	if s.state == StateSubmitting {
		s.state = StateActive
	}
	s.mu.Unlock()

	if discarded {
		return
	}
	if s.onResult != nil {
		s.onResult(outcome)
	}
}

func (s *Session) submit(ctx context.Context) Outcome {
	frame, err := s.device.Capture(ctx)
	if err != nil {
		metrics.RecognitionRequests.WithLabelValues("error").Inc()
		return Outcome{Err: err}
	}

	resp, err := s.recognizer.Recognize(ctx, frame, s.platform)
	switch {
	case err == nil:
		metrics.RecognitionRequests.WithLabelValues("success").Inc()
		return Outcome{Response: resp}
	case errors.Is(err, context.DeadlineExceeded):
		metrics.RecognitionRequests.WithLabelValues("timeout").Inc()
		return Outcome{Err: ErrRecognitionTimeout}
	case errors.Is(err, recognition.ErrNoFaceMatch):
		metrics.RecognitionRequests.WithLabelValues("no_match").Inc()
		return Outcome{Err: err}
	default:
		metrics.RecognitionRequests.WithLabelValues("error").Inc()
		return Outcome{Err: err}
	}
}

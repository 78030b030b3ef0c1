package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/recognition"
	"github.com/liggey-sinaa/attendance-backend-go/internal/service/capture"
)

// dirFrameSource reads frames a camera daemon drops into a spool
// directory; the newest image file is the current frame.
type dirFrameSource struct {
	dir string
}

func (d *dirFrameSource) Start(_ context.Context, _ string) error {
	info, err := os.Stat(d.dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return &capture.DeviceError{Reason: capture.DeviceNotFound, Err: err}
	case errors.Is(err, os.ErrPermission):
		return &capture.DeviceError{Reason: capture.DevicePermissionDenied, Err: err}
	case err != nil:
		return &capture.DeviceError{Reason: capture.DeviceBusy, Err: err}
	case !info.IsDir():
		return &capture.DeviceError{Reason: capture.DeviceNotFound, Err: fmt.Errorf("%s is not a directory", d.dir)}
	}
	return nil
}

func (d *dirFrameSource) Capture(_ context.Context) ([]byte, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame directory: %w", err)
	}

	var newest string
	var newestTime time.Time
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestTime) {
			newest = entry.Name()
			newestTime = info.ModTime()
		}
	}
	if newest == "" {
		return nil, errors.New("no frame available")
	}
	return os.ReadFile(filepath.Join(d.dir, newest))
}

func (d *dirFrameSource) Stop() error { return nil }

// httpRecognizer submits frames to the backend detect endpoint.
type httpRecognizer struct {
	baseURL string
	client  *http.Client
}

func (r *httpRecognizer) Recognize(ctx context.Context, frame []byte, platform string) (recognition.DetectResponse, error) {
	payload, _ := json.Marshal(recognition.DetectRequest{
		Image:    base64.StdEncoding.EncodeToString(frame),
		Platform: platform,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/v1/detect", bytes.NewReader(payload))
	if err != nil {
		return recognition.DetectResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return recognition.DetectResponse{}, fmt.Errorf("detect request failed: %w", err)
	}
	defer resp.Body.Close()

	var out recognition.DetectResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return recognition.DetectResponse{}, fmt.Errorf("failed to decode detect response: %w", err)
	}
	return out, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key, fallback string) time.Duration {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "liggey-sinaa-kiosk"),
	)

	device := &dirFrameSource{dir: getEnv("KIOSK_FRAME_DIR", "data/frames")}
	recognizer := &httpRecognizer{
		baseURL: getEnv("KIOSK_BACKEND_URL", "http://localhost:8000"),
		client:  &http.Client{},
	}

	cfg := capture.Config{
		ScanInterval:       getDuration("CAPTURE_SCAN_INTERVAL", "5s"),
		CaptureCooldown:    getDuration("CAPTURE_COOLDOWN", "3s"),
		RecognitionTimeout: getDuration("CAPTURE_RECOGNITION_TIMEOUT", "10s"),
	}

	session := capture.NewSession(device, recognizer, cfg, getEnv("KIOSK_PLATFORM", "desktop"), logger, func(o capture.Outcome) {
		switch {
		case errors.Is(o.Err, capture.ErrRecognitionTimeout):
			logger.Warn("recognition took too long, retrying on next scan")
		case o.Err != nil:
			logger.Warn("scan failed", slog.Any("error", o.Err))
		default:
			logger.Info("scan result",
				slog.String("status", o.Response.Status),
				slog.String("action", o.Response.Action),
				slog.String("message", o.Response.Message))
		}
	})

	if err := session.StartDevice(context.Background()); err != nil {
		var devErr *capture.DeviceError
		if errors.As(err, &devErr) {
			logger.Error("cannot acquire video input", slog.String("reason", string(devErr.Reason)))
		} else {
			logger.Error("cannot start capture session", slog.Any("error", err))
		}
		os.Exit(1)
	}
	logger.Info("capture session started",
		slog.Duration("scan_interval", cfg.ScanInterval),
		slog.Duration("cooldown", cfg.CaptureCooldown))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	session.StopDevice()
	logger.Info("capture session stopped")
}

package capture

import (
	"context"
	"fmt"
)

// DeviceErrorReason narrows a device acquisition failure for display.
type DeviceErrorReason string

const (
	DevicePermissionDenied DeviceErrorReason = "permission_denied"
	DeviceNotFound         DeviceErrorReason = "not_found"
	DeviceBusy             DeviceErrorReason = "busy"
	DeviceTimeout          DeviceErrorReason = "timeout"
)

// DeviceError is a failure to acquire or read the video input. The
// session stays Idle when Start fails with one of these.
type DeviceError struct {
	Reason DeviceErrorReason
	Err    error
}

func (e *DeviceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("video device %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("video device %s", e.Reason)
}

func (e *DeviceError) Unwrap() error { return e.Err }

// FrameSource is a video input owned exclusively by one capture
// session. Start acquires it with a platform-appropriate resolution
// hint; Capture snapshots the current frame as an encoded image.
type FrameSource interface {
	Start(ctx context.Context, platform string) error
	Capture(ctx context.Context) ([]byte, error)
	Stop() error
}

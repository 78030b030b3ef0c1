package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// Frame bounds per platform; portrait on phones, landscape on desktop.
const (
	desktopMaxWidth  = 640
	desktopMaxHeight = 480
	mobileMaxWidth   = 480
	mobileMaxHeight  = 640

	desktopJPEGQuality = 80
	mobileJPEGQuality  = 60
)

// NormalizeFrame decodes a base64 frame (with or without a data-URL
// prefix), shrinks it to the platform bounds preserving aspect ratio,
// and re-encodes it as a base64 JPEG. Frames already within bounds are
// only re-encoded.
func NormalizeFrame(data string, platform string) (string, error) {
	raw, err := DecodeBase64(data)
	if err != nil {
		return "", err
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode frame: %w", err)
	}

	maxW, maxH, quality := desktopMaxWidth, desktopMaxHeight, desktopJPEGQuality
	if platform == "ios" || platform == "android" {
		maxW, maxH, quality = mobileMaxWidth, mobileMaxHeight, mobileJPEGQuality
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxW || bounds.Dy() > maxH {
		img = imaging.Fit(img, maxW, maxH, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return "", fmt.Errorf("encode frame: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// EncodeJPEG renders an image as a base64 JPEG at the given quality.
func EncodeJPEG(img image.Image, quality int) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeBase64 strips an optional "data:image/...;base64," prefix and
// decodes the payload.
func DecodeBase64(data string) ([]byte, error) {
	if idx := strings.Index(data, ";base64,"); idx >= 0 {
		data = data[idx+len(";base64,"):]
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("decode base64 image: %w", err)
	}
	return raw, nil
}

package recognition

import "context"

// RecognitionService defines the detect flow: identify the face in a
// frame and feed the hit into attendance recording.
type RecognitionService interface {
	Detect(ctx context.Context, req DetectRequest) (DetectResponse, error)
}

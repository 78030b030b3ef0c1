package recognition

import "errors"

// Recognition domain errors
var (
	// ErrNoFaceMatch means the face service found no enrolled match.
	ErrNoFaceMatch = errors.New("no matching face found")

	// ErrFaceServiceUnavailable wraps transport failures against the
	// matching service.
	ErrFaceServiceUnavailable = errors.New("face recognition service unavailable")

	// ErrInvalidImage rejects payloads that do not decode to an image.
	ErrInvalidImage = errors.New("image payload could not be decoded")
)

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/recognition"
	"github.com/liggey-sinaa/attendance-backend-go/internal/handler/http/response"
)

type DetectHandler interface {
	Detect(w http.ResponseWriter, r *http.Request)
}

type detectHandlerImpl struct {
	recognitionService recognition.RecognitionService
}

func NewDetectHandler(recognitionService recognition.RecognitionService) DetectHandler {
	return &detectHandlerImpl{
		recognitionService: recognitionService,
	}
}

// writeScanResult emits the raw scan-result shape the kiosk clients
// consume, outside the standard response envelope.
func writeScanResult(w http.ResponseWriter, statusCode int, resp recognition.DetectResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// Detect implements DetectHandler.
func (h *detectHandlerImpl) Detect(w http.ResponseWriter, r *http.Request) {
	var req recognition.DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeScanResult(w, http.StatusBadRequest, recognition.DetectResponse{
			Status:  "error",
			Message: "Aucune image fournie",
		})
		return
	}

	resp, err := h.recognitionService.Detect(r.Context(), req)
	switch {
	case err == nil:
		writeScanResult(w, http.StatusOK, resp)
	case errors.Is(err, recognition.ErrNoFaceMatch):
		writeScanResult(w, http.StatusBadRequest, recognition.DetectResponse{
			Status:  "error",
			Message: "Aucun visage reconnu",
		})
	case errors.Is(err, recognition.ErrInvalidImage):
		writeScanResult(w, http.StatusBadRequest, recognition.DetectResponse{
			Status:  "error",
			Message: "Image invalide",
		})
	case errors.Is(err, recognition.ErrFaceServiceUnavailable):
		writeScanResult(w, http.StatusServiceUnavailable, recognition.DetectResponse{
			Status:  "error",
			Message: "Service de reconnaissance indisponible",
		})
	default:
		response.HandleError(w, err)
	}
}

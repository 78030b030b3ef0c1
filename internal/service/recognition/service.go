package recognition

import (
	"context"
	"fmt"

	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/attendance"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/recognition"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/faceclient"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/images"
)

type RecognitionServiceImpl struct {
	faceClient        *faceclient.Client
	attendanceService attendance.AttendanceService

	// adminMatricule is exempt from attendance recording; a scan of
	// this face grants console access instead.
	adminMatricule string
}

func NewRecognitionService(
	faceClient *faceclient.Client,
	attendanceService attendance.AttendanceService,
	adminMatricule string,
) recognition.RecognitionService {
	return &RecognitionServiceImpl{
		faceClient:        faceClient,
		attendanceService: attendanceService,
		adminMatricule:    adminMatricule,
	}
}

// Detect implements recognition.RecognitionService. The frame is
// re-encoded to the platform's bounded size before submission, the
// matching service identifies the employee, and a successful match
// feeds straight into attendance recording.
func (s *RecognitionServiceImpl) Detect(ctx context.Context, req recognition.DetectRequest) (recognition.DetectResponse, error) {
	if err := req.Validate(); err != nil {
		return recognition.DetectResponse{}, err
	}

	normalized, err := images.NormalizeFrame(req.Image, req.Platform)
	if err != nil {
		return recognition.DetectResponse{}, fmt.Errorf("%w: %v", recognition.ErrInvalidImage, err)
	}

	match, err := s.faceClient.Identify(ctx, normalized)
	if err != nil {
		return recognition.DetectResponse{}, fmt.Errorf("%w: %v", recognition.ErrFaceServiceUnavailable, err)
	}
	if match == nil {
		return recognition.DetectResponse{}, recognition.ErrNoFaceMatch
	}

	fullName := match.Prenom + " " + match.Nom
	if match.Matricule == s.adminMatricule {
		return recognition.DetectResponse{
			Status:  attendance.ScanStatusSuccess,
			Message: fmt.Sprintf("Bonjour Administrateur %s. Accès autorisé.", fullName),
			Data: &recognition.DetectData{
				Matricule:   match.Matricule,
				NomComplet:  fullName,
				Departement: match.Departement,
				IsAdmin:     true,
			},
		}, nil
	}

	result, err := s.attendanceService.RecordScan(ctx, match.Matricule, fullName, match.Departement)
	if err != nil {
		return recognition.DetectResponse{}, err
	}

	return recognition.DetectResponse{
		Status:  result.Status,
		Action:  result.Action,
		Message: result.Message,
		Data: &recognition.DetectData{
			Matricule:   match.Matricule,
			NomComplet:  fullName,
			Departement: match.Departement,
		},
	}, nil
}

package employee

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/employee"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/faceclient"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/storage"
)

// allowedPhotoExtensions are the reference photo formats the matching
// service accepts.
var allowedPhotoExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

type EmployeeServiceImpl struct {
	employee.EmployeeRepository

	storage    storage.FileStorage
	faceClient *faceclient.Client
	logger     *slog.Logger
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	fileStorage storage.FileStorage,
	faceClient *faceclient.Client,
	logger *slog.Logger,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		storage:            fileStorage,
		faceClient:         faceClient,
		logger:             logger,
	}
}

// AddEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AddEmployee(ctx context.Context, req employee.AddEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByMatricule(ctx, req.Matricule); err == nil {
		return employee.EmployeeResponse{}, employee.ErrMatriculeExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check matricule: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(req.PhotoHeader.Filename))
	if _, ok := allowedPhotoExtensions[ext]; !ok {
		return employee.EmployeeResponse{}, employee.ErrInvalidPhotoType
	}

	photoBytes, err := io.ReadAll(req.Photo)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to read reference photo: %w", err)
	}

	photoPath := fmt.Sprintf("%s_%s%s", req.Matricule, uuid.New().String(), ext)
	storedPath, err := s.storage.Upload(ctx, bytes.NewReader(photoBytes), photoPath)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to store reference photo: %w", err)
	}

	newEmployee := employee.Employee{
		Matricule:   req.Matricule,
		Nom:         req.Nom,
		Prenom:      req.Prenom,
		Departement: req.Departement,
		ImagePath:   &storedPath,
	}
	if req.Telephone != "" {
		newEmployee.Telephone = &req.Telephone
	}
	if req.LieuHabitation != "" {
		newEmployee.LieuHabitation = &req.LieuHabitation
	}

	created, err := s.EmployeeRepository.Create(ctx, newEmployee)
	if err != nil {
		if delErr := s.storage.Delete(ctx, storedPath); delErr != nil {
			s.logger.Warn("failed to clean up orphaned photo",
				slog.String("path", storedPath), slog.Any("error", delErr))
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	// Enrollment failure is surfaced in logs but does not roll back the
	// roster entry; the photo stays on disk for a later re-enroll.
	encoded := base64.StdEncoding.EncodeToString(photoBytes)
	if err := s.faceClient.Enroll(ctx, created.Matricule, encoded); err != nil {
		s.logger.Warn("face enrollment failed",
			slog.String("matricule", created.Matricule), slog.Any("error", err))
	}

	return toResponse(created), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, error) {
	list, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	out := make([]employee.EmployeeResponse, 0, len(list))
	for _, emp := range list {
		out = append(out, toResponse(emp))
	}
	return out, nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, matricule string) error {
	emp, err := s.EmployeeRepository.GetByMatricule(ctx, matricule)
	if err != nil {
		return err
	}

	if err := s.EmployeeRepository.Delete(ctx, matricule); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if emp.ImagePath != nil {
		if err := s.storage.Delete(ctx, *emp.ImagePath); err != nil {
			s.logger.Warn("failed to delete reference photo",
				slog.String("matricule", matricule), slog.Any("error", err))
		}
	}
	if err := s.faceClient.Remove(ctx, matricule); err != nil {
		s.logger.Warn("failed to remove face enrollment",
			slog.String("matricule", matricule), slog.Any("error", err))
	}
	return nil
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		Matricule:      emp.Matricule,
		Nom:            emp.Nom,
		Prenom:         emp.Prenom,
		Telephone:      emp.Telephone,
		LieuHabitation: emp.LieuHabitation,
		Departement:    emp.Departement,
		ImagePath:      emp.ImagePath,
	}
}

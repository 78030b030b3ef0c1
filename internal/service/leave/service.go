package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/employee"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepo,
		EmployeeRepository: employeeRepo,
	}
}

// CreateRecord implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateRecord(ctx context.Context, req leave.CreateRecordRequest) (leave.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RecordResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByMatricule(ctx, req.Matricule)
	if err != nil {
		return leave.RecordResponse{}, err
	}

	debut, _ := time.Parse("2006-01-02", req.DateDebut)
	fin, _ := time.Parse("2006-01-02", req.DateFin)

	created, err := s.LeaveRepository.Create(ctx, leave.Record{
		Matricule:   emp.Matricule,
		NomComplet:  emp.FullName(),
		Departement: emp.Departement,
		Kind:        req.Kind,
		Motif:       req.Motif,
		DateDebut:   debut,
		DateFin:     fin,
	})
	if err != nil {
		return leave.RecordResponse{}, fmt.Errorf("failed to create leave record: %w", err)
	}
	return toRecordResponse(created), nil
}

// ListRecords implements leave.LeaveService.
func (s *LeaveServiceImpl) ListRecords(ctx context.Context, filter leave.ListFilter) ([]leave.RecordResponse, error) {
	records, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}

	out := make([]leave.RecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toRecordResponse(rec))
	}
	return out, nil
}

// DeleteRecord implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if _, err := s.LeaveRepository.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.LeaveRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete leave record: %w", err)
	}
	return nil
}

func toRecordResponse(rec leave.Record) leave.RecordResponse {
	return leave.RecordResponse{
		ID:          rec.ID,
		Matricule:   rec.Matricule,
		NomComplet:  rec.NomComplet,
		Departement: rec.Departement,
		Kind:        rec.Kind,
		Motif:       rec.Motif,
		DateDebut:   rec.DateDebut.Format("2006-01-02"),
		DateFin:     rec.DateFin.Format("2006-01-02"),
	}
}

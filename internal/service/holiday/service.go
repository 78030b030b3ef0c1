package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{HolidayRepository: holidayRepo}
}

// AddHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) AddHoliday(ctx context.Context, req holiday.AddHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	debut, _ := time.Parse("2006-01-02", req.DateDebut)
	fin, _ := time.Parse("2006-01-02", req.DateFin)

	created, err := s.HolidayRepository.Create(ctx, holiday.Holiday{
		Description: req.Description,
		DateDebut:   debut,
		DateFin:     fin,
	})
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return toResponse(created), nil
}

// ListHolidays implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListHolidays(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	out := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, toResponse(h))
	}
	return out, nil
}

// DeleteHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.HolidayRepository.Delete(ctx, id)
}

func toResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          h.ID,
		Description: h.Description,
		DateDebut:   h.DateDebut.Format("2006-01-02"),
		DateFin:     h.DateFin.Format("2006-01-02"),
	}
}

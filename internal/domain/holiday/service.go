package holiday

import "context"

// HolidayService defines holiday calendar management
type HolidayService interface {
	AddHoliday(ctx context.Context, req AddHolidayRequest) (HolidayResponse, error)
	ListHolidays(ctx context.Context, year int) ([]HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
}

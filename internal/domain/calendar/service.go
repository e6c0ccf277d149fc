package calendar

import "context"

// Service manages the company holiday calendar.
type Service interface {
	// CreateHoliday declares a holiday for the caller's company.
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)

	// ListHolidays lists the caller's company holidays inside [from, to],
	// both YYYY-MM-DD.
	ListHolidays(ctx context.Context, from, to string) ([]HolidayResponse, error)
}

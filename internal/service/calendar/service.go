package calendar

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/calendar"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/validator"
)

type CalendarServiceImpl struct {
	holidayRepo calendar.HolidayRepository
}

func NewCalendarService(holidayRepo calendar.HolidayRepository) calendar.Service {
	return &CalendarServiceImpl{
		holidayRepo: holidayRepo,
	}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func (s *CalendarServiceImpl) getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// CreateHoliday implements calendar.Service.
func (s *CalendarServiceImpl) CreateHoliday(ctx context.Context, req calendar.CreateHolidayRequest) (calendar.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.HolidayResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return calendar.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	created, err := s.holidayRepo.Create(ctx, calendar.Holiday{
		CompanyID: companyID,
		Date:      date,
		Name:      req.Name,
	})
	if err != nil {
		return calendar.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return mapHolidayToResponse(created), nil
}

// ListHolidays implements calendar.Service.
func (s *CalendarServiceImpl) ListHolidays(ctx context.Context, from, to string) ([]calendar.HolidayResponse, error) {
	fromDate, ok := validator.IsValidDate(from)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "from", Message: "from must be in YYYY-MM-DD format"}}
	}
	toDate, ok := validator.IsValidDate(to)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "to", Message: "to must be in YYYY-MM-DD format"}}
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	holidays, err := s.holidayRepo.ListByRange(ctx, companyID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]calendar.HolidayResponse, 0, len(holidays))
	for _, holiday := range holidays {
		responses = append(responses, mapHolidayToResponse(holiday))
	}

	return responses, nil
}

func mapHolidayToResponse(h calendar.Holiday) calendar.HolidayResponse {
	return calendar.HolidayResponse{
		ID:   h.ID,
		Date: h.Date.Format("2006-01-02"),
		Name: h.Name,
	}
}

package timesheet

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/calendar"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/timesheet"
)

type TimesheetServiceImpl struct {
	holidayRepo    calendar.HolidayRepository
	leaveRepo      calendar.LeaveIntervalRepository
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	shiftResolver  shift.Resolver
}

func NewTimesheetService(
	holidayRepo calendar.HolidayRepository,
	leaveRepo calendar.LeaveIntervalRepository,
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	shiftResolver shift.Resolver,
) timesheet.Service {
	return &TimesheetServiceImpl{
		holidayRepo:    holidayRepo,
		leaveRepo:      leaveRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		shiftResolver:  shiftResolver,
	}
}

// PeriodDates lists every calendar date of one month, in order.
func PeriodDates(month, year int) []time.Time {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	dates := make([]time.Time, 0, 31)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// periodInputs is everything the aggregator needs for one employee-period,
// fetched up front so the providers stay pure.
type periodInputs struct {
	holidays []calendar.Holiday
	leaves   []calendar.LeaveInterval
	index    *attendance.Index
	rules    map[string]shift.Rule
}

// loadInputs fetches calendar data (holidays + approved leave) and attendance
// records concurrently. The two sources are independent; both must complete
// before aggregation starts.
func (s *TimesheetServiceImpl) loadInputs(ctx context.Context, employeeID, companyID string, dates []time.Time) (periodInputs, error) {
	if len(dates) == 0 {
		return periodInputs{}, timesheet.ErrInvalidPeriod
	}
	from, to := dates[0], dates[len(dates)-1]

	var (
		wg          sync.WaitGroup
		holidays    []calendar.Holiday
		leaves      []calendar.LeaveInterval
		records     []attendance.Record
		calendarErr error
		recordsErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		holidays, err = s.holidayRepo.ListByRange(ctx, companyID, from, to)
		if err != nil {
			calendarErr = fmt.Errorf("failed to list holidays: %w", err)
			return
		}
		leaves, err = s.leaveRepo.ListApprovedByEmployee(ctx, employeeID, from, to, companyID)
		if err != nil {
			calendarErr = fmt.Errorf("failed to list approved leave: %w", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		records, err = s.attendanceRepo.ListByEmployeeAndRange(ctx, employeeID, from, to, companyID)
		if err != nil {
			recordsErr = fmt.Errorf("failed to list attendance records: %w", err)
		}
	}()
	wg.Wait()

	if calendarErr != nil {
		return periodInputs{}, calendarErr
	}
	if recordsErr != nil {
		return periodInputs{}, recordsErr
	}

	rules := make(map[string]shift.Rule, len(dates))
	for _, date := range dates {
		rule, err := s.shiftResolver.Resolve(ctx, employeeID, date, companyID)
		if err != nil {
			return periodInputs{}, fmt.Errorf("failed to resolve shift rule for %s: %w", attendance.DateKey(date), err)
		}
		rules[attendance.DateKey(date)] = rule
	}

	return periodInputs{
		holidays: holidays,
		leaves:   leaves,
		index:    attendance.BuildIndex(records),
		rules:    rules,
	}, nil
}

func (in periodInputs) providers() Providers {
	return Providers{
		CalendarDay: func(date time.Time) calendar.Day {
			rule := in.rules[attendance.DateKey(date)]
			day := calendar.ClassifyDay(date, in.holidays, rule.WeeklyOffDays, in.leaves)
			day.ActiveRuleName = rule.Name
			return day
		},
		Attendance: func(date time.Time) *attendance.Record {
			return in.index.Find(date)
		},
		ShiftRule: func(date time.Time) shift.Rule {
			return in.rules[attendance.DateKey(date)]
		},
	}
}

// BuildEmployeePeriodSummary implements timesheet.Service.
func (s *TimesheetServiceImpl) BuildEmployeePeriodSummary(ctx context.Context, employeeID string, companyID string, req timesheet.PeriodRequest) (timesheet.PeriodSummary, error) {
	if err := req.Validate(); err != nil {
		return timesheet.PeriodSummary{}, err
	}

	dates := PeriodDates(req.Month, req.Year)
	inputs, err := s.loadInputs(ctx, employeeID, companyID, dates)
	if err != nil {
		return timesheet.PeriodSummary{}, err
	}

	summary := AggregatePeriod(dates, inputs.providers(), time.Now().UTC())
	summary.DataWarnings = append(summary.DataWarnings, inputs.index.Warnings...)
	return summary, nil
}

// GetMyDailyStatuses implements timesheet.Service.
func (s *TimesheetServiceImpl) GetMyDailyStatuses(ctx context.Context, req timesheet.PeriodRequest) (timesheet.DailyStatusesResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.DailyStatusesResponse{}, err
	}

	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return timesheet.DailyStatusesResponse{}, err
	}

	dates := PeriodDates(req.Month, req.Year)
	inputs, err := s.loadInputs(ctx, employeeID, companyID, dates)
	if err != nil {
		return timesheet.DailyStatusesResponse{}, err
	}

	providers := inputs.providers()
	today := time.Now().UTC()

	days := make([]timesheet.DailyStatusResponse, 0, len(dates))
	for _, date := range dates {
		resolved := ResolveDayStatus(providers.CalendarDay(date), providers.Attendance(date), providers.ShiftRule(date), today)
		days = append(days, mapResolvedToResponse(resolved))
	}

	return timesheet.DailyStatusesResponse{
		EmployeeID:  employeeID,
		PeriodStart: attendance.DateKey(dates[0]),
		PeriodEnd:   attendance.DateKey(dates[len(dates)-1]),
		Days:        days,
	}, nil
}

// GetMyPeriodSummary implements timesheet.Service.
func (s *TimesheetServiceImpl) GetMyPeriodSummary(ctx context.Context, req timesheet.PeriodRequest) (timesheet.PeriodSummaryResponse, error) {
	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return timesheet.PeriodSummaryResponse{}, err
	}

	summary, err := s.BuildEmployeePeriodSummary(ctx, employeeID, companyID, req)
	if err != nil {
		return timesheet.PeriodSummaryResponse{}, err
	}

	return mapSummaryToResponse(employeeID, summary), nil
}

// GetEmployeePeriodSummary implements timesheet.Service.
func (s *TimesheetServiceImpl) GetEmployeePeriodSummary(ctx context.Context, employeeID string, req timesheet.PeriodRequest) (timesheet.PeriodSummaryResponse, error) {
	_, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return timesheet.PeriodSummaryResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID, companyID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return timesheet.PeriodSummaryResponse{}, employee.ErrEmployeeNotFound
		}
		return timesheet.PeriodSummaryResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	summary, err := s.BuildEmployeePeriodSummary(ctx, employeeID, companyID, req)
	if err != nil {
		return timesheet.PeriodSummaryResponse{}, err
	}

	return mapSummaryToResponse(employeeID, summary), nil
}

// claimsFromContext extracts employee_id and company_id from JWT claims.
func claimsFromContext(ctx context.Context) (employeeID string, companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok = claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, companyID, nil
}

func mapResolvedToResponse(r timesheet.ResolvedDayStatus) timesheet.DailyStatusResponse {
	resp := timesheet.DailyStatusResponse{
		Date:             attendance.DateKey(r.Date),
		Status:           string(r.Status),
		HolidayName:      r.HolidayName,
		IsLate:           r.IsLate,
		LateMinutes:      r.LateMinutes,
		IsEarlyDeparture: r.IsEarlyDeparture,
		EarlyExitMinutes: r.EarlyExitMinutes,
		OvertimeMinutes:  r.OvertimeMinutes,
	}

	if rec := r.SourceRecord; rec != nil {
		resp.ClockInTime = timePtrToString(rec.ClockIn)
		resp.ClockOutTime = timePtrToString(rec.ClockOut)
		resp.WorkedMinutes = rec.TotalWorkedMinutes
		resp.WorkMode = rec.WorkMode
	}

	return resp
}

func mapSummaryToResponse(employeeID string, s timesheet.PeriodSummary) timesheet.PeriodSummaryResponse {
	return timesheet.PeriodSummaryResponse{
		EmployeeID:          employeeID,
		PeriodStart:         attendance.DateKey(s.PeriodStart),
		PeriodEnd:           attendance.DateKey(s.PeriodEnd),
		TotalDays:           s.TotalDays,
		WorkingDays:         s.WorkingDays,
		Weekends:            s.Weekends,
		Holidays:            s.Holidays,
		Leaves:              s.Leaves,
		PresentDays:         s.PresentDays,
		AbsentDays:          s.AbsentDays,
		LateDays:            s.LateDays,
		HalfDays:            s.HalfDays,
		IncompleteDays:      s.IncompleteDays,
		TotalWorkedMinutes:  s.TotalWorkedMinutes,
		TotalBreakMinutes:   s.TotalBreakMinutes,
		OvertimeHours:       s.OvertimeHours,
		AverageHoursPerDay:  s.AverageHoursPerDay,
		WorkHoursPercentage: s.WorkHoursPercentage,
		DataWarnings:        s.DataWarnings,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}

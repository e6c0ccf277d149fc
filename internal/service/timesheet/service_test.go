package timesheet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/calendar"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/timesheet"
)

type fakeHolidayRepo struct {
	holidays []calendar.Holiday
	err      error
}

func (f *fakeHolidayRepo) ListByRange(_ context.Context, _ string, _, _ time.Time) ([]calendar.Holiday, error) {
	return f.holidays, f.err
}

func (f *fakeHolidayRepo) Create(_ context.Context, h calendar.Holiday) (calendar.Holiday, error) {
	return h, nil
}

type fakeLeaveRepo struct {
	leaves []calendar.LeaveInterval
	err    error
}

func (f *fakeLeaveRepo) ListApprovedByEmployee(_ context.Context, _ string, _, _ time.Time, _ string) ([]calendar.LeaveInterval, error) {
	return f.leaves, f.err
}

type fakeAttendanceRepo struct {
	records []attendance.Record
	err     error
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(_ context.Context, _ string, _, _ time.Time, _ string) ([]attendance.Record, error) {
	return f.records, f.err
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string, _ string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetActiveByCompanyID(_ context.Context, _ string) ([]employee.Employee, error) {
	return nil, nil
}

type fakeShiftResolver struct {
	rule shift.Rule
	err  error
}

func (f *fakeShiftResolver) Resolve(_ context.Context, _ string, _ time.Time, _ string) (shift.Rule, error) {
	return f.rule, f.err
}

type serviceFixture struct {
	holidayRepo    *fakeHolidayRepo
	leaveRepo      *fakeLeaveRepo
	attendanceRepo *fakeAttendanceRepo
	employeeRepo   *fakeEmployeeRepo
}

func newServiceFixture() *serviceFixture {
	return &serviceFixture{
		holidayRepo:    &fakeHolidayRepo{},
		leaveRepo:      &fakeLeaveRepo{},
		attendanceRepo: &fakeAttendanceRepo{},
		employeeRepo:   &fakeEmployeeRepo{employees: map[string]employee.Employee{}},
	}
}

func (f *serviceFixture) service() timesheet.Service {
	return NewTimesheetService(
		f.holidayRepo,
		f.leaveRepo,
		f.attendanceRepo,
		f.employeeRepo,
		&fakeShiftResolver{rule: officeRule()},
	)
}

func serviceAuthedContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]any{
		"employee_id": "emp-1",
		"company_id":  "comp-1",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// January 2024 under officeRule: 8 weekend days, 23 working days, all past.
var januaryPeriod = timesheet.PeriodRequest{Month: 1, Year: 2024}

func TestTimesheetService_BuildEmployeePeriodSummary_SurfacesIndexWarnings(t *testing.T) {
	jan15 := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	fix := newServiceFixture()
	fix.attendanceRepo.records = []attendance.Record{
		*punchedRecord(jan15, 9, 0, 17, 0, 480),
		{ID: "corrected", Date: jan15, TotalWorkedMinutes: 100},
		{ID: "legacy", RawDate: "15/01/2024"},
	}

	summary, err := fix.service().BuildEmployeePeriodSummary(context.Background(), "emp-1", "comp-1", januaryPeriod)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.PresentDays)
	assert.Equal(t, 480, summary.TotalWorkedMinutes)
	require.Len(t, summary.DataWarnings, 2)
	assert.Contains(t, summary.DataWarnings[0], "duplicate attendance record for 2024-01-15")
	assert.Contains(t, summary.DataWarnings[1], `record legacy skipped`)
}

func TestTimesheetService_BuildEmployeePeriodSummary_AttendanceFetchError(t *testing.T) {
	fix := newServiceFixture()
	fix.attendanceRepo.err = errors.New("connection reset")

	_, err := fix.service().BuildEmployeePeriodSummary(context.Background(), "emp-1", "comp-1", januaryPeriod)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list attendance records")
}

func TestTimesheetService_BuildEmployeePeriodSummary_CalendarFetchError(t *testing.T) {
	fix := newServiceFixture()
	fix.holidayRepo.err = errors.New("connection reset")

	_, err := fix.service().BuildEmployeePeriodSummary(context.Background(), "emp-1", "comp-1", januaryPeriod)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list holidays")
}

func TestTimesheetService_BuildEmployeePeriodSummary_InvalidPeriod(t *testing.T) {
	fix := newServiceFixture()

	_, err := fix.service().BuildEmployeePeriodSummary(context.Background(), "emp-1", "comp-1", timesheet.PeriodRequest{Month: 13, Year: 2024})

	assert.Error(t, err)
}

func TestTimesheetService_GetMyPeriodSummary(t *testing.T) {
	jan15 := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	fix := newServiceFixture()
	fix.holidayRepo.holidays = []calendar.Holiday{
		{Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Name: "New Year"},
	}
	fix.attendanceRepo.records = []attendance.Record{*punchedRecord(jan15, 9, 0, 17, 0, 480)}

	resp, err := fix.service().GetMyPeriodSummary(serviceAuthedContext(t), januaryPeriod)

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "2024-01-01", resp.PeriodStart)
	assert.Equal(t, "2024-01-31", resp.PeriodEnd)
	assert.Equal(t, 31, resp.TotalDays)
	assert.Equal(t, 22, resp.WorkingDays)
	assert.Equal(t, 8, resp.Weekends)
	assert.Equal(t, 1, resp.Holidays)
	assert.Equal(t, 1, resp.PresentDays)
	assert.Equal(t, 21, resp.AbsentDays)
	assert.Empty(t, resp.DataWarnings)
}

func TestTimesheetService_GetMyPeriodSummary_MissingClaims(t *testing.T) {
	fix := newServiceFixture()

	_, err := fix.service().GetMyPeriodSummary(context.Background(), januaryPeriod)

	assert.Error(t, err)
}

func TestTimesheetService_GetMyDailyStatuses(t *testing.T) {
	jan15 := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	fix := newServiceFixture()
	fix.holidayRepo.holidays = []calendar.Holiday{
		{Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Name: "New Year"},
	}
	fix.attendanceRepo.records = []attendance.Record{*punchedRecord(jan15, 9, 0, 17, 0, 480)}

	resp, err := fix.service().GetMyDailyStatuses(serviceAuthedContext(t), januaryPeriod)

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	require.Len(t, resp.Days, 31)

	newYear := resp.Days[0]
	assert.Equal(t, string(timesheet.StatusHoliday), newYear.Status)
	require.NotNil(t, newYear.HolidayName)
	assert.Equal(t, "New Year", *newYear.HolidayName)

	worked := resp.Days[14]
	assert.Equal(t, "2024-01-15", worked.Date)
	assert.Equal(t, string(timesheet.StatusPresent), worked.Status)
	require.NotNil(t, worked.ClockInTime)
	assert.Equal(t, 480, worked.WorkedMinutes)
}

func TestTimesheetService_GetEmployeePeriodSummary_UnknownEmployee(t *testing.T) {
	fix := newServiceFixture()

	_, err := fix.service().GetEmployeePeriodSummary(serviceAuthedContext(t), "emp-ghost", januaryPeriod)

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestTimesheetService_GetEmployeePeriodSummary(t *testing.T) {
	jan15 := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	fix := newServiceFixture()
	fix.employeeRepo.employees["emp-2"] = employee.Employee{ID: "emp-2", CompanyID: "comp-1"}
	fix.attendanceRepo.records = []attendance.Record{*punchedRecord(jan15, 9, 0, 17, 0, 480)}

	resp, err := fix.service().GetEmployeePeriodSummary(serviceAuthedContext(t), "emp-2", januaryPeriod)

	require.NoError(t, err)
	assert.Equal(t, "emp-2", resp.EmployeeID)
	assert.Equal(t, 1, resp.PresentDays)
}

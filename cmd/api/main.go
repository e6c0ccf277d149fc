package main

import (
	"fmt"
	"net/http"

	"github.com/workpulse-hr/attendance-backend-go/internal/config"
	appHTTP "github.com/workpulse-hr/attendance-backend-go/internal/handler/http"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/cron"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/workpulse-hr/attendance-backend-go/internal/repository/postgresql"
	calendarService "github.com/workpulse-hr/attendance-backend-go/internal/service/calendar"
	reportService "github.com/workpulse-hr/attendance-backend-go/internal/service/report"
	shiftService "github.com/workpulse-hr/attendance-backend-go/internal/service/shift"
	timesheetService "github.com/workpulse-hr/attendance-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveIntervalRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRuleRepo := postgresql.NewShiftRuleRepository(db)
	shiftAssignmentRepo := postgresql.NewShiftAssignmentRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	shiftResolver := shiftService.NewRuleResolver(shiftRuleRepo, shiftAssignmentRepo)
	ruleService := shiftService.NewRuleService(db, shiftRuleRepo)
	calendarSvc := calendarService.NewCalendarService(holidayRepo)
	timesheetSvc := timesheetService.NewTimesheetService(
		holidayRepo,
		leaveRepo,
		attendanceRepo,
		employeeRepo,
		shiftResolver,
	)
	reportSvc := reportService.NewReportService(timesheetSvc, employeeRepo)

	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	shiftHandler := appHTTP.NewShiftHandler(ruleService)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		timesheetHandler,
		reportHandler,
		calendarHandler,
		shiftHandler,
	)

	if cfg.Cron.Enabled {
		scheduler := cron.NewScheduler()
		timesheetJobs := cron.NewTimesheetJobs(timesheetSvc, employeeRepo, db)
		timesheetJobs.RegisterJobs(scheduler, cfg.Cron.AuditInterval)
		scheduler.Start()
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

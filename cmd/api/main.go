package main

import (
	"fmt"
	"net/http"

	"github.com/compliance-hris/attendance-backend-go/internal/config"
	"github.com/compliance-hris/attendance-backend-go/internal/domain/leave"
	appHTTP "github.com/compliance-hris/attendance-backend-go/internal/handler/http"
	"github.com/compliance-hris/attendance-backend-go/internal/pkg/database"
	"github.com/compliance-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/compliance-hris/attendance-backend-go/internal/pkg/roster"
	"github.com/compliance-hris/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/compliance-hris/attendance-backend-go/internal/service/attendance"
	leaveService "github.com/compliance-hris/attendance-backend-go/internal/service/leave"
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

	punchRepo := postgresql.NewPunchRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	rosterClient := roster.NewClient(cfg.Roster.BaseURL, cfg.Roster.Timeout)

	attendanceSvc := attendanceService.NewAttendanceService(db, punchRepo, employeeRepo, leaveRequestRepo, holidayRepo)
	shiftSvc := attendanceService.NewShiftAttendanceService(assignmentRepo, rosterClient, punchRepo, leaveRequestRepo, holidayRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leave.KindLeave, leaveSvc)
	officialWorkHandler := appHTTP.NewLeaveHandler(leave.KindOfficialWork, leaveSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidayRepo)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		shiftHandler,
		leaveHandler,
		officialWorkHandler,
		holidayHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

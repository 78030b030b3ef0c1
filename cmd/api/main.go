package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/liggey-sinaa/attendance-backend-go/internal/config"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/attendance"
	appHTTP "github.com/liggey-sinaa/attendance-backend-go/internal/handler/http"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/database"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/faceclient"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/jwt"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/storage"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/timeutil"
	"github.com/liggey-sinaa/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/liggey-sinaa/attendance-backend-go/internal/service/attendance"
	authService "github.com/liggey-sinaa/attendance-backend-go/internal/service/auth"
	employeeService "github.com/liggey-sinaa/attendance-backend-go/internal/service/employee"
	holidayService "github.com/liggey-sinaa/attendance-backend-go/internal/service/holiday"
	leaveService "github.com/liggey-sinaa/attendance-backend-go/internal/service/leave"
	recognitionService "github.com/liggey-sinaa/attendance-backend-go/internal/service/recognition"
	reportService "github.com/liggey-sinaa/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "liggey-sinaa"),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	thresholds := attendance.CalendarContext{
		ExpectedArrivalBy:      timeutil.MustTimeOfDay(cfg.Attendance.ArrivalThreshold),
		ExpectedDepartureAfter: timeutil.MustTimeOfDay(cfg.Attendance.DepartureThreshold),
		FullDayMinutes:         cfg.Attendance.FullDayMinutes,
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	faceClient := faceclient.New(cfg.FaceService.BaseURL, cfg.FaceService.Timeout)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, holidayRepo, logger, thresholds)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, holidayRepo, logger, thresholds)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileStorage, faceClient, logger)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	authSvc := authService.NewAuthService(JWTService, cfg.Admin.Username, cfg.Admin.PasswordHash)
	recognitionSvc := recognitionService.NewRecognitionService(faceClient, attendanceSvc, cfg.Admin.Username)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Env:        cfg.App.Env,
		PhotoDir:   fileStorage.BasePath(),
		JWTService: JWTService,
		Handlers: appHTTP.Handlers{
			Auth:       appHTTP.NewAuthHandler(authSvc),
			Detect:     appHTTP.NewDetectHandler(recognitionSvc),
			Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
			Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
			Report:     appHTTP.NewReportHandler(reportSvc),
			Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
			Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		},
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

package main

import (
	"fmt"
	"net/http"

	"github.com/tracklite/attendance-backend-go/internal/config"
	appHTTP "github.com/tracklite/attendance-backend-go/internal/handler/http"
	"github.com/tracklite/attendance-backend-go/internal/pkg/database"
	"github.com/tracklite/attendance-backend-go/internal/pkg/jwt"
	"github.com/tracklite/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/tracklite/attendance-backend-go/internal/service/attendance"
	complaintService "github.com/tracklite/attendance-backend-go/internal/service/complaint"
	dashboardService "github.com/tracklite/attendance-backend-go/internal/service/dashboard"
	leaveService "github.com/tracklite/attendance-backend-go/internal/service/leave"
	notificationService "github.com/tracklite/attendance-backend-go/internal/service/notification"
	reportService "github.com/tracklite/attendance-backend-go/internal/service/report"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	complaintRepo := postgresql.NewComplaintRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	notifService := notificationService.NewNotificationService(notificationRepo)
	attService := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	lvService := leaveService.NewLeaveService(db, leaveRequestRepo, employeeRepo, notifService)
	rptService := reportService.NewReportService(attendanceRepo, employeeRepo)
	cmpService := complaintService.NewComplaintService(complaintRepo, notifService)
	dashService := dashboardService.NewDashboardService(dashboardRepo, employeeRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attService)
	leaveHandler := appHTTP.NewLeaveHandler(lvService)
	reportHandler := appHTTP.NewReportHandler(rptService)
	complaintHandler := appHTTP.NewComplaintHandler(cmpService)
	notificationHandler := appHTTP.NewNotificationHandler(notifService)
	dashboardHandler := appHTTP.NewDashboardHandler(dashService)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		leaveHandler,
		reportHandler,
		complaintHandler,
		notificationHandler,
		dashboardHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

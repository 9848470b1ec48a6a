package main

import (
	"fmt"
	"net/http"

	"github.com/wagewise-hq/payweek-backend-go/internal/config"
	"github.com/wagewise-hq/payweek-backend-go/internal/domain/annotation"
	"github.com/wagewise-hq/payweek-backend-go/internal/domain/timesheet"
	appHTTP "github.com/wagewise-hq/payweek-backend-go/internal/handler/http"
	"github.com/wagewise-hq/payweek-backend-go/internal/pkg/cron"
	"github.com/wagewise-hq/payweek-backend-go/internal/pkg/database"
	"github.com/wagewise-hq/payweek-backend-go/internal/pkg/jwt"
	"github.com/wagewise-hq/payweek-backend-go/internal/pkg/llm"
	"github.com/wagewise-hq/payweek-backend-go/internal/repository/postgresql"
	annotationService "github.com/wagewise-hq/payweek-backend-go/internal/service/annotation"
	timesheetService "github.com/wagewise-hq/payweek-backend-go/internal/service/timesheet"
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
	punchRepo := postgresql.NewPunchRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var annotator annotation.Service
	if cfg.Annotation.Enabled {
		annotator = annotationService.NewAnnotationService(
			llm.NewOpenAIClient(cfg.Annotation.APIKey, cfg.Annotation.Model),
		)
	}

	policy := timesheet.WeekPolicy{
		ExpectedDailyMinutes:     cfg.Policy.ExpectedDailyMinutes,
		LunchDeductionMinutes:    cfg.Policy.LunchDeductionMinutes,
		ShortShiftCutoffMinutes:  cfg.Policy.ShortShiftCutoffMinutes,
		PaidBreakMinutes:         cfg.Policy.PaidBreakMinutes,
		MismatchToleranceMinutes: cfg.Policy.MismatchToleranceMinutes,
		EarliestNormalClockHour:  cfg.Policy.EarliestNormalClockHour,
		LatestNormalClockHour:    cfg.Policy.LatestNormalClockHour,
	}
	overtimePolicy := timesheetService.NewLatestFirstOvertimePolicy(cfg.Policy.WeeklyOvertimeThreshold)

	timesheetSvc := timesheetService.NewTimesheetService(
		db,
		employeeRepo,
		punchRepo,
		timesheetRepo,
		annotator,
		policy,
		overtimePolicy,
		cfg.App.Workers,
		cfg.Annotation.Timeout,
	)

	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)

	router := appHTTP.NewRouter(JWTService, timesheetHandler)

	scheduler := cron.NewScheduler()
	payweekJobs := cron.NewPayweekJobs(companyRepo, timesheetSvc)
	payweekJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

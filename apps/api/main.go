package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	echoapi "github.com/trezcool/hrms/apps/api/echo"
	"github.com/trezcool/hrms/core"
	"github.com/trezcool/hrms/core/attendance"
	"github.com/trezcool/hrms/core/employee"
	emailsvc "github.com/trezcool/hrms/services/email"
	logsvc "github.com/trezcool/hrms/services/logger"
	"github.com/trezcool/hrms/storage/database"
	mongodb "github.com/trezcool/hrms/storage/database/mongo"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}
	logger.Enable(true)

	// set up DB
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Open(ctx, conf)
	errAndDie(std, err, "connecting to database")
	defer func() {
		if err = db.Client().Disconnect(context.Background()); err != nil {
			logger.Error("closing database connection", err)
		}
	}()

	errAndDie(std, database.EnsureIndexes(ctx, db), "ensuring database indexes")

	empRepo := mongodb.NewEmployeeRepository(db)
	attRepo := mongodb.NewAttendanceRepository(db)

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	empSvc := employee.NewService(empRepo, attRepo, mailSvc, logger)
	attSvc := attendance.NewService(attRepo, empRepo, logger)

	// =========================================================================
	// Start API server

	logger.Info(fmt.Sprintf("%s initializing on %s", conf.AppName, conf.Server.Addr))
	defer logger.Info("Application stopped")

	app := echoapi.NewServer(
		&echoapi.Options{
			Conf:          conf,
			Logger:        logger,
			EmployeeSvc:   empSvc,
			AttendanceSvc: attSvc,
		},
	)
	app.Start()
}

func errAndDie(std *log.Logger, err error, msg string) {
	if err != nil {
		std.Fatalf("%s: %v", msg, err)
	}
}

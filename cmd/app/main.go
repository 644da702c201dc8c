package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"shopfloor/cmd"
	httpadapter "shopfloor/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DBConnString()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	app.TaskRunner().Start()
	defer app.TaskRunner().Stop()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		TaskQueueSize: goDotEnvIntVariable("TASK_QUEUE_SIZE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateOpenShiftCommandHandler(),
		app.CreateStartOrderCommandHandler(),
		app.CreateAdvanceOrderCommandHandler(),
		app.CreateAbortOrderCommandHandler(),
		app.CreateForceStopOrderCommandHandler(),
		app.CreateHoldOrderCommandHandler(),
		app.CreateResumeOrderCommandHandler(),
		app.CreateCloseShiftCommandHandler(),
		app.CreateFileReportCommandHandler(),
		app.CreateResolveReportCommandHandler(),
		app.CreateGetOpenReportsQueryHandler(),
		app.CreateGetShiftSummaryQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/visionyy32/Final-sub001/cmd"
	"github.com/visionyy32/Final-sub001/internal/adapters/out/postgres/notificationrepo"
	"github.com/visionyy32/Final-sub001/internal/adapters/out/postgres/parcelrepo"
	"github.com/visionyy32/Final-sub001/internal/adapters/out/postgres/userrepo"
	"github.com/visionyy32/Final-sub001/internal/core/application/payments"
	"github.com/visionyy32/Final-sub001/internal/core/application/workingset"
	"github.com/visionyy32/Final-sub001/internal/jobs"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	flow, err := app.CreatePaymentFlow()
	if err != nil {
		log.Fatalf("Failed to create payment flow: %v", err)
	}
	defer flow.Stop()

	dispatcherSet := app.CreateDispatcherWorkingSet()
	defer dispatcherSet.Stop()

	customerSets := app.CreateCustomerWorkingSets()
	defer customerSets.Stop()

	jobManager := app.CreateJobManager([]jobs.WorkingSetTarget{dispatcherSet, customerSets})
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, flow, dispatcherSet, customerSets, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		MpesaGatewayBaseURL: goDotEnvVariable("MPESA_GATEWAY_BASE_URL"),
		JWTSecret:           goDotEnvVariable("JWT_SECRET"),
		PaymentPollInterval: durationEnv("PAYMENT_POLL_INTERVAL"),
		PaymentMaxPolls:     intEnv("PAYMENT_MAX_POLLS"),
		PaymentCloseDelay:   durationEnv("PAYMENT_CLOSE_DELAY"),
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

// durationEnv parses an optional duration variable ("10s", "2m").
// Empty or malformed values fall back to the payment flow defaults.
func durationEnv(key string) time.Duration {
	value, err := time.ParseDuration(goDotEnvVariable(key))
	if err != nil {
		return 0
	}
	return value
}

func intEnv(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		return 0
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&userrepo.UserDTO{},
		&notificationrepo.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(
	app *cmd.CompositionRoot,
	flow *payments.Flow,
	dispatcherSet *workingset.WorkingSet,
	customerSets *workingset.Registry,
	port string,
) {
	e := echo.New()

	auth, err := app.CreateAuthMiddleware()
	if err != nil {
		log.Fatalf("Failed to create auth middleware: %v", err)
	}

	server := app.CreateHTTPServer(flow, dispatcherSet, customerSets)
	server.RegisterRoutes(e, auth)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"shipping/cmd"
	httpadapter "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/postgres/paymentrepo"
	"shipping/internal/adapters/out/postgres/raterepo"
	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/adapters/out/postgres/statusrepo"
	"shipping/internal/adapters/out/postgres/userrepo"
	"shipping/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)
	defer app.Close()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:        goDotEnvVariable("KAFKA_HOST"),
		KafkaStatusTopic: goDotEnvVariable("KAFKA_STATUS_TOPIC"),
		RedisAddr:        goDotEnvVariable("REDIS_ADDR"),
		NotifierBaseURL:  goDotEnvVariable("NOTIFIER_BASE_URL"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	createDbIfNotExists(configs)

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns unique violations into gorm.ErrDuplicatedKey,
	// which the repositories rely on.
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&statusrepo.StatusDTO{},
		&paymentrepo.PaymentDTO{},
		&raterepo.RateDTO{},
		&userrepo.UserDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err = raterepo.SeedDefaultRates(context.Background(), gormDB); err != nil {
		log.Fatalf("Failed to seed rates: %v", err)
	}

	return gormDB
}

func createDbIfNotExists(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		if _, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", configs.DBName)); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateUpdateShipmentCommandHandler(),
		app.CreateDeleteShipmentCommandHandler(),
		app.CreateAssignAgentCommandHandler(),
		app.CreateRescheduleShipmentCommandHandler(),
		app.CreateAppendStatusCommandHandler(),
		app.CreateRetractStatusCommandHandler(),
		app.CreateCreatePaymentCommandHandler(),
		app.CreateCompleteCODPaymentCommandHandler(),
		app.CreateGetShipmentByIDQueryHandler(),
		app.CreateListShipmentsQueryHandler(),
		app.CreateGetPaymentByIDQueryHandler(),
		app.CreateListPaymentsQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	swagger, err := servers.GetSwagger()
	if err != nil {
		log.Fatalf("Failed to load OpenAPI spec: %v", err)
	}
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, swagger)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.json")))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

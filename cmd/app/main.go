package main

import (
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"
	"strconv"
	"time"

	"foodbridge/cmd"
	httpadapter "foodbridge/internal/adapters/in/http"
	"foodbridge/internal/adapters/out/postgres/camprepo"
	"foodbridge/internal/adapters/out/postgres/courierrepo"
	"foodbridge/internal/adapters/out/postgres/donationrepo"
	"foodbridge/internal/adapters/out/postgres/orgrepo"
	"foodbridge/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	migrateDatabase(db)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateReleaseExpiredPickupsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		ExpiryWindow:    durationEnv("PICKUP_EXPIRY_WINDOW", 30*time.Minute),
		CourierCapacity: intEnv("COURIER_CAPACITY", 10),
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

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s value %q: %v", key, raw, err)
	}
	return parsed
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s value %q: %v", key, raw, err)
	}
	return parsed
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&donationrepo.DonationDTO{},
		&courierrepo.CourierDTO{},
		&courierrepo.CourierRegistrationDTO{},
		&camprepo.CampDTO{},
		&orgrepo.OrganizationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(stdhttp.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	server := httpadapter.NewServer(
		app.CreateCreateDonationCommandHandler(),
		app.CreateAcceptDonationCommandHandler(),
		app.CreateCollectDonationCommandHandler(),
		app.CreateDeliverDonationsCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateRateDonationCommandHandler(),
		app.CreateCreateCourierCommandHandler(),
		app.CreateUpdateCourierLocationCommandHandler(),
		app.CreateRegisterCourierCommandHandler(),
		app.CreateCompleteCampCommandHandler(),
		app.CreateGetAvailableDonationsQueryHandler(),
		app.CreateGetCourierPickupsQueryHandler(),
		app.CreateGetDonationsToVerifyQueryHandler(),
		app.CreateGetLeaderboardQueryHandler(),
		app.CreateGetNearestCampQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

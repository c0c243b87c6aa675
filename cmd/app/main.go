package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"glassgo/cmd"
	"glassgo/internal/adapters/out/kafka"
	"glassgo/internal/core/ports"
	"glassgo/internal/db"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := db.NewGormDB(configs.PostgresDSN(), configs.MigrationsDir)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	var extraHandlers []ports.EventHandler
	if configs.KafkaHost != "" {
		publisher, kafkaErr := kafka.NewPublisher(
			[]string{configs.KafkaHost}, configs.KafkaDeliveryEventsTopic, logger)
		if kafkaErr != nil {
			// Messaging is best-effort; run without it rather than refusing to start.
			logger.Error("Kafka publisher unavailable", "error", kafkaErr)
		} else {
			defer publisher.Close()
			extraHandlers = append(extraHandlers, publisher)
		}
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger, extraHandlers...)

	jobManager := app.CreateJobManager(configs.MonitoringStaleAfter)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                 goDotEnvVariable("HTTP_PORT"),
		DBHost:                   goDotEnvVariable("DB_HOST"),
		DBPort:                   goDotEnvVariable("DB_PORT"),
		DBUser:                   goDotEnvVariable("DB_USER"),
		DBPassword:               goDotEnvVariable("DB_PASSWORD"),
		DBName:                   goDotEnvVariable("DB_NAME"),
		DBSslMode:                goDotEnvVariable("DB_SSLMODE"),
		MigrationsDir:            goDotEnvVariable("MIGRATIONS_DIR"),
		KafkaHost:                goDotEnvVariable("KAFKA_HOST"),
		KafkaDeliveryEventsTopic: goDotEnvVariable("KAFKA_DELIVERY_EVENTS_TOPIC"),
		TwilioAccountSID:         goDotEnvVariable("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:          goDotEnvVariable("TWILIO_AUTH_TOKEN"),
		TwilioDefaultPhone:       goDotEnvVariable("TWILIO_DEFAULT_PHONE"),
		MonitoringStaleAfter:     goDotEnvDuration("MONITORING_STALE_AFTER", 15*time.Minute),
	}
	if config.MigrationsDir == "" {
		config.MigrationsDir = "migrations"
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

func goDotEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration for %s: %v", key, err)
	}
	return parsed
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

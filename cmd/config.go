package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort                 string
	DBHost                   string
	DBPort                   string
	DBUser                   string
	DBPassword               string
	DBName                   string
	DBSslMode                string
	MigrationsDir            string
	KafkaHost                string
	KafkaDeliveryEventsTopic string
	TwilioAccountSID         string
	TwilioAuthToken          string
	TwilioDefaultPhone       string
	MonitoringStaleAfter     time.Duration
}

// PostgresDSN assembles the connection string for the configured database.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

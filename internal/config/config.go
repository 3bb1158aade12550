package config

import (
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DynamoConfig struct {
	Region            string
	Endpoint          string
	QuotesTable       string
	LeadsTable        string
	AppointmentsTable string
}

type AutomationConfig struct {
	LeadWebhookURL        string
	QuoteWebhookURL       string
	AppointmentWebhookURL string
	MockMode              bool
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	Dynamo      DynamoConfig
	Automation  AutomationConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		Dynamo: DynamoConfig{
			Region:            v.GetString("AWS_REGION"),
			Endpoint:          v.GetString("DYNAMODB_ENDPOINT"),
			QuotesTable:       v.GetString("DYNAMODB_QUOTES_TABLE"),
			LeadsTable:        v.GetString("DYNAMODB_LEADS_TABLE"),
			AppointmentsTable: v.GetString("DYNAMODB_APPOINTMENTS_TABLE"),
		},
		Automation: AutomationConfig{
			LeadWebhookURL:        v.GetString("ZAPIER_LEAD_WEBHOOK_URL"),
			QuoteWebhookURL:       v.GetString("ZAPIER_QUOTE_WEBHOOK_URL"),
			AppointmentWebhookURL: v.GetString("ZAPIER_APPOINTMENT_WEBHOOK_URL"),
			MockMode:              v.GetBool("ZAPIER_MOCK_MODE"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.Dynamo.Region == "" {
		cfg.Dynamo.Region = "us-east-1"
	}
	if cfg.Dynamo.QuotesTable == "" {
		cfg.Dynamo.QuotesTable = "quotes"
	}
	if cfg.Dynamo.LeadsTable == "" {
		cfg.Dynamo.LeadsTable = "leads"
	}
	if cfg.Dynamo.AppointmentsTable == "" {
		cfg.Dynamo.AppointmentsTable = "appointments"
	}
	// No webhook URLs configured means the relay runs in mock mode; local
	// and CI environments never post to Zapier by accident.
	if cfg.Automation.LeadWebhookURL == "" && cfg.Automation.QuoteWebhookURL == "" && cfg.Automation.AppointmentWebhookURL == "" {
		cfg.Automation.MockMode = true
	}

	return cfg, nil
}

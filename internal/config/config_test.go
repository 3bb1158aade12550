package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Environment != "development" {
		t.Fatalf("unexpected environment: %q", cfg.Environment)
	}
	if cfg.HTTP.Port != 8080 {
		t.Fatalf("unexpected port: %d", cfg.HTTP.Port)
	}
	if cfg.Dynamo.QuotesTable != "quotes" || cfg.Dynamo.LeadsTable != "leads" || cfg.Dynamo.AppointmentsTable != "appointments" {
		t.Fatalf("unexpected table defaults: %+v", cfg.Dynamo)
	}
	if !cfg.Automation.MockMode {
		t.Fatalf("expected mock mode when no webhook urls are set")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DYNAMODB_QUOTES_TABLE", "quotes-prod")
	t.Setenv("ZAPIER_LEAD_WEBHOOK_URL", "https://hooks.zapier.com/hooks/catch/1/lead")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTP.Port != 9090 {
		t.Fatalf("unexpected port: %d", cfg.HTTP.Port)
	}
	if cfg.Dynamo.QuotesTable != "quotes-prod" {
		t.Fatalf("unexpected quotes table: %q", cfg.Dynamo.QuotesTable)
	}
	if cfg.Automation.MockMode {
		t.Fatalf("expected live mode when a webhook url is set")
	}
}

package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	appconfig "major_home/internal/config"
	"major_home/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

var ErrNoWebhookForEvent = errors.New("no webhook configured for event")

const defaultTimeout = 5 * time.Second

// ZapierNotifier forwards domain events to per-event Zapier webhooks. In
// mock mode events are logged and acknowledged without any outbound call,
// so local and CI runs never hit real hooks.
type ZapierNotifier struct {
	client   *http.Client
	hooks    map[string]string
	mockMode bool
	log      zerolog.Logger
}

var _ interfaces.IAutomationNotifier = (*ZapierNotifier)(nil)

func NewZapierNotifier(cfg appconfig.AutomationConfig, log zerolog.Logger) *ZapierNotifier {
	hooks := map[string]string{}
	if cfg.LeadWebhookURL != "" {
		hooks["lead.created"] = cfg.LeadWebhookURL
	}
	if cfg.QuoteWebhookURL != "" {
		hooks["quote.created"] = cfg.QuoteWebhookURL
	}
	if cfg.AppointmentWebhookURL != "" {
		hooks["appointment.created"] = cfg.AppointmentWebhookURL
	}

	if cfg.MockMode {
		log.Info().Msg("automation relay running in mock mode")
	}

	return &ZapierNotifier{
		client:   &http.Client{Timeout: defaultTimeout},
		hooks:    hooks,
		mockMode: cfg.MockMode,
		log:      log,
	}
}

func (n *ZapierNotifier) Notify(ctx context.Context, event string, data map[string]any) error {
	if n.mockMode {
		n.log.Info().Str("event", event).Interface("data", data).Msg("mock automation event")
		return nil
	}

	url, ok := n.hooks[event]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoWebhookForEvent, event)
	}

	body, err := json.Marshal(map[string]any{
		"event":     event,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"data":      data,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("webhook %s answered %d", event, resp.StatusCode)
	}

	n.log.Debug().Str("event", event).Int("status", resp.StatusCode).Msg("automation event delivered")
	return nil
}

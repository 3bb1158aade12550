package interfaces

import "context"

// IAutomationNotifier forwards domain events (lead.created, quote.created,
// appointment.created) to external automation such as Zapier.
//
// Delivery is fire-and-forget: callers log failures and never let them fail
// the originating request. There is no retry surface here.

type IAutomationNotifier interface {
	Notify(ctx context.Context, event string, data map[string]any) error
}

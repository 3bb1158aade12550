package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"major_home/internal/domain/entities"
	"major_home/internal/domain/pricing"
	"major_home/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrQuoteNotFound  = errors.New("quote not found")
	ErrInvalidQuoteID = errors.New("invalid quote id")
)

// CreateQuoteCommand carries a validated-or-rejected calculator input plus
// the optional lead the quote belongs to.
type CreateQuoteCommand struct {
	LeadID string
	Input  pricing.Input
}

// IQuoteUseCase exposes quote operations to the HTTP layer.

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, cmd CreateQuoteCommand) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	notifier interfaces.IAutomationNotifier
	log      zerolog.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, notifier interfaces.IAutomationNotifier, log zerolog.Logger) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, notifier: notifier, log: log}
}

// CreateQuote validates the input, runs the pricing engine and persists the
// result. Persistence failure is non-fatal: the visitor still gets the
// computed quote, only storage is lost.
func (u *QuoteUseCase) CreateQuote(ctx context.Context, cmd CreateQuoteCommand) (entities.Quote, error) {
	if err := cmd.Input.Validate(); err != nil {
		return entities.Quote{}, err
	}

	result, err := pricing.CalculateQuote(cmd.Input)
	if err != nil {
		return entities.Quote{}, err
	}

	q := entities.Quote{
		ID:            uuid.NewString(),
		LeadID:        strings.TrimSpace(cmd.LeadID),
		Service:       cmd.Input.Service,
		Tier:          cmd.Input.MaterialTier,
		SquareFootage: cmd.Input.SquareFootage,
		Stories:       cmd.Input.Stories,
		Addons:        cmd.Input.Addons,
		PriceLow:      result.Breakdown.LowEstimate,
		PriceHigh:     result.Breakdown.HighEstimate,
		Result:        result,
		CreatedAt:     time.Now().UTC(),
	}

	if _, err := u.repo.Create(ctx, q); err != nil {
		u.log.Warn().Err(err).Str("quote_id", q.ID).Msg("quote computed but not persisted")
	}

	u.notify(ctx, "quote.created", map[string]any{
		"id":         q.ID,
		"lead_id":    q.LeadID,
		"service":    string(q.Service),
		"tier":       string(q.Tier),
		"price_low":  q.PriceLow,
		"price_high": q.PriceHigh,
	})

	return q, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByLeadID(ctx context.Context, leadID string) ([]entities.Quote, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return nil, ErrInvalidLeadID
	}
	return u.repo.ListByLeadID(ctx, leadID)
}

func (u *QuoteUseCase) notify(ctx context.Context, event string, data map[string]any) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx, event, data); err != nil {
		u.log.Warn().Err(err).Str("event", event).Msg("automation notify failed")
	}
}

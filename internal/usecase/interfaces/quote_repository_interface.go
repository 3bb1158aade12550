package interfaces

import (
	"context"
	"major_home/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Persistence is best-effort from the caller's point of view: the quote use
// case still returns a computed quote when Create fails.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.Quote, error)
}

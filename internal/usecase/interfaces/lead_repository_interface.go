package interfaces

import (
	"context"
	"major_home/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for Lead.

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error)
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"major_home/internal/domain/entities"
	"major_home/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrLeadNotFound       = errors.New("lead not found")
	ErrInvalidLeadID      = errors.New("invalid lead id")
	ErrInvalidLeadContact = errors.New("lead name and email are required")
	ErrInvalidLeadStatus  = errors.New("invalid lead status")
)

const defaultLeadSource = "website"

// CaptureLeadCommand is a prospect submission from the contact form, the
// quote wizard, or appointment booking.
type CaptureLeadCommand struct {
	Name            string
	Email           string
	Phone           string
	Address         string
	ServiceInterest string
	Source          string
	Notes           string
	QuoteData       json.RawMessage
}

// ILeadUseCase exposes lead operations to the HTTP layer.

type ILeadUseCase interface {
	CaptureLead(ctx context.Context, cmd CaptureLeadCommand) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error)
}

type LeadUseCase struct {
	repo     interfaces.ILeadRepository
	notifier interfaces.IAutomationNotifier
	log      zerolog.Logger
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository, notifier interfaces.IAutomationNotifier, log zerolog.Logger) *LeadUseCase {
	return &LeadUseCase{repo: repo, notifier: notifier, log: log}
}

func (u *LeadUseCase) CaptureLead(ctx context.Context, cmd CaptureLeadCommand) (entities.Lead, error) {
	name := strings.TrimSpace(cmd.Name)
	email := strings.TrimSpace(cmd.Email)
	if name == "" || email == "" {
		return entities.Lead{}, ErrInvalidLeadContact
	}

	source := strings.TrimSpace(cmd.Source)
	if source == "" {
		source = defaultLeadSource
	}

	now := time.Now().UTC()
	l := entities.Lead{
		ID:              uuid.NewString(),
		Name:            name,
		Email:           email,
		Phone:           strings.TrimSpace(cmd.Phone),
		Address:         strings.TrimSpace(cmd.Address),
		ServiceInterest: strings.TrimSpace(cmd.ServiceInterest),
		Source:          source,
		Notes:           cmd.Notes,
		QuoteData:       cmd.QuoteData,
		Status:          entities.LeadStatusNew,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.repo.Create(ctx, l)
	if err != nil {
		return entities.Lead{}, err
	}

	u.notify(ctx, "lead.created", map[string]any{
		"id":      created.ID,
		"name":    created.Name,
		"email":   created.Email,
		"phone":   created.Phone,
		"service": created.ServiceInterest,
		"source":  created.Source,
	})

	return created, nil
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadUseCase) UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	if !status.Valid() {
		return entities.Lead{}, ErrInvalidLeadStatus
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Lead{}, err
	}
	if updated.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return updated, nil
}

func (u *LeadUseCase) notify(ctx context.Context, event string, data map[string]any) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx, event, data); err != nil {
		u.log.Warn().Err(err).Str("event", event).Msg("automation notify failed")
	}
}

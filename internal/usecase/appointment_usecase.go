package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"major_home/internal/domain/entities"
	"major_home/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrInvalidAppointmentID   = errors.New("invalid appointment id")
	ErrInvalidScheduleRequest = errors.New("name, email and preferred date are required")
)

const appointmentLeadSource = "appointment_booking"

// ScheduleAppointmentCommand is a site-visit request. When LeadID is empty a
// lead is created from the contact fields so the CRM side always has a
// record to attach the visit to.
type ScheduleAppointmentCommand struct {
	LeadID        string
	Name          string
	Email         string
	Phone         string
	Service       string
	PreferredDate string
	PreferredTime string
	Notes         string
}

// IAppointmentUseCase exposes appointment operations to the HTTP layer.

type IAppointmentUseCase interface {
	Schedule(ctx context.Context, cmd ScheduleAppointmentCommand) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
}

type AppointmentUseCase struct {
	repo     interfaces.IAppointmentRepository
	leads    interfaces.ILeadRepository
	notifier interfaces.IAutomationNotifier
	log      zerolog.Logger
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(
	repo interfaces.IAppointmentRepository,
	leads interfaces.ILeadRepository,
	notifier interfaces.IAutomationNotifier,
	log zerolog.Logger,
) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo, leads: leads, notifier: notifier, log: log}
}

func (u *AppointmentUseCase) Schedule(ctx context.Context, cmd ScheduleAppointmentCommand) (entities.Appointment, error) {
	name := strings.TrimSpace(cmd.Name)
	email := strings.TrimSpace(cmd.Email)
	preferredDate := strings.TrimSpace(cmd.PreferredDate)
	if name == "" || email == "" || preferredDate == "" {
		return entities.Appointment{}, ErrInvalidScheduleRequest
	}

	leadID := strings.TrimSpace(cmd.LeadID)
	if leadID == "" {
		// A booking without an existing lead still creates one; losing
		// that record must not block the appointment itself.
		now := time.Now().UTC()
		lead, err := u.leads.Create(ctx, entities.Lead{
			ID:              uuid.NewString(),
			Name:            name,
			Email:           email,
			Phone:           strings.TrimSpace(cmd.Phone),
			ServiceInterest: strings.TrimSpace(cmd.Service),
			Source:          appointmentLeadSource,
			Status:          entities.LeadStatusNew,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			u.log.Warn().Err(err).Msg("lead creation for appointment failed")
		} else {
			leadID = lead.ID
		}
	}

	a := entities.Appointment{
		ID:            uuid.NewString(),
		LeadID:        leadID,
		Service:       strings.TrimSpace(cmd.Service),
		PreferredDate: preferredDate,
		PreferredTime: strings.TrimSpace(cmd.PreferredTime),
		Status:        entities.AppointmentStatusPending,
		Notes:         cmd.Notes,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		return entities.Appointment{}, err
	}

	u.notify(ctx, "appointment.created", map[string]any{
		"id":             created.ID,
		"lead_id":        created.LeadID,
		"name":           name,
		"email":          email,
		"phone":          strings.TrimSpace(cmd.Phone),
		"service":        created.Service,
		"preferred_date": created.PreferredDate,
		"preferred_time": created.PreferredTime,
	})

	return created, nil
}

func (u *AppointmentUseCase) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return a, nil
}

func (u *AppointmentUseCase) notify(ctx context.Context, event string, data map[string]any) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx, event, data); err != nil {
		u.log.Warn().Err(err).Str("event", event).Msg("automation notify failed")
	}
}

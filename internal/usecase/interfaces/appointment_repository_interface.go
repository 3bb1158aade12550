package interfaces

import (
	"context"
	"major_home/internal/domain/entities"
)

// IAppointmentRepository abstracts DynamoDB persistence for Appointment.

type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
}

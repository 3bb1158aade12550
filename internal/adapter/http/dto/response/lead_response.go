package response

import (
	"time"

	"major_home/internal/domain/entities"
)

type LeadResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromLead(l entities.Lead, message string) LeadResponse {
	return LeadResponse{
		Success:   true,
		Message:   message,
		ID:        l.ID,
		Name:      l.Name,
		Email:     l.Email,
		Status:    string(l.Status),
		Source:    l.Source,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

package dto

import (
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// CreateInteractionRequest body para POST /api/interactions.
type CreateInteractionRequest struct {
	CustomerID int64                  `json:"customer_id" validate:"required"`
	Type       entity.InteractionType `json:"type" validate:"required,oneof=Call Email Meeting"`
	Date       Timestamp              `json:"date" validate:"required,daterange"`
	Summary    string                 `json:"summary" validate:"required"`
}

// UpdateInteractionRequest actualización parcial de una interacción.
type UpdateInteractionRequest struct {
	ID      int64                   `json:"id"`
	Type    *entity.InteractionType `json:"type,omitempty" validate:"omitnil,oneof=Call Email Meeting"`
	Date    *Timestamp              `json:"date,omitempty" validate:"omitnil,daterange"`
	Summary *string                 `json:"summary,omitempty" validate:"omitnil,min=1"`
}

// InteractionResponse interacción en respuestas.
type InteractionResponse struct {
	ID         int64                  `json:"id"`
	CustomerID int64                  `json:"customer_id" validate:"required"`
	Type       entity.InteractionType `json:"type"`
	Date       time.Time              `json:"date"`
	Summary    string                 `json:"summary"`
	CreatedAt  time.Time              `json:"created_at"`
}

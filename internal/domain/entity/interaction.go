package entity

import (
	"fmt"
	"time"
)

// InteractionType tipo de contacto con el cliente.
type InteractionType string

const (
	InteractionTypeCall    InteractionType = "Call"
	InteractionTypeEmail   InteractionType = "Email"
	InteractionTypeMeeting InteractionType = "Meeting"
)

func (t InteractionType) Valid() bool {
	switch t {
	case InteractionTypeCall, InteractionTypeEmail, InteractionTypeMeeting:
		return true
	}
	return false
}

// ParseInteractionType convierte un literal en InteractionType.
func ParseInteractionType(s string) (InteractionType, error) {
	t := InteractionType(s)
	if !t.Valid() {
		return "", fmt.Errorf("tipo de interacción inválido: %q", s)
	}
	return t, nil
}

// Interaction registra una llamada, correo o reunión con un cliente.
type Interaction struct {
	ID         int64
	CustomerID int64
	Type       InteractionType
	Date       time.Time // cuándo ocurrió
	Summary    string
	CreatedAt  time.Time
}

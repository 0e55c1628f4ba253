package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus estado de una venta (enumeración cerrada).
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "Pending"
	SaleStatusCompleted SaleStatus = "Completed"
	SaleStatusCancelled SaleStatus = "Cancelled"
)

// SaleStatuses lista los estados válidos en el orden en que se reportan.
var SaleStatuses = []SaleStatus{SaleStatusPending, SaleStatusCompleted, SaleStatusCancelled}

// Valid indica si el estado pertenece a la enumeración.
func (s SaleStatus) Valid() bool {
	switch s {
	case SaleStatusPending, SaleStatusCompleted, SaleStatusCancelled:
		return true
	}
	return false
}

// ParseSaleStatus convierte un literal en SaleStatus.
func ParseSaleStatus(s string) (SaleStatus, error) {
	st := SaleStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("estado de venta inválido: %q", s)
	}
	return st, nil
}

// Sale representa una venta asociada a un cliente.
type Sale struct {
	ID             int64
	CustomerID     int64
	ProductService string
	Amount         decimal.Decimal // precisión de centavos (2 decimales)
	Date           time.Time       // fecha de negocio, independiente de CreatedAt
	Status         SaleStatus
	CreatedAt      time.Time
}

// AmountScale decimales con los que se persisten los montos.
const AmountScale = 2

// MaxAmount cota superior exclusiva de un monto: NUMERIC(10,2) admite hasta 99999999.99.
var MaxAmount = decimal.New(1, 8)

// NormalizeAmount redondea el monto a centavos.
func NormalizeAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountScale)
}

// ValidAmount indica si el monto, ya redondeado a centavos, es positivo y cabe en la columna.
func ValidAmount(d decimal.Decimal) bool {
	n := NormalizeAmount(d)
	return n.IsPositive() && n.LessThan(MaxAmount)
}

package dto

import (
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest body para POST /api/sales.
// Status es opcional; por defecto "Pending".
type CreateSaleRequest struct {
	CustomerID     int64             `json:"customer_id" validate:"required"`
	ProductService string            `json:"product_service" validate:"required"`
	Amount         decimal.Decimal   `json:"amount" validate:"amount"`
	Date           Timestamp         `json:"date" validate:"required,daterange"`
	Status         entity.SaleStatus `json:"status,omitempty" validate:"omitempty,oneof=Pending Completed Cancelled"`
}

// UpdateSaleRequest actualización parcial de una venta.
type UpdateSaleRequest struct {
	ID             int64              `json:"id"`
	ProductService *string            `json:"product_service,omitempty" validate:"omitnil,min=1"`
	Amount         *decimal.Decimal   `json:"amount,omitempty" validate:"omitnil,amount"`
	Date           *Timestamp         `json:"date,omitempty" validate:"omitnil,daterange"`
	Status         *entity.SaleStatus `json:"status,omitempty" validate:"omitnil,oneof=Pending Completed Cancelled"`
}

// SaleResponse venta en respuestas. Amount se serializa como número JSON.
type SaleResponse struct {
	ID             int64             `json:"id"`
	CustomerID     int64             `json:"customer_id"`
	ProductService string            `json:"product_service"`
	Amount         decimal.Decimal   `json:"amount"`
	Date           time.Time         `json:"date"`
	Status         entity.SaleStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
}

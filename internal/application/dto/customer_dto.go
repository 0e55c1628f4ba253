package dto

import "time"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Company string `json:"company" validate:"required"`
}

// UpdateCustomerRequest actualización parcial; los campos nil no se modifican.
type UpdateCustomerRequest struct {
	ID      int64   `json:"id"`
	Name    *string `json:"name,omitempty" validate:"omitnil,min=1"`
	Email   *string `json:"email,omitempty" validate:"omitnil,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitnil,min=1"`
	Company *string `json:"company,omitempty" validate:"omitnil,min=1"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerWithRelationsResponse cliente con sus ventas e interacciones.
// Sales e Interactions nunca son null: sin relaciones se devuelven como [].
type CustomerWithRelationsResponse struct {
	CustomerResponse
	Sales        []SaleResponse        `json:"sales"`
	Interactions []InteractionResponse `json:"interactions"`
}

package dto

import "github.com/jhoicas/crm-api/internal/domain/entity"

// ToCustomerResponse convierte la entidad en su representación de salida.
func ToCustomerResponse(c *entity.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		CreatedAt: c.CreatedAt,
	}
}

func ToSaleResponse(s *entity.Sale) *SaleResponse {
	if s == nil {
		return nil
	}
	return &SaleResponse{
		ID:             s.ID,
		CustomerID:     s.CustomerID,
		ProductService: s.ProductService,
		Amount:         s.Amount,
		Date:           s.Date,
		Status:         s.Status,
		CreatedAt:      s.CreatedAt,
	}
}

func ToInteractionResponse(i *entity.Interaction) *InteractionResponse {
	if i == nil {
		return nil
	}
	return &InteractionResponse{
		ID:         i.ID,
		CustomerID: i.CustomerID,
		Type:       i.Type,
		Date:       i.Date,
		Summary:    i.Summary,
		CreatedAt:  i.CreatedAt,
	}
}

// ToSaleList devuelve siempre un slice no nil.
func ToSaleList(list []*entity.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *ToSaleResponse(s))
	}
	return out
}

// ToInteractionList devuelve siempre un slice no nil.
func ToInteractionList(list []*entity.Interaction) []InteractionResponse {
	out := make([]InteractionResponse, 0, len(list))
	for _, i := range list {
		out = append(out, *ToInteractionResponse(i))
	}
	return out
}

func ToCustomerList(list []*entity.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *ToCustomerResponse(c))
	}
	return out
}

package dto

import "github.com/shopspring/decimal"

func init() {
	// Los montos viajan como número JSON (texto decimal exacto, sin comillas).
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"` // campo -> motivo (solo errores de validación)
}

// HealthResponse respuesta de GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
}

package sqlite

import (
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Montos como centavos enteros y fechas como microsegundos Unix (UTC):
// SUM y ORDER BY quedan exactos sin tipos NUMERIC ni texto de fecha.
// En microsegundos un int64 cubre ±292.000 años, la misma precisión que timestamptz.

func toCents(d decimal.Decimal) int64 {
	return entity.NormalizeAmount(d).Shift(entity.AmountScale).IntPart()
}

func fromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -entity.AmountScale)
}

func toMicros(t time.Time) int64 {
	return t.UTC().UnixMicro()
}

func fromMicros(n int64) time.Time {
	return time.UnixMicro(n).UTC()
}

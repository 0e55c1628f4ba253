package dto

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// timestampLayouts formatos aceptados en la entrada, en orden de preferencia.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// Timestamp fecha de entrada tolerante: acepta RFC 3339, "YYYY-MM-DD",
// "YYYY-MM-DDTHH:MM:SS" (se asume UTC) o milisegundos desde epoch.
// En la salida se serializa como time.Time (RFC 3339).
type Timestamp struct {
	time.Time
}

// NewTimestamp envuelve t.
func NewTimestamp(t time.Time) Timestamp { return Timestamp{Time: t} }

// UnmarshalJSON implementa json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] != '"' {
		ms, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return fmt.Errorf("fecha inválida: %s", b)
		}
		t.Time = time.UnixMilli(ms).UTC()
		return nil
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("fecha inválida: %s", b)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// ParseTimestamp interpreta s con los formatos aceptados y devuelve la fecha en UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida: %q", s)
}

// Package csvimport carga clientes desde exportaciones CSV (UTF-8 o Latin-1).
package csvimport

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
)

// Columnas requeridas en el encabezado (en cualquier orden, sin distinguir mayúsculas).
var requiredColumns = []string{"name", "email", "phone", "company"}

// CustomerCreator lo implementa usecase.CustomerUseCase.
type CustomerCreator interface {
	Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
}

// Options de lectura.
type Options struct {
	Latin1    bool // decodificar ISO-8859-1 (exportaciones de Excel en Windows)
	Delimiter rune // ',' por defecto
}

// RowError fila rechazada por validación. Line es 1-based e incluye el encabezado.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("línea %d: %v", e.Line, e.Err)
}

// Result resumen de la importación.
type Result struct {
	Imported []int64
	Rejected []RowError
}

// ImportCustomers crea un cliente por fila. Las filas inválidas se saltan y se
// reportan en Result.Rejected; un error del store corta la importación.
func ImportCustomers(ctx context.Context, r io.Reader, creator CustomerCreator, opts Options) (*Result, error) {
	if opts.Latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	br := bufio.NewReader(r)
	skipBOM(br)

	cr := csv.NewReader(br)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv vacío: falta encabezado")
		}
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	res := &Result{Imported: []int64{}, Rejected: []RowError{}}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			line := 0
			if errors.As(err, &pe) {
				line = pe.Line
			}
			res.Rejected = append(res.Rejected, RowError{Line: line, Err: err})
			continue
		}
		// encoding/csv salta las líneas vacías; FieldPos da la línea real del archivo.
		line, _ := cr.FieldPos(0)
		if isBlank(record) {
			continue
		}

		in := dto.CreateCustomerRequest{
			Name:    field(record, cols["name"]),
			Email:   field(record, cols["email"]),
			Phone:   field(record, cols["phone"]),
			Company: field(record, cols["company"]),
		}
		created, err := creator.Create(ctx, in)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				res.Rejected = append(res.Rejected, RowError{Line: line, Err: err})
				continue
			}
			return res, fmt.Errorf("línea %d: %w", line, err)
		}
		res.Imported = append(res.Imported, created.ID)
	}
	return res, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	var missing []string
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("encabezado sin columnas: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func skipBOM(br *bufio.Reader) {
	if b, err := br.Peek(3); err == nil && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = br.Discard(3)
	}
}

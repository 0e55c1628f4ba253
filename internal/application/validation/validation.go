// Package validation aplica las reglas de los tags `validate` de los DTOs
// (go-playground/validator) y traduce los fallos a domain.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Validator envoltorio sobre validator.Validate con los tipos propios registrados.
type Validator struct {
	v *validator.Validate
}

// New construye el validador. Es seguro para uso concurrente.
func New() *Validator {
	v := validator.New()

	// Los errores se reportan con el nombre JSON del campo.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})

	// decimal.Decimal viaja como texto exacto; la regla "amount" lo interpreta.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if t, ok := field.Interface().(dto.Timestamp); ok {
			return t.Time
		}
		return nil
	}, dto.Timestamp{})

	_ = v.RegisterValidation("amount", validAmount)
	_ = v.RegisterValidation("daterange", validDate)

	return &Validator{v: v}
}

// Struct valida s. Devuelve nil o un *domain.ValidationError.
func (val *Validator) Struct(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	out := &domain.ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "min":
		return "no puede estar vacío"
	case "email":
		return "formato de email inválido"
	case "amount":
		return "debe estar entre 0.01 y 99999999.99"
	case "daterange":
		return "fuera de rango (años 0001 a 9999)"
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return "valor inválido"
}

// validAmount: el monto redondeado a centavos debe ser > 0 y caber en NUMERIC(10,2).
func validAmount(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return entity.ValidAmount(d)
}

// validDate limita las fechas a años 0001..9999 (RFC 3339 y ambos stores).
func validDate(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	y := t.UTC().Year()
	return y >= 1 && y <= 9999
}

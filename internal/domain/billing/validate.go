package billing

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// messages holds the message for the first rule each field fails.
var messages = map[Field]map[string]string{
	FieldFirstName: {
		"required": "El nombre es obligatorio",
		"min":      "El nombre debe tener al menos 2 caracteres",
	},
	FieldLastName: {
		"required": "Los apellidos son obligatorios",
		"min":      "Los apellidos deben tener al menos 2 caracteres",
	},
	FieldIdentificationNumber: {
		"required": "La cédula o número de identificación es obligatorio",
		"min":      "Número de identificación inválido",
	},
	FieldAddress: {
		"required": "La dirección es obligatoria",
	},
	FieldPhone: {
		"required": "El teléfono es obligatorio",
		"phone10":  "El teléfono debe tener 10 dígitos",
	},
	FieldEmail: {
		"required": "El email es obligatorio",
		"email":    "Email inválido",
	},
	FieldConfirmEmail: {
		"required": "Confirma tu email",
		"eqfield":  "Los emails no coinciden",
	},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	if err := v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Errors maps a field to its error message. Valid values produce an
// empty map.
type Errors map[Field]string

func (e Errors) Valid() bool { return len(e) == 0 }

// Validate checks every field and reports the first failing rule of each.
func Validate(v Values) Errors {
	errs := Errors{}

	err := validate.Struct(v)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// validator only fails this way on programming errors
		panic(err)
	}
	for _, fe := range fieldErrs {
		field := Field(fe.Field())
		if _, seen := errs[field]; seen {
			continue
		}
		msg, ok := messages[field][fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		errs[field] = msg
	}
	return errs
}

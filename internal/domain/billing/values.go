package billing

import "errors"

// Field names match the HTML form inputs and the JSON API.
type Field string

const (
	FieldFirstName            Field = "firstName"
	FieldLastName             Field = "lastName"
	FieldIdentificationNumber Field = "identificationNumber"
	FieldAddress              Field = "address"
	FieldPhone                Field = "phone"
	FieldEmail                Field = "email"
	FieldConfirmEmail         Field = "confirmEmail"
)

// Fields lists every field in display order.
var Fields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldIdentificationNumber,
	FieldAddress,
	FieldPhone,
	FieldEmail,
	FieldConfirmEmail,
}

var (
	ErrUnknownField = errors.New("unknown billing field")
	ErrInvalid      = errors.New("billing details are invalid")
)

// Values is the buyer's billing details.
type Values struct {
	FirstName            string `json:"firstName" form:"firstName" validate:"required,min=2"`
	LastName             string `json:"lastName" form:"lastName" validate:"required,min=2"`
	IdentificationNumber string `json:"identificationNumber" form:"identificationNumber" validate:"required,min=5"`
	Address              string `json:"address" form:"address" validate:"required"`
	Phone                string `json:"phone" form:"phone" validate:"required,phone10"`
	Email                string `json:"email" form:"email" validate:"required,email"`
	ConfirmEmail         string `json:"confirmEmail" form:"confirmEmail" validate:"required,eqfield=Email"`
}

func (v Values) Get(f Field) string {
	switch f {
	case FieldFirstName:
		return v.FirstName
	case FieldLastName:
		return v.LastName
	case FieldIdentificationNumber:
		return v.IdentificationNumber
	case FieldAddress:
		return v.Address
	case FieldPhone:
		return v.Phone
	case FieldEmail:
		return v.Email
	case FieldConfirmEmail:
		return v.ConfirmEmail
	}
	return ""
}

func (v *Values) set(f Field, value string) error {
	switch f {
	case FieldFirstName:
		v.FirstName = value
	case FieldLastName:
		v.LastName = value
	case FieldIdentificationNumber:
		v.IdentificationNumber = value
	case FieldAddress:
		v.Address = value
	case FieldPhone:
		v.Phone = value
	case FieldEmail:
		v.Email = value
	case FieldConfirmEmail:
		v.ConfirmEmail = value
	default:
		return ErrUnknownField
	}
	return nil
}

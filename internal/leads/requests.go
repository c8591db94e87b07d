package leads

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ContactRequest is the DTO bound from the contact form.
type ContactRequest struct {
	Name    string `form:"name" validate:"required,max=120"`
	Email   string `form:"email" validate:"required,email"`
	Phone   string `form:"phone" validate:"omitempty,max=40"`
	Grade   string `form:"grade" validate:"required,oneof=8 9 10 11 12"`
	Message string `form:"message" validate:"max=2000"`
}

func (r *ContactRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Grade = strings.TrimSpace(r.Grade)
	r.Message = strings.TrimSpace(r.Message)
}

// FieldErrors maps a form field name to the message shown next to it.
type FieldErrors map[string]string

var fieldMessages = map[string]string{
	"Name":    "Please tell us your name.",
	"Email":   "Please enter a valid email address.",
	"Phone":   "That phone number is too long.",
	"Grade":   "Please choose your child's current grade.",
	"Message": "Please keep your message under 2000 characters.",
}

var formFields = map[string]string{
	"Name":    "name",
	"Email":   "email",
	"Phone":   "phone",
	"Grade":   "grade",
	"Message": "message",
}

// fieldErrors converts validator errors into per-field form messages.
// It returns nil when err is not a validation error.
func fieldErrors(err error) FieldErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field, ok := formFields[fe.Field()]
		if !ok {
			continue
		}
		out[field] = fieldMessages[fe.Field()]
	}
	return out
}
